// Package config loads coupon documents and the process settings of the
// coupongen binaries.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	coupon "github.com/gogpu/gg-coupon"
)

// Output formats.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

// DefaultJPEGQuality is used when a JPEG document omits quality.
const DefaultJPEGQuality = 90

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Document is a coupon described in YAML:
//
//	width: 300
//	height: 120
//	format: png
//	style:
//	  couponTitle: "10 OFF"
//	  holeType: both
type Document struct {
	Width   float64           `yaml:"width" validate:"gt=0,lte=8192"`
	Height  float64           `yaml:"height" validate:"gt=0,lte=8192"`
	Density float64           `yaml:"density" validate:"omitempty,gt=0,lte=16"`
	Format  string            `yaml:"format" validate:"omitempty,oneof=png jpeg jpg"`
	Quality int               `yaml:"quality" validate:"omitempty,min=1,max=100"`
	Output  string            `yaml:"output"`
	Font    string            `yaml:"font"`
	Style   map[string]string `yaml:"style" validate:"dive,keys,coupon_attr,endkeys"`
}

// Normalize fills defaulted fields in place.
func (d *Document) Normalize() {
	if d.Density == 0 {
		d.Density = 1
	}
	switch strings.ToLower(d.Format) {
	case "", FormatPNG:
		d.Format = FormatPNG
	case "jpg", FormatJPEG:
		d.Format = FormatJPEG
	}
	if d.Format == FormatJPEG && d.Quality == 0 {
		d.Quality = DefaultJPEGQuality
	}
}

// CouponStyle resolves the document's style attributes.
func (d *Document) CouponStyle() coupon.Style {
	return coupon.ParseAttributes(d.Style, d.Density)
}

// LoadDocument reads, parses and validates the document at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewParseError(path, 0, err)
	}
	return ParseDocument(path, data)
}

// ReadDocument parses and validates a document from r. name is used in
// errors.
func ReadDocument(name string, r io.Reader) (*Document, error) {
	doc, err := DecodeDocument(name, r)
	if err != nil {
		return nil, err
	}
	if err := doc.Complete(); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseDocument parses and validates YAML document data.
func ParseDocument(name string, data []byte) (*Document, error) {
	doc, err := decode(name, data)
	if err != nil {
		return nil, err
	}
	if err := doc.Complete(); err != nil {
		return nil, err
	}
	return doc, nil
}

// DecodeDocument parses a document from r without validating it, so
// callers can override fields before calling Complete. A relative font
// path is resolved against the directory of name.
func DecodeDocument(name string, r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, NewParseError(name, 0, err)
	}
	return decode(name, data)
}

func decode(name string, data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewParseError(name, extractLine(err), err)
	}
	if doc.Font != "" && !filepath.IsAbs(doc.Font) && name != "" {
		doc.Font = filepath.Join(filepath.Dir(name), doc.Font)
	}
	return &doc, nil
}

// Complete validates d and fills its defaulted fields. Format names are
// case-insensitive.
func (d *Document) Complete() error {
	d.Format = strings.ToLower(strings.TrimSpace(d.Format))
	if err := ValidateDocument(d); err != nil {
		return err
	}
	d.Normalize()
	return nil
}

// ValidateDocument checks field ranges and attribute keys.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return NewValidationError("", "document is required", nil)
	}
	err := validatorInstance().Struct(doc)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewValidationError("", err.Error(), err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	sort.Strings(msgs)
	return NewValidationError(verrs[0].Namespace(), strings.Join(msgs, "; "), err)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "coupon_attr":
		return fmt.Sprintf("%s: unknown style attribute %q", fe.Namespace(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s: must be one of %s", fe.Namespace(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s: must be greater than %s", fe.Namespace(), fe.Param())
	case "min":
		return fmt.Sprintf("%s: must be at least %s", fe.Namespace(), fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s: must be at most %s", fe.Namespace(), fe.Param())
	default:
		return fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag())
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
