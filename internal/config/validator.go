package config

import (
	"sync"

	"github.com/go-playground/validator/v10"

	coupon "github.com/gogpu/gg-coupon"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator used by the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("coupon_attr", func(fl validator.FieldLevel) bool {
			return coupon.IsAttribute(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}
