package config

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/shinya/memeedit/pkg/memeedit/raster"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance は共有のバリデータを返します
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, err := raster.ParseBackground(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}
