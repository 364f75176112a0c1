package api

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherdash.app/internal/core/preferences"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the theme and unit tags to gin's validator
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if registerErr = v.RegisterValidation("theme", validateTheme); registerErr != nil {
			return
		}
		registerErr = v.RegisterValidation("unit", validateUnit)
	})
	return registerErr
}

func validateTheme(fl validator.FieldLevel) bool {
	return preferences.Theme(fl.Field().String()).IsValid()
}

// validateUnit accepts any known unit value; the kind/value pairing is checked by the controller
func validateUnit(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return preferences.TemperatureUnit(value).IsValid() ||
		preferences.WindUnit(value).IsValid() ||
		preferences.PressureUnit(value).IsValid()
}
