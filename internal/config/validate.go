package config

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"weatherdash.app/pkg/errors"
)

var checker = newChecker()

// newChecker reports fields by their envconfig variable name
func newChecker() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("envconfig"); name != "" {
			return name
		}
		return f.Name
	})
	if err := v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		return isHTTPURL(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

func checkStruct(s any) error {
	err := checker.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.NewConfigurationError("invalid configuration", err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fe.Field()+" "+describeRule(fe))
	}
	return errors.NewConfigurationError(strings.Join(problems, "; "), nil)
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if", "required_with":
		return "cannot be empty"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return fmt.Sprintf("must be one of: %s (got %v)", strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case "excludes":
		return fmt.Sprintf("cannot contain %q", fe.Param())
	case "httpurl":
		return "must start with http:// or https://"
	case "timezone":
		return fmt.Sprintf("%q is not a known zone", fe.Value())
	}
	return "failed the " + fe.Tag() + " check"
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
