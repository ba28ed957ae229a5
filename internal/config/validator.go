package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	domerrors "github.com/alexisbeaulieu97/domkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	attrNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_.:-]*$`)
	durationType    = reflect.TypeOf(time.Duration(0))
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("nonnegative_duration", func(fl validator.FieldLevel) bool {
			if fl.Field().Type() != durationType {
				return false
			}
			return fl.Field().Int() >= 0
		})

		_ = v.RegisterValidation("attr_name", func(fl validator.FieldLevel) bool {
			return attrNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks cfg against the schema rules.
func Validate(cfg *Config) error {
	if cfg == nil {
		return domerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return domerrors.NewValidationError(field, msg, err)
	}

	return domerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, leaving a
// dotted path of YAML keys such as "debounce.delay".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
