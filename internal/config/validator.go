package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/widgetlab/internal/domain/widget"
	"github.com/alexisbeaulieu97/widgetlab/internal/ui/components"
	apperrors "github.com/alexisbeaulieu97/widgetlab/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	logLevels = map[string]struct{}{"debug": {}, "info": {}, "warn": {}, "error": {}, "fatal": {}}
)

// validatorInstance configures and returns the shared validator.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
			_, ok := logLevels[strings.ToLower(fl.Field().String())]
			return ok
		})

		// rangesize bounds numbers.max against numbers.min.
		_ = v.RegisterValidation("rangesize", func(fl validator.FieldLevel) bool {
			lower := fl.Parent().FieldByName("Min")
			if !lower.IsValid() {
				return false
			}
			return widget.RangeSize(int(lower.Int()), int(fl.Field().Int())) <= widget.MaxRangeSize
		})

		_ = v.RegisterValidation("colour", func(fl validator.FieldLevel) bool {
			_, ok := components.ParseColor(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on cfg.
func Validate(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError reports the first failing field using its YAML path.
func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		field := yamlPath(fe)
		return apperrors.NewValidationError(field, describe(fe), err)
	}
	return apperrors.NewValidationError("config", err.Error(), err)
}

func yamlPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "loglevel":
		return fmt.Sprintf("unknown log level %q", fe.Value())
	case "colour":
		return fmt.Sprintf("unknown colour %q (use a name, a 0-255 ANSI code or #rrggbb)", fe.Value())
	case "rangesize":
		return fmt.Sprintf("range may hold at most %d values", widget.MaxRangeSize)
	case "gtefield":
		return fmt.Sprintf("must be greater than or equal to %s", strings.ToLower(fe.Param()))
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
