// Package validatex holds the shared request validator.
package validatex

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// report fields by their JSON names so details match the request body
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("notzero", notZero)
	})
	return validate
}

// notZero rejects values that read as the number zero, in any numeric or textual form
func notZero(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.String:
		v, err := strconv.ParseFloat(strings.TrimSpace(f.String()), 64)
		return err != nil || v != 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return f.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return f.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return f.Float() != 0
	default:
		return true
	}
}

// Struct validates s against its `validate` tags
func Struct(s any) error {
	return instance().Struct(s)
}

// Fields flattens validation errors into field -> failed tag
func Fields(err error) map[string]any {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return nil
	}
	out := make(map[string]any, len(ves))
	for _, fe := range ves {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
