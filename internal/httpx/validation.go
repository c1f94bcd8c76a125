package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var registerOnce sync.Once

// RegisterValidators adds the custom tags used by request structs to gin's
// validator engine. A tag that fails to register panics at startup instead
// of failing every request that uses it.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("httpx: unexpected validator engine %T", binding.Validator.Engine()))
		}
		if err := register(v); err != nil {
			panic(err)
		}
	})
}

func register(v *validator.Validate) error {
	if err := v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("register objectid validator: %w", err)
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return nil
}

// BindError renders a binding failure as a client-facing message.
func BindError(err error) string {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		msgs := make([]string, 0, len(vErrs))
		for _, fe := range vErrs {
			msgs = append(msgs, fieldMessage(fe))
		}
		return strings.Join(msgs, "; ")
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		return "malformed JSON body"
	case errors.As(err, &typeErr):
		return fmt.Sprintf("%s must be %s", typeErr.Field, typeErr.Type)
	case errors.Is(err, io.EOF):
		return "request body required"
	case errors.Is(err, io.ErrUnexpectedEOF):
		return "malformed JSON body"
	}
	return err.Error()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " value missing"
	case "email":
		return fe.Field() + " must be a valid email"
	case "min", "gte":
		return fe.Field() + " must be at least " + fe.Param()
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of [" + fe.Param() + "]"
	case "objectid":
		return fe.Field() + " must be a valid id"
	case "datetime":
		return fe.Field() + " must match " + fe.Param()
	}
	return fe.Field() + " is invalid"
}
