package api

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"
)

const maxBodyBytes = 1 << 16

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bind decodes a JSON body into dst and validates it.
func (h *handlers) bind(r *http.Request, dst any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type", Message: "expected application/json"}
	}

	if err := render.DecodeJSON(http.MaxBytesReader(nil, r.Body, maxBodyBytes), dst); err != nil {
		if errors.Is(err, io.EOF) {
			return badRequest("empty body")
		}
		return badRequest(fmt.Sprintf("invalid JSON: %v", err))
	}

	if err := h.validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		ve := ValidationError{}
		for _, fe := range fieldErrs {
			ve.add(fe.Field(), describe(fe))
		}
		return ve
	}
	return nil
}

func badRequest(msg string) HTTPError {
	e := ErrBadRequest
	e.Message = msg
	return e
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}
