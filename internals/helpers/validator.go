package helper

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// phone_id: nomor telepon lokal, minimal 10 digit angka
	_ = v.RegisterValidation("phone_id", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		if len(s) < 10 {
			return false
		}
		for _, r := range s {
			if !unicode.IsDigit(r) {
				return false
			}
		}
		return true
	})
	return v
}

// ValidateStruct menjalankan validator.v10 dan mengembalikan map field→pesan
// yang siap dikirim lewat JsonValidationError. nil kalau valid.
func ValidateStruct(s any) map[string][]string {
	if err := validate.Struct(s); err != nil {
		fieldErrors := map[string][]string{}
		if ve, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range ve {
				field := strings.ToLower(fe.Field())
				fieldErrors[field] = append(fieldErrors[field], fe.Tag())
			}
		} else {
			fieldErrors["_"] = []string{"invalid input"}
		}
		return fieldErrors
	}
	return nil
}
