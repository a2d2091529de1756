// Package validator centraliza la validación de structs de request
// usando go-playground/validator con una única instancia compartida.
package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct valida un DTO de request. Devuelve un mensaje legible con los campos
// que fallaron (vacío si todo es válido): pensado para el envelope de error HTTP.
func Struct(data interface{}) string {
	err := validate.Struct(data)
	if err == nil {
		return ""
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+": "+fe.Tag())
	}
	return strings.Join(parts, ", ")
}
