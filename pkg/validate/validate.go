// Package validate centraliza la validación de DTOs con go-playground/validator,
// aprovechando las etiquetas `validate:` de los structs de aplicación.
package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un struct y devuelve un error con los campos ofensores
// en un formato legible para el cliente (campo: regla).
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	ok := false
	if verrs, ok = err.(validator.ValidationErrors); !ok {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("validación: %s", strings.Join(parts, "; "))
}

// Var valida un valor suelto contra una regla (ej. "required,oneof=new repair replacement").
func Var(value any, tag string) error {
	return v.Var(value, tag)
}
