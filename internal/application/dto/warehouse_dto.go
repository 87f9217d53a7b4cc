package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ProductWarehouseRequest body para POST /api/warehouse y /api/warehouse/stored-procedure.
// La decodificación JSON ignora mayúsculas, así que también se aceptan IdProduct, IdWarehouse, etc.
type ProductWarehouseRequest struct {
	ProductID   int       `json:"idProduct" validate:"min=0"`
	WarehouseID int       `json:"idWarehouse" validate:"min=0"`
	Amount      int       `json:"amount" validate:"gt=0"`
	CreatedAt   time.Time `json:"createdAt" validate:"required"`
}

// requestTimeLayouts formatos aceptados para createdAt. Los que no traen zona se leen en UTC.
var requestTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// requestTime decodifica createdAt con o sin zona horaria, o solo la fecha.
type requestTime time.Time

func (t *requestTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("createdAt must be a date/time string")
	}
	raw = strings.TrimSpace(raw)
	for _, layout := range requestTimeLayouts {
		if v, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			*t = requestTime(v)
			return nil
		}
	}
	return fmt.Errorf("createdAt: cannot parse %q as a date/time", raw)
}

// UnmarshalJSON decodifica el cuerpo aceptando createdAt en los formatos de requestTimeLayouts.
func (r *ProductWarehouseRequest) UnmarshalJSON(data []byte) error {
	type plain ProductWarehouseRequest
	aux := struct {
		*plain
		CreatedAt requestTime `json:"createdAt"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.CreatedAt = time.Time(aux.CreatedAt)
	return nil
}

// Validate aplica las reglas declarativas de la petición. El error describe cada campo inválido.
func (r ProductWarehouseRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := jsonName(fe.StructField())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "gt":
		return fmt.Sprintf("The field %s must be greater than %s.", field, fe.Param())
	case "min":
		return fmt.Sprintf("The field %s must be at least %s.", field, fe.Param())
	default:
		return fmt.Sprintf("The field %s is invalid (%s).", field, fe.Tag())
	}
}

func jsonName(structField string) string {
	switch structField {
	case "ProductID":
		return "IdProduct"
	case "WarehouseID":
		return "IdWarehouse"
	default:
		return structField
	}
}

// ErrorResponse cuerpo de toda respuesta 400. Code: INVALID_BODY, VALIDATION, NOT_FOUND,
// CONFLICT, MISSING_RESULT, DATABASE, CONFIGURATION, TIMEOUT o INTERNAL.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
