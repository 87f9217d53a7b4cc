package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrConflict      = errors.New("conflicto con el estado actual")
	ErrConfiguration = errors.New("configuración inválida")
	ErrDatabase      = errors.New("error de base de datos")
	ErrMissingResult = errors.New("la operación no devolvió identificador")
	ErrNoTransaction = errors.New("se requiere una transacción abierta")
)

// Recursos ausentes del flujo de recepción. Los mensajes viajan tal cual al cliente.
var (
	ErrProductNotFound   error = notFoundError("Product not found")
	ErrWarehouseNotFound error = notFoundError("Warehouse not found")
	ErrNoValidOrder      error = notFoundError("No valid order found")
)

// Identificadores faltantes tras una escritura.
var (
	ErrInsertMissingID    error = missingResultError("Failed to get new ID after insertion")
	ErrProcedureMissingID error = missingResultError("Failed to get new ID from stored procedure")
)

// ErrOrderAlreadyFulfilled otra transacción enlazó la misma orden antes del commit.
var ErrOrderAlreadyFulfilled error = conflictError("Order already fulfilled")

type notFoundError string

func (e notFoundError) Error() string        { return string(e) }
func (e notFoundError) Is(target error) bool { return target == ErrNotFound }

type missingResultError string

func (e missingResultError) Error() string        { return string(e) }
func (e missingResultError) Is(target error) bool { return target == ErrMissingResult }

type conflictError string

func (e conflictError) Error() string        { return string(e) }
func (e conflictError) Is(target error) bool { return target == ErrConflict }

// DatabaseError error reportado por el motor (SQLSTATE, caída de conexión, RAISE EXCEPTION).
// Message es el texto del motor, sin envoltorios del driver.
type DatabaseError struct {
	Message string
	Err     error
}

func (e *DatabaseError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ErrDatabase.Error()
}

func (e *DatabaseError) Unwrap() error        { return e.Err }
func (e *DatabaseError) Is(target error) bool { return target == ErrDatabase }

// ConfigurationError configuración obligatoria ausente (ej. connection string "Default").
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string        { return e.Err.Error() }
func (e *ConfigurationError) Unwrap() error        { return e.Err }
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }
