package registration

import "errors"

// User-facing messages
const (
	MsgMissingFields        = "Los campos nombres, apellidos, cedula, telefono y email son requeridos"
	MsgDuplicateCedula      = "La cédula ya está registrada en el sistema."
	MsgIndividualRegistered = "Socio registrado correctamente"
	MsgCorporateRegistered  = "Socio empresa registrado correctamente"
)

// ErrValidation represents a validation error in the registration workflow
var ErrValidation = errors.New("validation error")

// ErrDuplicateCedula is returned when an individual member with the same cedula already exists
var ErrDuplicateCedula = errors.New(MsgDuplicateCedula)

// ValidationError lists the required fields absent from a payload
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return MsgMissingFields
}

// Unwrap lets errors.Is match ErrValidation
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StoreError wraps a failure reported by the member store.
// Its message is the store's message, unchanged.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return "store error"
	}
	return e.Err.Error()
}

// Unwrap returns the underlying store error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is a validation or duplicate cedula error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrDuplicateCedula)
}

// IsStoreError reports whether err came from the member store
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
