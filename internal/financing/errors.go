package financing

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters возвращается для параметров, при которых расчет не имеет смысла
var ErrInvalidParameters = errors.New("неверные параметры финансирования")

// ParameterError описывает конкретное нарушенное условие
type ParameterError struct {
	Field  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidParameters, e.Field, e.Reason)
}

// Is позволяет сопоставлять ParameterError с ErrInvalidParameters через errors.Is
func (e *ParameterError) Is(target error) bool {
	return target == ErrInvalidParameters
}

func invalid(field, reason string) error {
	return &ParameterError{Field: field, Reason: reason}
}
