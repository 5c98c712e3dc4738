package evaluating

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidAssumptions = errors.New("premissas inválidas")
	ErrIDGeneration       = errors.New("falha ao gerar id da avaliação")
)

// EvaluationError carrega o código da API e os campos rejeitados
type EvaluationError struct {
	Err     error
	Code    string
	Details map[string]string // campo -> regra violada
}

func (e *EvaluationError) Error() string {
	if len(e.Details) == 0 {
		return e.Err.Error()
	}

	fields := make([]string, 0, len(e.Details))
	for f, rule := range e.Details {
		fields = append(fields, fmt.Sprintf("%s(%s)", f, rule))
	}
	sort.Strings(fields)
	return fmt.Sprintf("%s: %s", e.Err.Error(), strings.Join(fields, ", "))
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAssumptions)
}
