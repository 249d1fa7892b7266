package reporting

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrRequestSuperseded sinaliza um ciclo de busca cancelado por uma
// requisição mais nova do mesmo contexto de painel. Não é uma falha: o
// chamador descarta o ciclo sem aviso e sem tocar em estado algum.
var ErrRequestSuperseded = errors.New("ciclo de busca substituído por requisição mais recente")

// PeriodMismatchError rejeita uma comparação entre janelas de comprimentos
// diferentes antes de qualquer agregação rodar.
type PeriodMismatchError struct {
	FirstDays  int
	SecondDays int
}

func (e *PeriodMismatchError) Error() string {
	return fmt.Sprintf("períodos de comparação com durações diferentes: %d e %d dias", e.FirstDays, e.SecondDays)
}

func NewPeriodMismatchError(firstDays, secondDays int) *PeriodMismatchError {
	return &PeriodMismatchError{FirstDays: firstDays, SecondDays: secondDays}
}

// IsValidationError indica erros que devem chegar ao cliente como 400 em
// vez de degradar a fonte.
func IsValidationError(err error) bool {
	var mismatch *PeriodMismatchError
	return errors.As(err, &mismatch)
}
