package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Metric é um valor numérico que pode estar indefinido (ex.: IRR sem troca de sinal,
// payback fora do horizonte). Indefinido nunca é representado por um número fabricado.
type Metric struct {
	value   float64
	defined bool
}

// Defined cria uma métrica com valor
func Defined(v float64) Metric {
	return Metric{value: v, defined: true}
}

// Undefined cria uma métrica sem valor
func Undefined() Metric {
	return Metric{}
}

// Value retorna o valor e se ele está definido
func (m Metric) Value() (float64, bool) {
	return m.value, m.defined
}

func (m Metric) IsDefined() bool {
	return m.defined
}

// Or retorna o valor ou o fallback quando indefinido
func (m Metric) Or(fallback float64) float64 {
	if !m.defined {
		return fallback
	}
	return m.value
}

// MarshalJSON serializa como número ou null
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.defined || math.IsNaN(m.value) || math.IsInf(m.value, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(m.value, 'f', -1, 64)), nil
}

// UnmarshalJSON aceita número ou null
func (m *Metric) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = Undefined()
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*m = Defined(v)
	return nil
}
