package scenario

import "errors"

var (
	ErrScenarioNotFound = errors.New("cenário não encontrado")
	ErrCatalogLoad      = errors.New("falha ao carregar catálogo de cenários")
	ErrInvalidScenario  = errors.New("cenário inválido")
)
