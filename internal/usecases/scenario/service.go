package scenario

import (
	"context"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/cfo-playbook-api/internal/domain"
	"github.com/vfg2006/cfo-playbook-api/internal/observability"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/evaluating"
	"github.com/vfg2006/cfo-playbook-api/pkg/log"
	"gopkg.in/yaml.v3"
)

//go:generate mockgen -source=service.go -destination=mocks/catalog.go -package=mocks

// BaseScenarioName é o cenário embutido com as premissas padrão
const BaseScenarioName = "base"

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

type Catalog interface {
	List() domain.ScenarioList
	Get(name string) (*domain.Scenario, error)
	Reload(ctx context.Context) (int, error)
}

// catalogFile é o formato do arquivo YAML
type catalogFile struct {
	Scenarios []struct {
		Name        string    `yaml:"name"`
		Description string    `yaml:"description"`
		Assumptions yaml.Node `yaml:"assumptions"`
	} `yaml:"scenarios"`
}

type Service struct {
	path     string
	metrics  observability.Recorder
	mu       sync.RWMutex
	items    map[string]domain.Scenario
	loadedAt time.Time
	now      func() time.Time
}

// NewService cria o catálogo já com o cenário base. Sem arquivo configurado, só o base existe.
func NewService(path string, metrics observability.Recorder) Catalog {
	if metrics == nil {
		metrics = observability.Nop{}
	}

	s := &Service{
		path:    path,
		metrics: metrics,
		now:     time.Now,
	}
	s.items = map[string]domain.Scenario{BaseScenarioName: baseScenario()}
	s.loadedAt = s.now()
	return s
}

func baseScenario() domain.Scenario {
	return domain.Scenario{
		Name:        BaseScenarioName,
		Description: "Default playbook assumptions",
		Assumptions: domain.DefaultAssumptions(),
	}
}

func (s *Service) List() domain.ScenarioList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]domain.ScenarioSummary, 0, len(s.items))
	for _, sc := range s.items {
		summaries = append(summaries, domain.ScenarioSummary{Name: sc.Name, Description: sc.Description})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})

	return domain.ScenarioList{Scenarios: summaries, LoadedAt: s.loadedAt}
}

func (s *Service) Get(name string) (*domain.Scenario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sc, ok := s.items[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrap(ErrScenarioNotFound, name)
	}

	return &sc, nil
}

// Reload relê o arquivo. Em caso de erro o catálogo anterior é mantido.
func (s *Service) Reload(ctx context.Context) (int, error) {
	if s.path == "" {
		s.mu.RLock()
		n := len(s.items)
		s.mu.RUnlock()
		return n, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.metrics.RecordScenarioReload(false, 0)
		return 0, errors.Wrapf(ErrCatalogLoad, "read %s: %v", s.path, err)
	}

	items, err := Parse(data)
	if err != nil {
		s.metrics.RecordScenarioReload(false, 0)
		return 0, err
	}

	if err := ctx.Err(); err != nil {
		s.metrics.RecordScenarioReload(false, 0)
		return 0, err
	}

	s.mu.Lock()
	s.items = items
	s.loadedAt = s.now()
	s.mu.Unlock()

	s.metrics.RecordScenarioReload(true, len(items))
	log.ForContext(ctx).WithFields(log.Fields{
		"scenario": s.path,
		"count":    len(items),
	}).Info("scenario: catalog reloaded")

	return len(items), nil
}

// Parse decodifica o YAML. Cada cenário parte das premissas padrão e sobrescreve só o que informa;
// receita, CMV e opex do stress não informados seguem o ano 1 do investimento do próprio cenário.
// Premissas fora dos intervalos aceitos rejeitam o arquivo inteiro.
// O cenário base é sempre incluído e não pode ser redefinido.
func Parse(data []byte) (map[string]domain.Scenario, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(ErrCatalogLoad, "decode: %v", err)
	}

	items := map[string]domain.Scenario{BaseScenarioName: baseScenario()}
	for i, entry := range file.Scenarios {
		name := strings.ToLower(strings.TrimSpace(entry.Name))
		if !namePattern.MatchString(name) {
			return nil, errors.Wrapf(ErrInvalidScenario, "scenario %d: invalid name %q", i, entry.Name)
		}
		if _, exists := items[name]; exists {
			return nil, errors.Wrapf(ErrInvalidScenario, "scenario %d: duplicated name %q", i, name)
		}

		input := domain.DefaultInput()
		if !entry.Assumptions.IsZero() {
			if err := entry.Assumptions.Decode(&input); err != nil {
				return nil, errors.Wrapf(ErrInvalidScenario, "scenario %q: %v", name, err)
			}
		}

		assumptions := input.Resolve()
		if err := evaluating.ValidateAssumptions(assumptions); err != nil {
			return nil, errors.Wrapf(ErrInvalidScenario, "scenario %q: %v", name, err)
		}

		items[name] = domain.Scenario{
			Name:        name,
			Description: entry.Description,
			Assumptions: assumptions,
		}
	}

	return items, nil
}
