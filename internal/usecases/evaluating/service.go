package evaluating

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/vfg2006/cfo-playbook-api/internal/domain"
	"github.com/vfg2006/cfo-playbook-api/internal/finance"
	"github.com/vfg2006/cfo-playbook-api/internal/observability"
	"github.com/vfg2006/cfo-playbook-api/pkg/apiErrors"
	"github.com/vfg2006/cfo-playbook-api/pkg/log"
	"github.com/vfg2006/cfo-playbook-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/evaluator.go -package=mocks

// Tipos de avaliação usados nas métricas
const (
	KindFull       = "full"
	KindInvestment = "investment"
	KindSaaS       = "saas"
	KindLiquidity  = "liquidity"
	KindBreakEven  = "break_even"
	KindStress     = "stress"
)

type Evaluator interface {
	Evaluate(ctx context.Context, assumptions domain.Assumptions) (*domain.Evaluation, error)
	EvaluateInvestment(ctx context.Context, a domain.InvestmentAssumptions) (*domain.InvestmentResult, error)
	EvaluateSaaS(ctx context.Context, a domain.SaaSAssumptions) (*domain.SaaSResult, error)
	EvaluateLiquidity(ctx context.Context, a domain.LiquidityAssumptions) (*domain.LiquidityResult, error)
	EvaluateBreakEven(ctx context.Context, a domain.BreakEvenAssumptions) (*domain.BreakEvenResult, error)
	EvaluateStress(ctx context.Context, a domain.StressAssumptions) (*domain.StressResult, error)
}

type Service struct {
	metrics    observability.Recorder
	validator  *validator.Validate
	generateID func() (string, error)
	now        func() time.Time
}

func NewService(metrics observability.Recorder) Evaluator {
	if metrics == nil {
		metrics = observability.Nop{}
	}

	return &Service{
		metrics:    metrics,
		validator:  defaultValidator,
		generateID: utils.GenerateID,
		now:        time.Now,
	}
}

// Evaluate executa um ciclo completo: os cinco módulos rodam em paralelo e as
// recomendações são calculadas depois do join
func (s *Service) Evaluate(ctx context.Context, assumptions domain.Assumptions) (*domain.Evaluation, error) {
	start := time.Now()

	if err := validateAll(s.validator, assumptions); err != nil {
		log.ForContext(ctx).WithError(err).Warn("evaluating: assumptions rejected")
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, &EvaluationError{Err: errors.Wrap(ErrIDGeneration, err.Error()), Code: apiErrors.ErrInternalServer}
	}

	var (
		wg        sync.WaitGroup
		inv       domain.InvestmentResult
		saas      domain.SaaSResult
		liquidity domain.LiquidityResult
		breakEven domain.BreakEvenResult
		stress    domain.StressResult
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		inv = finance.EvaluateInvestment(assumptions.Investment)
	}()
	go func() {
		defer wg.Done()
		saas = finance.EvaluateSaaS(assumptions.SaaS)
	}()
	go func() {
		defer wg.Done()
		liquidity = finance.EvaluateLiquidity(assumptions.Liquidity)
	}()
	go func() {
		defer wg.Done()
		breakEven = finance.EvaluateBreakEven(assumptions.BreakEven)
	}()
	go func() {
		defer wg.Done()
		stress = finance.EvaluateStress(assumptions.Stress)
	}()
	wg.Wait()

	kpis := finance.BuildKPISet(inv, saas, liquidity, breakEven, stress)
	recommendations := finance.Recommend(kpis)

	evaluation := &domain.Evaluation{
		ID:              id,
		Assumptions:     assumptions,
		Investment:      inv,
		SaaS:            saas,
		Liquidity:       liquidity,
		BreakEven:       breakEven,
		Stress:          stress,
		KPIs:            kpis,
		Recommendations: recommendations,
		Charts:          buildCharts(assumptions.Investment, inv, liquidity, stress),
		EvaluatedAt:     s.now().UTC(),
	}

	s.metrics.ObserveEvaluation(KindFull, time.Since(start))
	s.metrics.RecordRecommendations(recommendations)
	s.metrics.RecordUndefinedKPIs(kpis)

	log.ForContext(ctx).WithFields(log.Fields{
		"evaluation_id": id,
		"npv":           inv.NPV,
		"passed":        passedCount(recommendations),
	}).Debug("evaluating: evaluation completed")

	return evaluation, nil
}

func (s *Service) EvaluateInvestment(ctx context.Context, a domain.InvestmentAssumptions) (*domain.InvestmentResult, error) {
	if err := s.validate("investment", a); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	result := finance.EvaluateInvestment(a)
	s.metrics.ObserveEvaluation(KindInvestment, time.Since(start))

	return &result, nil
}

func (s *Service) EvaluateSaaS(ctx context.Context, a domain.SaaSAssumptions) (*domain.SaaSResult, error) {
	if err := s.validate("saas", a); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	result := finance.EvaluateSaaS(a)
	s.metrics.ObserveEvaluation(KindSaaS, time.Since(start))

	return &result, nil
}

func (s *Service) EvaluateLiquidity(ctx context.Context, a domain.LiquidityAssumptions) (*domain.LiquidityResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	result := finance.EvaluateLiquidity(a)
	s.metrics.ObserveEvaluation(KindLiquidity, time.Since(start))

	return &result, nil
}

func (s *Service) EvaluateBreakEven(ctx context.Context, a domain.BreakEvenAssumptions) (*domain.BreakEvenResult, error) {
	if err := s.validate("break_even", a); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	result := finance.EvaluateBreakEven(a)
	s.metrics.ObserveEvaluation(KindBreakEven, time.Since(start))

	return &result, nil
}

func (s *Service) EvaluateStress(ctx context.Context, a domain.StressAssumptions) (*domain.StressResult, error) {
	if err := s.validate("stress", a); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	result := finance.EvaluateStress(a)
	s.metrics.ObserveEvaluation(KindStress, time.Since(start))

	return &result, nil
}

func buildCharts(
	a domain.InvestmentAssumptions,
	inv domain.InvestmentResult,
	liquidity domain.LiquidityResult,
	stress domain.StressResult,
) domain.Charts {
	hurdle := make([]float64, len(inv.Projection))
	for i := range hurdle {
		hurdle[i] = utils.RoundWithTwoDecimalPlace(a.DiscountRate * 100)
	}

	return domain.Charts{
		CashFlow:           inv.CashFlows,
		CumulativeCashFlow: inv.CumulativeCashFlow,
		Projection:         inv.Projection,
		ROIC:               inv.ROIC,
		HurdleRate:         hurdle,
		CCCBreakdown:       liquidity.Breakdown,
		Stress:             stress,
	}
}

func passedCount(recommendations []domain.Recommendation) int {
	n := 0
	for _, r := range recommendations {
		if r.Passed() {
			n++
		}
	}
	return n
}
