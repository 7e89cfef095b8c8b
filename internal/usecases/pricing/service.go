package pricing

import (
	"context"
	"time"

	"github.com/vfg2006/menu-pricing-api/infrastructure/repository"
	"github.com/vfg2006/menu-pricing-api/internal/domain"
	"github.com/vfg2006/menu-pricing-api/pkg/log"
	"github.com/vfg2006/menu-pricing-api/pkg/utils"
)

// DemandReader expõe a leitura de demanda usada no cálculo de preço
type DemandReader interface {
	OrderCountForCurrentHour(ctx context.Context, dishID string) int
}

// Options controla fatores opcionais do cálculo. O zero value calcula
// com demanda e sem clima.
type Options struct {
	// SkipDemand pula a consulta de demanda (fator neutro)
	SkipDemand bool
	// ConsiderWeather liga o fator climático usando WeatherCondition
	ConsiderWeather bool
	// WeatherCondition é a condição já resolvida pelo integrador
	WeatherCondition string
	// StockLevel é o estoque corrente do prato, quando conhecido.
	// Usado apenas pelas regras de estoque baixo.
	StockLevel *int
}

type PricingService interface {
	Calculate(ctx context.Context, dish *domain.Dish, opts Options) *domain.PriceBreakdown
	ApplyPricingRules(ctx context.Context, dish *domain.Dish, opts Options) *domain.PriceBreakdown
}

type Service struct {
	ruleRepository repository.PricingRuleRepository
	demandReader   DemandReader
}

func NewService(
	ruleRepository repository.PricingRuleRepository,
	demandReader DemandReader,
) *Service {
	return &Service{
		ruleRepository: ruleRepository,
		demandReader:   demandReader,
	}
}

// Calculate aplica as tabelas fixas de multiplicadores (horário de pico,
// dia da semana, demanda e clima) sobre o preço base do prato. Fatores
// neutros (1.0) ficam fora do detalhamento. O cálculo nunca falha: erros
// de leitura de demanda degradam para o fator neutro.
func (s *Service) Calculate(ctx context.Context, dish *domain.Dish, opts Options) *domain.PriceBreakdown {
	return s.calculateAt(ctx, dish, opts, time.Now())
}

func (s *Service) calculateAt(ctx context.Context, dish *domain.Dish, opts Options, now time.Time) *domain.PriceBreakdown {
	breakdown := &domain.PriceBreakdown{
		DishID:          dish.ID,
		BasePrice:       dish.BasePrice,
		TotalMultiplier: 1.0,
		CalculatedAt:    now,
	}

	multiplier, reason := CalculatePeakHourMultiplier(now)
	breakdown.Apply(FactorPeakHour, multiplier, reason)

	multiplier, reason = CalculateDayOfWeekMultiplier(now)
	breakdown.Apply(FactorDay, multiplier, reason)

	if !opts.SkipDemand {
		orderCount := s.demandReader.OrderCountForCurrentHour(ctx, dish.ID)
		multiplier, reason = CalculateDemandMultiplier(orderCount)
		breakdown.Apply(FactorDemand, multiplier, reason)
	}

	if opts.ConsiderWeather {
		multiplier, reason = CalculateWeatherMultiplier(opts.WeatherCondition)
		breakdown.Apply(FactorWeather, multiplier, reason)
	}

	breakdown.Price = utils.RoundWithTwoDecimalPlace(dish.BasePrice * breakdown.TotalMultiplier)

	return breakdown
}

// ApplyPricingRules calcula o preço pelas regras configuráveis da base,
// em ordem de prioridade decrescente. Regras cujo escopo ou condição não
// correspondem são ignoradas. Falha na carga das regras degrada para o
// preço base (fail-open): indisponibilidade de regra nunca derruba a
// consulta de preço.
func (s *Service) ApplyPricingRules(ctx context.Context, dish *domain.Dish, opts Options) *domain.PriceBreakdown {
	now := time.Now()

	breakdown := &domain.PriceBreakdown{
		DishID:          dish.ID,
		BasePrice:       dish.BasePrice,
		TotalMultiplier: 1.0,
		CalculatedAt:    now,
	}

	rules, err := s.ruleRepository.GetActiveRules()
	if err != nil {
		log.ForContext(ctx).WithError(err).
			Warn("Falha ao carregar regras de precificação, mantendo preço base")
		breakdown.Price = utils.RoundWithTwoDecimalPlace(dish.BasePrice)

		return breakdown
	}

	rulesCtx := domain.RuleContext{
		Now:        now,
		StockLevel: opts.StockLevel,
		Weather:    opts.WeatherCondition,
	}

	if !opts.SkipDemand && s.hasDemandRule(rules) {
		rulesCtx.OrderCount = s.demandReader.OrderCountForCurrentHour(ctx, dish.ID)
	}

	for _, rule := range rules {
		if !rule.AppliesTo(dish.ID, dish.CategoryID) {
			continue
		}

		if rule.Condition == nil || !rule.Condition.Matches(rulesCtx) {
			continue
		}

		breakdown.Apply(FactorRule, rule.Multiplier, rule.Name)
	}

	breakdown.Price = utils.RoundWithTwoDecimalPlace(dish.BasePrice * breakdown.TotalMultiplier)

	return breakdown
}

func (s *Service) hasDemandRule(rules []*domain.PricingRule) bool {
	for _, rule := range rules {
		if rule.Type == domain.RuleTypeDemandThreshold {
			return true
		}
	}

	return false
}
