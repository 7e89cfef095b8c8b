package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/menu-pricing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/menu-pricing-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// stubDemandReader devolve sempre a mesma contagem de pedidos
type stubDemandReader struct {
	orderCount int
}

func (s stubDemandReader) OrderCountForCurrentHour(_ context.Context, _ string) int {
	return s.orderCount
}

func TestService_Calculate(t *testing.T) {
	dish := &domain.Dish{
		ID:         "DSH001",
		Name:       "Feijoada Completa",
		CategoryID: "mains",
		BasePrice:  20.00,
		Status:     domain.DishStatusActive,
	}

	tests := []struct {
		name       string
		dish       *domain.Dish
		opts       Options
		orderCount int
		now        time.Time
		validate   func(t *testing.T, result *domain.PriceBreakdown)
	}{
		{
			name:       "Sexta-feira às 19h com alta demanda deve compor três fatores",
			dish:       dish,
			opts:       Options{},
			orderCount: 16,
			now:        time.Date(2024, 6, 14, 19, 0, 0, 0, time.Local),
			validate: func(t *testing.T, result *domain.PriceBreakdown) {
				// 20.00 * 1.25 (Dinner Rush) * 1.15 (Friday Night) * 1.20 (High Demand)
				assert.Equal(t, 34.50, result.Price)
				assert.InDelta(t, 1.725, result.TotalMultiplier, 0.0001)
				assert.Len(t, result.Multipliers, 3)

				assert.Equal(t, FactorPeakHour, result.Multipliers[0].Factor)
				assert.Equal(t, 1.25, result.Multipliers[0].Multiplier)
				assert.Equal(t, "Dinner Rush", result.Multipliers[0].Reason)

				assert.Equal(t, FactorDay, result.Multipliers[1].Factor)
				assert.Equal(t, 1.15, result.Multipliers[1].Multiplier)
				assert.Equal(t, "Friday Night", result.Multipliers[1].Reason)

				assert.Equal(t, FactorDemand, result.Multipliers[2].Factor)
				assert.Equal(t, 1.20, result.Multipliers[2].Multiplier)
				assert.Equal(t, "High Demand", result.Multipliers[2].Reason)
			},
		},
		{
			name: "Fatores devem compor por multiplicação, não por soma",
			dish: &domain.Dish{
				ID:        "DSH002",
				BasePrice: 10.00,
			},
			opts:       Options{},
			orderCount: 16,
			now:        time.Date(2024, 6, 12, 12, 0, 0, 0, time.Local),
			validate: func(t *testing.T, result *domain.PriceBreakdown) {
				// 10.00 * 1.15 * 1.20 = 13.80 (soma daria 13.50)
				assert.Equal(t, 13.80, result.Price)
				assert.Len(t, result.Multipliers, 2)
			},
		},
		{
			name: "Preço final deve ser arredondado para duas casas",
			dish: &domain.Dish{
				ID:        "DSH003",
				BasePrice: 9.99,
			},
			opts:       Options{SkipDemand: true},
			orderCount: 0,
			now:        time.Date(2024, 6, 12, 19, 0, 0, 0, time.Local),
			validate: func(t *testing.T, result *domain.PriceBreakdown) {
				// 9.99 * 1.25 = 12.4875 -> 12.49
				assert.Equal(t, 12.49, result.Price)
			},
		},
		{
			name:       "Fora de pico em dia regular sem demanda retorna preço base",
			dish:       dish,
			opts:       Options{},
			orderCount: 3,
			now:        time.Date(2024, 6, 12, 9, 0, 0, 0, time.Local),
			validate: func(t *testing.T, result *domain.PriceBreakdown) {
				assert.Equal(t, 20.00, result.Price)
				assert.Equal(t, 1.0, result.TotalMultiplier)
				assert.Empty(t, result.Multipliers)
				assert.Equal(t, "Base Price", result.PriceReason())
			},
		},
		{
			name:       "SkipDemand deve ignorar a contagem de pedidos",
			dish:       dish,
			opts:       Options{SkipDemand: true},
			orderCount: 30,
			now:        time.Date(2024, 6, 12, 9, 0, 0, 0, time.Local),
			validate: func(t *testing.T, result *domain.PriceBreakdown) {
				assert.Equal(t, 20.00, result.Price)
				assert.Empty(t, result.Multipliers)
			},
		},
		{
			name:       "Clima chuvoso deve aplicar fator climático quando solicitado",
			dish:       dish,
			opts:       Options{SkipDemand: true, ConsiderWeather: true, WeatherCondition: "rain"},
			orderCount: 0,
			now:        time.Date(2024, 6, 12, 9, 0, 0, 0, time.Local),
			validate: func(t *testing.T, result *domain.PriceBreakdown) {
				// 20.00 * 1.15 = 23.00
				assert.Equal(t, 23.00, result.Price)
				assert.Len(t, result.Multipliers, 1)
				assert.Equal(t, FactorWeather, result.Multipliers[0].Factor)
				assert.Equal(t, "Rainy Weather", result.Multipliers[0].Reason)
			},
		},
		{
			name:       "Desconto de madrugada deve reduzir o preço",
			dish:       dish,
			opts:       Options{SkipDemand: true},
			orderCount: 0,
			now:        time.Date(2024, 6, 12, 22, 30, 0, 0, time.Local),
			validate: func(t *testing.T, result *domain.PriceBreakdown) {
				// 20.00 * 0.90 = 18.00
				assert.Equal(t, 18.00, result.Price)
				assert.Equal(t, "Late Night", result.Multipliers[0].Reason)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &Service{
				demandReader: stubDemandReader{orderCount: tt.orderCount},
			}

			result := service.calculateAt(context.Background(), tt.dish, tt.opts, tt.now)

			assert.Equal(t, tt.dish.ID, result.DishID)
			assert.Equal(t, tt.dish.BasePrice, result.BasePrice)
			tt.validate(t, result)
		})
	}
}

func TestService_Calculate_Idempotence(t *testing.T) {
	dish := &domain.Dish{ID: "DSH001", BasePrice: 20.00}
	now := time.Date(2024, 6, 14, 19, 0, 0, 0, time.Local)

	service := &Service{
		demandReader: stubDemandReader{orderCount: 16},
	}

	first := service.calculateAt(context.Background(), dish, Options{}, now)
	second := service.calculateAt(context.Background(), dish, Options{}, now)

	assert.Equal(t, first.Price, second.Price)
	assert.Equal(t, first.TotalMultiplier, second.TotalMultiplier)
	assert.Equal(t, first.Multipliers, second.Multipliers)
}

func TestService_ApplyPricingRules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRuleRepo := mocks.NewMockPricingRuleRepository(ctrl)

	dish := &domain.Dish{
		ID:         "DSH001",
		Name:       "Feijoada Completa",
		CategoryID: "mains",
		BasePrice:  20.00,
		Status:     domain.DishStatusActive,
	}

	tests := []struct {
		name       string
		opts       Options
		orderCount int
		setup      func()
		validate   func(t *testing.T, result *domain.PriceBreakdown)
	}{
		{
			name:       "Falha ao carregar regras deve manter o preço base (fail-open)",
			opts:       Options{},
			orderCount: 0,
			setup: func() {
				mockRuleRepo.EXPECT().
					GetActiveRules().
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, result *domain.PriceBreakdown) {
				assert.Equal(t, 20.00, result.Price)
				assert.Equal(t, 1.0, result.TotalMultiplier)
				assert.Empty(t, result.Multipliers)
			},
		},
		{
			name:       "Regra de demanda deve aplicar quando a contagem atinge o mínimo",
			opts:       Options{},
			orderCount: 16,
			setup: func() {
				mockRuleRepo.EXPECT().
					GetActiveRules().
					Return([]*domain.PricingRule{
						{
							ID:         "RUL001",
							Name:       "Alta Demanda",
							Type:       domain.RuleTypeDemandThreshold,
							Condition:  domain.DemandThresholdCondition{MinOrders: 15},
							Multiplier: 1.25,
							Priority:   10,
							Active:     true,
						},
					}, nil)
			},
			validate: func(t *testing.T, result *domain.PriceBreakdown) {
				assert.Equal(t, 25.00, result.Price)
				assert.Len(t, result.Multipliers, 1)
				assert.Equal(t, FactorRule, result.Multipliers[0].Factor)
				assert.Equal(t, "Alta Demanda", result.Multipliers[0].Reason)
			},
		},
		{
			name:       "Regra de demanda não deve aplicar abaixo do mínimo",
			opts:       Options{},
			orderCount: 5,
			setup: func() {
				mockRuleRepo.EXPECT().
					GetActiveRules().
					Return([]*domain.PricingRule{
						{
							ID:         "RUL001",
							Name:       "Alta Demanda",
							Type:       domain.RuleTypeDemandThreshold,
							Condition:  domain.DemandThresholdCondition{MinOrders: 15},
							Multiplier: 1.25,
							Active:     true,
						},
					}, nil)
			},
			validate: func(t *testing.T, result *domain.PriceBreakdown) {
				assert.Equal(t, 20.00, result.Price)
				assert.Empty(t, result.Multipliers)
			},
		},
		{
			name:       "Regra com escopo de outro prato deve ser ignorada",
			opts:       Options{SkipDemand: true},
			orderCount: 0,
			setup: func() {
				mockRuleRepo.EXPECT().
					GetActiveRules().
					Return([]*domain.PricingRule{
						{
							ID:         "RUL002",
							Name:       "Promoção Pizza",
							Type:       domain.RuleTypeInventoryLow,
							Condition:  domain.InventoryLowCondition{MaxStock: 100},
							Multiplier: 0.85,
							Active:     true,
							DishIDs:    []string{"DSH999"},
						},
					}, nil)
			},
			validate: func(t *testing.T, result *domain.PriceBreakdown) {
				assert.Equal(t, 20.00, result.Price)
				assert.Empty(t, result.Multipliers)
			},
		},
		{
			name:       "Regra com escopo de categoria deve aplicar aos pratos da categoria",
			opts:       Options{SkipDemand: true, StockLevel: intPtr(3)},
			orderCount: 0,
			setup: func() {
				mockRuleRepo.EXPECT().
					GetActiveRules().
					Return([]*domain.PricingRule{
						{
							ID:          "RUL003",
							Name:        "Estoque Baixo",
							Type:        domain.RuleTypeInventoryLow,
							Condition:   domain.InventoryLowCondition{MaxStock: 5},
							Multiplier:  1.10,
							Active:      true,
							CategoryIDs: []string{"mains"},
						},
					}, nil)
			},
			validate: func(t *testing.T, result *domain.PriceBreakdown) {
				assert.Equal(t, 22.00, result.Price)
				assert.Len(t, result.Multipliers, 1)
				assert.Equal(t, "Estoque Baixo", result.Multipliers[0].Reason)
			},
		},
		{
			name:       "Regra de estoque não deve aplicar sem sinal de estoque",
			opts:       Options{SkipDemand: true},
			orderCount: 0,
			setup: func() {
				mockRuleRepo.EXPECT().
					GetActiveRules().
					Return([]*domain.PricingRule{
						{
							ID:         "RUL003",
							Name:       "Estoque Baixo",
							Type:       domain.RuleTypeInventoryLow,
							Condition:  domain.InventoryLowCondition{MaxStock: 5},
							Multiplier: 1.10,
							Active:     true,
						},
					}, nil)
			},
			validate: func(t *testing.T, result *domain.PriceBreakdown) {
				assert.Equal(t, 20.00, result.Price)
				assert.Empty(t, result.Multipliers)
			},
		},
		{
			name:       "Múltiplas regras correspondentes devem compor por multiplicação",
			opts:       Options{WeatherCondition: "rain"},
			orderCount: 20,
			setup: func() {
				mockRuleRepo.EXPECT().
					GetActiveRules().
					Return([]*domain.PricingRule{
						{
							ID:         "RUL004",
							Name:       "Demanda Extrema",
							Type:       domain.RuleTypeDemandThreshold,
							Condition:  domain.DemandThresholdCondition{MinOrders: 20},
							Multiplier: 1.30,
							Priority:   20,
							Active:     true,
						},
						{
							ID:         "RUL005",
							Name:       "Dia de Chuva",
							Type:       domain.RuleTypeWeather,
							Condition:  domain.WeatherCondition{Conditions: []string{"rain", "storm"}},
							Multiplier: 1.15,
							Priority:   5,
							Active:     true,
						},
					}, nil)
			},
			validate: func(t *testing.T, result *domain.PriceBreakdown) {
				// 20.00 * 1.30 * 1.15 = 29.90
				assert.Equal(t, 29.90, result.Price)
				assert.Len(t, result.Multipliers, 2)
				assert.Equal(t, "Demanda Extrema", result.Multipliers[0].Reason)
				assert.Equal(t, "Dia de Chuva", result.Multipliers[1].Reason)
			},
		},
		{
			name:       "Regra climática não deve aplicar sem condição resolvida",
			opts:       Options{SkipDemand: true},
			orderCount: 0,
			setup: func() {
				mockRuleRepo.EXPECT().
					GetActiveRules().
					Return([]*domain.PricingRule{
						{
							ID:         "RUL005",
							Name:       "Dia de Chuva",
							Type:       domain.RuleTypeWeather,
							Condition:  domain.WeatherCondition{Conditions: []string{"rain"}},
							Multiplier: 1.15,
							Active:     true,
						},
					}, nil)
			},
			validate: func(t *testing.T, result *domain.PriceBreakdown) {
				assert.Equal(t, 20.00, result.Price)
				assert.Empty(t, result.Multipliers)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			service := &Service{
				ruleRepository: mockRuleRepo,
				demandReader:   stubDemandReader{orderCount: tt.orderCount},
			}

			result := service.ApplyPricingRules(context.Background(), dish, tt.opts)

			assert.Equal(t, dish.ID, result.DishID)
			tt.validate(t, result)
		})
	}
}

func intPtr(i int) *int {
	return &i
}
