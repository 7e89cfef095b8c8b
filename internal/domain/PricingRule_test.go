package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecodeRuleCondition(t *testing.T) {
	tests := []struct {
		name     string
		ruleType RuleType
		raw      string
		expected RuleCondition
		hasError bool
	}{
		{
			name:     "Condição de horário de pico",
			ruleType: RuleTypePeakHour,
			raw:      `{"start_hour": 17, "end_hour": 19}`,
			expected: PeakHourCondition{StartHour: 17, EndHour: 19},
		},
		{
			name:     "Condição de faixa de demanda",
			ruleType: RuleTypeDemandThreshold,
			raw:      `{"min_orders": 15}`,
			expected: DemandThresholdCondition{MinOrders: 15},
		},
		{
			name:     "Condição de estoque baixo",
			ruleType: RuleTypeInventoryLow,
			raw:      `{"max_stock": 5}`,
			expected: InventoryLowCondition{MaxStock: 5},
		},
		{
			name:     "Condição climática",
			ruleType: RuleTypeWeather,
			raw:      `{"conditions": ["rain", "storm"]}`,
			expected: WeatherCondition{Conditions: []string{"rain", "storm"}},
		},
		{
			name:     "Condição de dia da semana",
			ruleType: RuleTypeDayOfWeek,
			raw:      `{"days": [0, 6]}`,
			expected: DayOfWeekCondition{Days: []int{0, 6}},
		},
		{
			name:     "Condição de evento",
			ruleType: RuleTypeEvent,
			raw:      `{"dates": ["2024-12-25"]}`,
			expected: EventCondition{Dates: []string{"2024-12-25"}},
		},
		{
			name:     "Tipo desconhecido deve ser rejeitado na leitura",
			ruleType: RuleType("happy_hour"),
			raw:      `{}`,
			hasError: true,
		},
		{
			name:     "Payload inválido deve retornar erro",
			ruleType: RuleTypePeakHour,
			raw:      `{"start_hour": "cinco"}`,
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			condition, err := DecodeRuleCondition(tt.ruleType, []byte(tt.raw))

			if tt.hasError {
				assert.Error(t, err)
				assert.Nil(t, condition)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, condition)
			}
		})
	}
}

func TestRuleConditions_Matches(t *testing.T) {
	// Sexta-feira, 14 de junho de 2024, 18h30
	now := time.Date(2024, 6, 14, 18, 30, 0, 0, time.Local)
	stock := 3

	tests := []struct {
		name      string
		condition RuleCondition
		ctx       RuleContext
		expected  bool
	}{
		{
			name:      "Hora dentro da janela de pico",
			condition: PeakHourCondition{StartHour: 17, EndHour: 19},
			ctx:       RuleContext{Now: now},
			expected:  true,
		},
		{
			name:      "Hora igual ao fim da janela está fora",
			condition: PeakHourCondition{StartHour: 17, EndHour: 18},
			ctx:       RuleContext{Now: now},
			expected:  false,
		},
		{
			name:      "Demanda no limite mínimo corresponde",
			condition: DemandThresholdCondition{MinOrders: 15},
			ctx:       RuleContext{Now: now, OrderCount: 15},
			expected:  true,
		},
		{
			name:      "Demanda abaixo do mínimo não corresponde",
			condition: DemandThresholdCondition{MinOrders: 15},
			ctx:       RuleContext{Now: now, OrderCount: 14},
			expected:  false,
		},
		{
			name:      "Estoque abaixo do limite corresponde",
			condition: InventoryLowCondition{MaxStock: 5},
			ctx:       RuleContext{Now: now, StockLevel: &stock},
			expected:  true,
		},
		{
			name:      "Sem sinal de estoque a regra não se aplica",
			condition: InventoryLowCondition{MaxStock: 5},
			ctx:       RuleContext{Now: now},
			expected:  false,
		},
		{
			name:      "Clima na lista configurada corresponde",
			condition: WeatherCondition{Conditions: []string{"rain", "storm"}},
			ctx:       RuleContext{Now: now, Weather: "storm"},
			expected:  true,
		},
		{
			name:      "Clima vazio não corresponde",
			condition: WeatherCondition{Conditions: []string{"rain"}},
			ctx:       RuleContext{Now: now},
			expected:  false,
		},
		{
			name:      "Sexta-feira no conjunto de dias corresponde",
			condition: DayOfWeekCondition{Days: []int{5, 6}},
			ctx:       RuleContext{Now: now},
			expected:  true,
		},
		{
			name:      "Sexta-feira fora do conjunto de dias não corresponde",
			condition: DayOfWeekCondition{Days: []int{0, 6}},
			ctx:       RuleContext{Now: now},
			expected:  false,
		},
		{
			name:      "Data de evento corresponde",
			condition: EventCondition{Dates: []string{"2024-06-14"}},
			ctx:       RuleContext{Now: now},
			expected:  true,
		},
		{
			name:      "Data de evento diferente não corresponde",
			condition: EventCondition{Dates: []string{"2024-12-25"}},
			ctx:       RuleContext{Now: now},
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.condition.Matches(tt.ctx))
		})
	}
}

func TestPricingRule_AppliesTo(t *testing.T) {
	tests := []struct {
		name     string
		rule     PricingRule
		dishID   string
		category string
		expected bool
	}{
		{
			name:     "Regra sem escopo vale para todos os pratos",
			rule:     PricingRule{},
			dishID:   "DSH001",
			category: "mains",
			expected: true,
		},
		{
			name:     "Regra com escopo de prato vale para o prato listado",
			rule:     PricingRule{DishIDs: []string{"DSH001", "DSH002"}},
			dishID:   "DSH002",
			category: "mains",
			expected: true,
		},
		{
			name:     "Regra com escopo de prato não vale para outros pratos",
			rule:     PricingRule{DishIDs: []string{"DSH001"}},
			dishID:   "DSH003",
			category: "mains",
			expected: false,
		},
		{
			name:     "Regra com escopo de categoria vale para a categoria listada",
			rule:     PricingRule{CategoryIDs: []string{"pizzas"}},
			dishID:   "DSH010",
			category: "pizzas",
			expected: true,
		},
		{
			name:     "Escopos de prato e categoria são alternativos",
			rule:     PricingRule{DishIDs: []string{"DSH001"}, CategoryIDs: []string{"pizzas"}},
			dishID:   "DSH010",
			category: "pizzas",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rule.AppliesTo(tt.dishID, tt.category))
		})
	}
}

func TestPriceBreakdown_Apply(t *testing.T) {
	breakdown := &PriceBreakdown{TotalMultiplier: 1.0}

	breakdown.Apply("Peak Hour", 1.25, "Dinner Rush")
	breakdown.Apply("Day Premium", 1.0, "Regular Day") // neutro não entra
	breakdown.Apply("Demand", 1.20, "High Demand")

	assert.InDelta(t, 1.50, breakdown.TotalMultiplier, 0.0001)
	assert.Len(t, breakdown.Multipliers, 2)
	assert.Equal(t, "Dinner Rush + High Demand", breakdown.PriceReason())
}

func TestPriceBreakdown_PriceReason(t *testing.T) {
	breakdown := &PriceBreakdown{TotalMultiplier: 1.0}

	assert.Equal(t, "Base Price", breakdown.PriceReason())
}
