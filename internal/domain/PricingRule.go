package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// RuleType identifica o tipo de regra de precificação
type RuleType string

const (
	RuleTypePeakHour        RuleType = "peak_hour"
	RuleTypeDemandThreshold RuleType = "demand_threshold"
	RuleTypeInventoryLow    RuleType = "inventory_low"
	RuleTypeWeather         RuleType = "weather"
	RuleTypeDayOfWeek       RuleType = "day_of_week"
	RuleTypeEvent           RuleType = "event"
)

// RuleContext carrega os sinais que uma regra pode avaliar
type RuleContext struct {
	Now        time.Time
	OrderCount int
	StockLevel *int
	Weather    string
}

// RuleCondition é a condição tipada de uma regra. Cada tipo de regra
// possui seu próprio payload, formando um conjunto fechado de variantes
// em vez de um switch sobre strings arbitrárias.
type RuleCondition interface {
	Type() RuleType
	Matches(ctx RuleContext) bool
}

// PeakHourCondition corresponde a uma janela diária de horas [start, end)
type PeakHourCondition struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

func (PeakHourCondition) Type() RuleType { return RuleTypePeakHour }

func (c PeakHourCondition) Matches(ctx RuleContext) bool {
	hour := ctx.Now.Hour()
	return hour >= c.StartHour && hour < c.EndHour
}

// DemandThresholdCondition corresponde quando o número de pedidos da hora
// corrente atinge o mínimo configurado
type DemandThresholdCondition struct {
	MinOrders int `json:"min_orders"`
}

func (DemandThresholdCondition) Type() RuleType { return RuleTypeDemandThreshold }

func (c DemandThresholdCondition) Matches(ctx RuleContext) bool {
	return ctx.OrderCount >= c.MinOrders
}

// InventoryLowCondition corresponde quando o estoque informado está abaixo
// ou igual ao limite. Sem sinal de estoque, a regra não se aplica.
type InventoryLowCondition struct {
	MaxStock int `json:"max_stock"`
}

func (InventoryLowCondition) Type() RuleType { return RuleTypeInventoryLow }

func (c InventoryLowCondition) Matches(ctx RuleContext) bool {
	if ctx.StockLevel == nil {
		return false
	}
	return *ctx.StockLevel <= c.MaxStock
}

// WeatherCondition corresponde quando a condição climática corrente está
// na lista configurada
type WeatherCondition struct {
	Conditions []string `json:"conditions"`
}

func (WeatherCondition) Type() RuleType { return RuleTypeWeather }

func (c WeatherCondition) Matches(ctx RuleContext) bool {
	if ctx.Weather == "" {
		return false
	}
	for _, condition := range c.Conditions {
		if condition == ctx.Weather {
			return true
		}
	}
	return false
}

// DayOfWeekCondition corresponde a um conjunto de dias da semana (0 = domingo)
type DayOfWeekCondition struct {
	Days []int `json:"days"`
}

func (DayOfWeekCondition) Type() RuleType { return RuleTypeDayOfWeek }

func (c DayOfWeekCondition) Matches(ctx RuleContext) bool {
	weekday := int(ctx.Now.Weekday())
	for _, day := range c.Days {
		if day == weekday {
			return true
		}
	}
	return false
}

// EventCondition corresponde a datas específicas (formato 2006-01-02)
type EventCondition struct {
	Dates []string `json:"dates"`
}

func (EventCondition) Type() RuleType { return RuleTypeEvent }

func (c EventCondition) Matches(ctx RuleContext) bool {
	today := ctx.Now.Format(time.DateOnly)
	for _, date := range c.Dates {
		if date == today {
			return true
		}
	}
	return false
}

// PricingRule representa uma regra de precificação gerenciada pelo
// ferramental administrativo.
//
// A prioridade define apenas a ordem de retorno das regras (maior
// primeiro); todas as regras ativas que correspondem são multiplicadas
// entre si, independentemente da prioridade.
type PricingRule struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Type        RuleType      `json:"rule_type"`
	Condition   RuleCondition `json:"condition"`
	Multiplier  float64       `json:"multiplier"`
	Priority    int           `json:"priority"`
	Active      bool          `json:"active"`
	CategoryIDs []string      `json:"category_ids,omitempty"`
	DishIDs     []string      `json:"dish_ids,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// AppliesTo verifica o escopo da regra: sem escopo definido, a regra vale
// para todos os pratos
func (r *PricingRule) AppliesTo(dishID, categoryID string) bool {
	if len(r.DishIDs) == 0 && len(r.CategoryIDs) == 0 {
		return true
	}

	for _, id := range r.DishIDs {
		if id == dishID {
			return true
		}
	}

	for _, id := range r.CategoryIDs {
		if id == categoryID {
			return true
		}
	}

	return false
}

// DecodeRuleCondition decodifica o payload JSON da condição conforme o
// tipo da regra. Tipos desconhecidos são rejeitados na leitura, não em
// tempo de avaliação.
func DecodeRuleCondition(ruleType RuleType, raw []byte) (RuleCondition, error) {
	switch ruleType {
	case RuleTypePeakHour:
		var c PeakHourCondition
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return c, nil
	case RuleTypeDemandThreshold:
		var c DemandThresholdCondition
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return c, nil
	case RuleTypeInventoryLow:
		var c InventoryLowCondition
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return c, nil
	case RuleTypeWeather:
		var c WeatherCondition
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return c, nil
	case RuleTypeDayOfWeek:
		var c DayOfWeekCondition
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return c, nil
	case RuleTypeEvent:
		var c EventCondition
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("tipo de regra desconhecido: %s", ruleType)
	}
}
