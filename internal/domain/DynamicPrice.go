package domain

import (
	"strings"
	"time"
)

// DynamicPrice é o registro por prato do último preço calculado.
// Invariante: CurrentPrice = round(BasePrice * Multiplier, 2).
type DynamicPrice struct {
	DishID       string     `json:"dish_id"`
	BasePrice    float64    `json:"base_price"`
	CurrentPrice float64    `json:"current_price"`
	Reason       string     `json:"reason"`
	Multiplier   float64    `json:"multiplier"`
	Active       bool       `json:"active"`
	ValidFrom    *time.Time `json:"valid_from,omitempty"`
	ValidUntil   *time.Time `json:"valid_until,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// PricingHistoryEntry é o registro de auditoria de mudança de preço.
// Append-only: nunca é atualizado nem removido.
type PricingHistoryEntry struct {
	ID        int       `json:"id"`
	DishID    string    `json:"dish_id"`
	OldPrice  float64   `json:"old_price"`
	NewPrice  float64   `json:"new_price"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// MultiplierDetail descreve um fator aplicado no cálculo do preço
type MultiplierDetail struct {
	Factor     string  `json:"factor"`
	Multiplier float64 `json:"multiplier"`
	Reason     string  `json:"reason"`
}

// PriceBreakdown é o resultado do cálculo de preço dinâmico: o preço
// final, o preço base e a lista dos fatores diferentes de 1.0 que foram
// compostos por multiplicação.
type PriceBreakdown struct {
	DishID          string             `json:"dish_id"`
	Price           float64            `json:"price"`
	BasePrice       float64            `json:"base_price"`
	Multipliers     []MultiplierDetail `json:"multipliers"`
	TotalMultiplier float64            `json:"total_multiplier"`
	CalculatedAt    time.Time          `json:"calculated_at"`
}

// Apply compõe um fator no multiplicador total. Fatores neutros (1.0)
// não entram no detalhamento.
func (b *PriceBreakdown) Apply(factor string, multiplier float64, reason string) {
	if multiplier == 1.0 {
		return
	}

	b.TotalMultiplier *= multiplier
	b.Multipliers = append(b.Multipliers, MultiplierDetail{
		Factor:     factor,
		Multiplier: multiplier,
		Reason:     reason,
	})
}

// PriceReason resume os motivos dos fatores aplicados para o registro
// de preço dinâmico e o histórico
func (b *PriceBreakdown) PriceReason() string {
	if len(b.Multipliers) == 0 {
		return "Base Price"
	}

	reasons := make([]string, 0, len(b.Multipliers))
	for _, detail := range b.Multipliers {
		reasons = append(reasons, detail.Reason)
	}

	return strings.Join(reasons, " + ")
}
