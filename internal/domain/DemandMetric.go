package domain

import "time"

// DemandMetric é o balde de agregação de demanda por prato, data e hora.
// Os contadores nunca decrescem dentro de um balde; a retenção é
// responsabilidade externa.
type DemandMetric struct {
	DishID       string    `json:"dish_id"`
	Date         string    `json:"date"` // formato 2006-01-02
	Hour         int       `json:"hour"` // 0-23
	ViewCount    int       `json:"view_count"`
	CartAddCount int       `json:"cart_add_count"`
	OrderCount   int       `json:"order_count"`
	Revenue      float64   `json:"revenue"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DemandBucketKey identifica o balde corrente para um prato
func DemandBucketKey(at time.Time) (date string, hour int) {
	return at.Format(time.DateOnly), at.Hour()
}
