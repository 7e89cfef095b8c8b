package domain

import "time"

type DishStatus string

const (
	DishStatusActive   DishStatus = "active"
	DishStatusInactive DishStatus = "inactive"
)

// Dish representa um item vendável do cardápio
type Dish struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	CategoryID string     `json:"category_id"`
	BasePrice  float64    `json:"base_price"`
	Status     DishStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type UpdateDishRequest struct {
	ID         string   `json:"id"`
	Name       *string  `json:"name"`
	CategoryID *string  `json:"category_id"`
	BasePrice  *float64 `json:"base_price"`
	Status     *string  `json:"status"`
}
