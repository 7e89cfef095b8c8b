package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/menu-pricing-api/infrastructure/database/postgres"
	"github.com/vfg2006/menu-pricing-api/internal/domain"
)

const (
	dishesTable = "dishes d"
)

type DishRepository interface {
	ListDishes(statuses []domain.DishStatus) ([]*domain.Dish, error)
	GetByID(dishID string) (*domain.Dish, error)
	UpdateDish(dish *domain.Dish) error
}

type dishRepository struct {
	conn *postgres.Connection
}

func NewDishRepository(conn *postgres.Connection) DishRepository {
	return &dishRepository{
		conn: conn,
	}
}

func (r *dishRepository) ListDishes(statuses []domain.DishStatus) ([]*domain.Dish, error) {
	queryBuilder := squirrel.
		Select(
			"d.id",
			"d.name",
			"d.category_id",
			"d.base_price",
			"d.status",
			"d.created_at",
			"d.updated_at",
		).
		From(dishesTable).
		OrderBy("d.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"d.status": statuses})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Dish{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	dishes := make([]*domain.Dish, 0)
	for rows.Next() {
		dish := &domain.Dish{}
		err := rows.Scan(
			&dish.ID,
			&dish.Name,
			&dish.CategoryID,
			&dish.BasePrice,
			&dish.Status,
			&dish.CreatedAt,
			&dish.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear prato: %w", err)
		}

		dishes = append(dishes, dish)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return dishes, nil
}

func (r *dishRepository) GetByID(dishID string) (*domain.Dish, error) {
	query, args, err := squirrel.
		Select("d.id, d.name, d.category_id, d.base_price, d.status, d.created_at, d.updated_at").
		From(dishesTable).
		Where(squirrel.Eq{"d.id": dishID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	dish := &domain.Dish{}
	err = r.conn.QueryRow(query, args...).Scan(
		&dish.ID,
		&dish.Name,
		&dish.CategoryID,
		&dish.BasePrice,
		&dish.Status,
		&dish.CreatedAt,
		&dish.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear prato: %w", err)
	}

	return dish, nil
}

func (r *dishRepository) UpdateDish(dish *domain.Dish) error {
	query, args, err := squirrel.
		Update("dishes").
		Set("name", dish.Name).
		Set("category_id", dish.CategoryID).
		Set("base_price", dish.BasePrice).
		Set("status", dish.Status).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": dish.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar prato: %w", err)
	}

	return nil
}
