package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/menu-pricing-api/infrastructure/database/postgres"
	"github.com/vfg2006/menu-pricing-api/internal/domain"
)

const (
	pricingHistoryTable = "pricing_history ph"
)

type PricingHistoryRepository interface {
	Insert(entry *domain.PricingHistoryEntry) error
	ListByDishID(dishID string, limit uint64) ([]*domain.PricingHistoryEntry, error)
}

type pricingHistoryRepository struct {
	conn *postgres.Connection
}

func NewPricingHistoryRepository(conn *postgres.Connection) PricingHistoryRepository {
	return &pricingHistoryRepository{
		conn: conn,
	}
}

func (r *pricingHistoryRepository) Insert(entry *domain.PricingHistoryEntry) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("pricing_history").
		Columns("dish_id", "old_price", "new_price", "reason").
		Values(entry.DishID, entry.OldPrice, entry.NewPrice, entry.Reason).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao inserir histórico de preço: %w", err)
	}

	return nil
}

func (r *pricingHistoryRepository) ListByDishID(dishID string, limit uint64) ([]*domain.PricingHistoryEntry, error) {
	if limit == 0 {
		limit = 50
	}

	query, args, err := squirrel.
		Select("ph.id, ph.dish_id, ph.old_price, ph.new_price, ph.reason, ph.created_at").
		From(pricingHistoryTable).
		Where(squirrel.Eq{"ph.dish_id": dishID}).
		OrderBy("ph.created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.PricingHistoryEntry{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.PricingHistoryEntry, 0)
	for rows.Next() {
		entry := &domain.PricingHistoryEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.DishID,
			&entry.OldPrice,
			&entry.NewPrice,
			&entry.Reason,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico: %w", err)
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
