package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/menu-pricing-api/infrastructure/database/postgres"
	"github.com/vfg2006/menu-pricing-api/internal/domain"
)

const (
	dynamicPricesTable = "dynamic_prices dp"
)

type DynamicPriceRepository interface {
	GetByDishID(dishID string) (*domain.DynamicPrice, error)
	ListPrices() ([]*domain.DynamicPrice, error)
	SaveOrUpdate(price *domain.DynamicPrice) error
	SaveWithHistory(price *domain.DynamicPrice, entry *domain.PricingHistoryEntry) error
}

type dynamicPriceRepository struct {
	conn *postgres.Connection
}

func NewDynamicPriceRepository(conn *postgres.Connection) DynamicPriceRepository {
	return &dynamicPriceRepository{
		conn: conn,
	}
}

func (r *dynamicPriceRepository) GetByDishID(dishID string) (*domain.DynamicPrice, error) {
	query, args, err := squirrel.
		Select("dp.dish_id, dp.base_price, dp.current_price, dp.reason, dp.multiplier, dp.active, dp.valid_from, dp.valid_until, dp.updated_at").
		From(dynamicPricesTable).
		Where(squirrel.Eq{"dp.dish_id": dishID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	price, err := r.scanPriceRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear preço dinâmico: %w", err)
	}

	return price, nil
}

func (r *dynamicPriceRepository) ListPrices() ([]*domain.DynamicPrice, error) {
	query, args, err := squirrel.
		Select("dp.dish_id, dp.base_price, dp.current_price, dp.reason, dp.multiplier, dp.active, dp.valid_from, dp.valid_until, dp.updated_at").
		From(dynamicPricesTable).
		OrderBy("dp.updated_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.DynamicPrice{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	prices := make([]*domain.DynamicPrice, 0)
	for rows.Next() {
		price := &domain.DynamicPrice{}
		err := rows.Scan(
			&price.DishID,
			&price.BasePrice,
			&price.CurrentPrice,
			&price.Reason,
			&price.Multiplier,
			&price.Active,
			&price.ValidFrom,
			&price.ValidUntil,
			&price.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear preço dinâmico: %w", err)
		}

		prices = append(prices, price)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return prices, nil
}

func (r *dynamicPriceRepository) SaveOrUpdate(price *domain.DynamicPrice) error {
	query, args, err := r.upsertQuery(price)
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de upsert: %w", err)
	}

	return nil
}

// SaveWithHistory grava o preço e o registro de auditoria na mesma
// transação: ou ambos entram, ou nenhum.
func (r *dynamicPriceRepository) SaveWithHistory(price *domain.DynamicPrice, entry *domain.PricingHistoryEntry) error {
	upsertSQL, upsertArgs, err := r.upsertQuery(price)
	if err != nil {
		return err
	}

	historySQL, historyArgs, err := squirrel.StatementBuilder.
		Insert("pricing_history").
		Columns("dish_id", "old_price", "new_price", "reason").
		Values(entry.DishID, entry.OldPrice, entry.NewPrice, entry.Reason).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de histórico: %w", err)
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec(upsertSQL, upsertArgs...); err != nil {
			return fmt.Errorf("erro ao gravar preço dinâmico: %w", err)
		}

		if _, err := tx.Exec(historySQL, historyArgs...); err != nil {
			return fmt.Errorf("erro ao gravar histórico de preço: %w", err)
		}

		return nil
	})
}

func (r *dynamicPriceRepository) upsertQuery(price *domain.DynamicPrice) (string, []interface{}, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("dynamic_prices").
		Columns("dish_id", "base_price", "current_price", "reason", "multiplier", "active", "valid_from", "valid_until").
		Values(
			price.DishID,
			price.BasePrice,
			price.CurrentPrice,
			price.Reason,
			price.Multiplier,
			price.Active,
			price.ValidFrom,
			price.ValidUntil,
		).
		Suffix(`
			ON CONFLICT (dish_id) DO UPDATE SET
				base_price = EXCLUDED.base_price,
				current_price = EXCLUDED.current_price,
				reason = EXCLUDED.reason,
				multiplier = EXCLUDED.multiplier,
				active = EXCLUDED.active,
				valid_from = EXCLUDED.valid_from,
				valid_until = EXCLUDED.valid_until,
				updated_at = CURRENT_TIMESTAMP
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir query de upsert: %w", err)
	}

	return query, args, nil
}

func (r *dynamicPriceRepository) scanPriceRow(row *sql.Row) (*domain.DynamicPrice, error) {
	price := &domain.DynamicPrice{}

	err := row.Scan(
		&price.DishID,
		&price.BasePrice,
		&price.CurrentPrice,
		&price.Reason,
		&price.Multiplier,
		&price.Active,
		&price.ValidFrom,
		&price.ValidUntil,
		&price.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return price, nil
}
