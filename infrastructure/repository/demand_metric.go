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
	demandMetricsTable = "demand_metrics dm"
)

type DemandMetricRepository interface {
	IncrementView(ctx context.Context, dishID string, date string, hour int) error
	IncrementCartAdd(ctx context.Context, dishID string, date string, hour int) error
	IncrementOrder(ctx context.Context, dishID string, date string, hour int, amount float64) error
	GetOrderCount(ctx context.Context, dishID string, date string, hour int) (int, error)
	GetBucket(ctx context.Context, dishID string, date string, hour int) (*domain.DemandMetric, error)
}

type demandMetricRepository struct {
	conn *postgres.Connection
}

func NewDemandMetricRepository(conn *postgres.Connection) DemandMetricRepository {
	return &demandMetricRepository{
		conn: conn,
	}
}

// increment executa um upsert atômico no balde (dish_id, date, hour):
// um único INSERT ... ON CONFLICT DO UPDATE resolvido pelo banco, para que
// incrementos concorrentes no mesmo balde nunca percam atualizações.
// Nunca fazer read-modify-write em código de aplicação aqui.
func (r *demandMetricRepository) increment(
	ctx context.Context,
	dishID string,
	date string,
	hour int,
	viewDelta, cartAddDelta, orderDelta int,
	revenueDelta float64,
) error {
	query := squirrel.StatementBuilder.
		Insert("demand_metrics").
		Columns("dish_id", "date", "hour", "view_count", "cart_add_count", "order_count", "revenue").
		Values(dishID, date, hour, viewDelta, cartAddDelta, orderDelta, revenueDelta).
		Suffix(`
			ON CONFLICT (dish_id, date, hour) DO UPDATE SET
				view_count = demand_metrics.view_count + EXCLUDED.view_count,
				cart_add_count = demand_metrics.cart_add_count + EXCLUDED.cart_add_count,
				order_count = demand_metrics.order_count + EXCLUDED.order_count,
				revenue = demand_metrics.revenue + EXCLUDED.revenue,
				updated_at = CURRENT_TIMESTAMP
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de incremento: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de incremento: %w", err)
	}

	return nil
}

func (r *demandMetricRepository) IncrementView(ctx context.Context, dishID string, date string, hour int) error {
	return r.increment(ctx, dishID, date, hour, 1, 0, 0, 0)
}

func (r *demandMetricRepository) IncrementCartAdd(ctx context.Context, dishID string, date string, hour int) error {
	return r.increment(ctx, dishID, date, hour, 0, 1, 0, 0)
}

func (r *demandMetricRepository) IncrementOrder(ctx context.Context, dishID string, date string, hour int, amount float64) error {
	return r.increment(ctx, dishID, date, hour, 0, 0, 1, amount)
}

func (r *demandMetricRepository) GetOrderCount(ctx context.Context, dishID string, date string, hour int) (int, error) {
	query, args, err := squirrel.
		Select("dm.order_count").
		From(demandMetricsTable).
		Where(squirrel.Eq{"dm.dish_id": dishID, "dm.date": date, "dm.hour": hour}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("erro ao consultar contagem de pedidos: %w", err)
	}

	return count, nil
}

func (r *demandMetricRepository) GetBucket(ctx context.Context, dishID string, date string, hour int) (*domain.DemandMetric, error) {
	query, args, err := squirrel.
		Select(
			"dm.dish_id",
			"dm.date",
			"dm.hour",
			"dm.view_count",
			"dm.cart_add_count",
			"dm.order_count",
			"dm.revenue",
			"dm.updated_at",
		).
		From(demandMetricsTable).
		Where(squirrel.Eq{"dm.dish_id": dishID, "dm.date": date, "dm.hour": hour}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	metric := &domain.DemandMetric{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&metric.DishID,
		&metric.Date,
		&metric.Hour,
		&metric.ViewCount,
		&metric.CartAddCount,
		&metric.OrderCount,
		&metric.Revenue,
		&metric.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métrica de demanda: %w", err)
	}

	return metric, nil
}
