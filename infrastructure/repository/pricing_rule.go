// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/menu-pricing-api/infrastructure/database/postgres"
	"github.com/vfg2006/menu-pricing-api/internal/domain"
)

const (
	pricingRulesTable = "pricing_rules pr"
)

type PricingRuleRepository interface {
	GetActiveRules() ([]*domain.PricingRule, error)
}

type pricingRuleRepository struct {
	conn *postgres.Connection
}

func NewPricingRuleRepository(conn *postgres.Connection) PricingRuleRepository {
	return &pricingRuleRepository{
		conn: conn,
	}
}

// GetActiveRules retorna as regras ativas ordenadas por prioridade
// decrescente. Regras com condição malformada são puladas, não derrubam a
// listagem inteira.
func (r *pricingRuleRepository) GetActiveRules() ([]*domain.PricingRule, error) {
	query, args, err := squirrel.
		Select(
			"pr.id",
			"pr.name",
			"pr.rule_type",
			"pr.condition",
			"pr.multiplier",
			"pr.priority",
			"pr.active",
			"pr.category_ids",
			"pr.dish_ids",
			"pr.created_at",
			"pr.updated_at",
		).
		From(pricingRulesTable).
		Where(squirrel.Eq{"pr.active": true}).
		OrderBy("pr.priority DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.PricingRule{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rules := make([]*domain.PricingRule, 0)
	for rows.Next() {
		rule, err := r.scanRule(rows)
		if err != nil {
			logrus.WithError(err).Warn("Regra de precificação ignorada")
			continue
		}

		rules = append(rules, rule)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rules, nil
}

func (r *pricingRuleRepository) scanRule(rows *sql.Rows) (*domain.PricingRule, error) {
	rule := &domain.PricingRule{}

	var rawCondition []byte
	var categoryIDs, dishIDs pq.StringArray

	err := rows.Scan(
		&rule.ID,
		&rule.Name,
		&rule.Type,
		&rawCondition,
		&rule.Multiplier,
		&rule.Priority,
		&rule.Active,
		&categoryIDs,
		&dishIDs,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Invariante do modelo: multiplicador sempre positivo
	if rule.Multiplier <= 0 {
		return nil, fmt.Errorf("regra %s com multiplicador inválido: %f", rule.ID, rule.Multiplier)
	}

	condition, err := domain.DecodeRuleCondition(rule.Type, rawCondition)
	if err != nil {
		return nil, fmt.Errorf("condição inválida para a regra %s: %w", rule.ID, err)
	}

	rule.Condition = condition
	rule.CategoryIDs = categoryIDs
	rule.DishIDs = dishIDs

	return rule, nil
}
