package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/menu-pricing-api/infrastructure/repository"
	"github.com/vfg2006/menu-pricing-api/internal/domain"
	"github.com/vfg2006/menu-pricing-api/internal/usecases/menu"
	"github.com/vfg2006/menu-pricing-api/internal/usecases/pricing"
	"github.com/vfg2006/menu-pricing-api/pkg/apiErrors"
)

// GetDishPrice retorna o preço dinâmico corrente de um prato, calculado
// pelas tabelas fixas de multiplicadores. Endpoint público do cardápio:
// pratos inativos respondem como não encontrados.
func GetDishPrice(menuService menu.MenuService, pricingService pricing.PricingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do prato é obrigatório", nil)
			return
		}

		dish, err := menuService.GetDish(id)
		if err != nil {
			handleDishError(w, err, id)
			return
		}

		if dish.Status != domain.DishStatusActive {
			apiErrors.WriteError(w, apiErrors.ErrDishNotFound, "Prato não encontrado", nil)
			return
		}

		opts := pricing.Options{
			SkipDemand: r.URL.Query().Get("skip_demand") == "true",
		}

		breakdown := pricingService.Calculate(r.Context(), dish, opts)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(breakdown); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetDishPriceByRules calcula o preço do prato pelas regras
// configuráveis da base, em ordem de prioridade
func GetDishPriceByRules(menuService menu.MenuService, pricingService pricing.PricingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do prato é obrigatório", nil)
			return
		}

		dish, err := menuService.GetDish(id)
		if err != nil {
			handleDishError(w, err, id)
			return
		}

		opts := pricing.Options{
			SkipDemand:       r.URL.Query().Get("skip_demand") == "true",
			WeatherCondition: r.URL.Query().Get("weather"),
		}

		breakdown := pricingService.ApplyPricingRules(r.Context(), dish, opts)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(breakdown); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ListPricingRules retorna as regras de precificação ativas, em ordem
// de prioridade decrescente
func ListPricingRules(ruleRepo repository.PricingRuleRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rules, err := ruleRepo.GetActiveRules()
		if err != nil {
			logrus.Error("Error listing pricing rules:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar regras de precificação", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rules); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ListDynamicPrices retorna os preços dinâmicos persistidos pela última
// varredura do agendador
func ListDynamicPrices(priceRepo repository.DynamicPriceRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		prices, err := priceRepo.ListPrices()
		if err != nil {
			logrus.Error("Error listing dynamic prices:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar preços dinâmicos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(prices); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetDishPricingHistory retorna o histórico de mudanças de preço de um
// prato, do mais recente para o mais antigo
func GetDishPricingHistory(historyRepo repository.PricingHistoryRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do prato é obrigatório", nil)
			return
		}

		var limit uint64
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.ParseUint(limitStr, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Limite inválido", nil)
				return
			}
			limit = parsed
		}

		history, err := historyRepo.ListByDishID(id, limit)
		if err != nil {
			logrus.Error("Error listing pricing history:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico de preços", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(history); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// handleDishError converte erros do serviço de cardápio na resposta apropriada
func handleDishError(w http.ResponseWriter, err error, dishID string) {
	switch {
	case errors.Is(err, menu.ErrDishNotFound):
		apiErrors.WriteError(w, apiErrors.ErrDishNotFound, "Prato não encontrado", map[string]any{
			"dish_id": dishID,
		})

	case errors.Is(err, menu.ErrDishIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do prato é obrigatório", nil)

	case errors.Is(err, menu.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar prato no banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao consultar prato", nil)
	}
}
