package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/menu-pricing-api/internal/domain"
	"github.com/vfg2006/menu-pricing-api/internal/usecases/menu"
	"github.com/vfg2006/menu-pricing-api/pkg/apiErrors"
)

func DishList(service menu.MenuService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filterStatus := r.URL.Query().Get("status")

		statuses := make([]domain.DishStatus, 0)
		if filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				statuses = append(statuses, domain.DishStatus(status))
			}
		}

		dishes, err := service.ListDishes(statuses)
		if err != nil {
			logrus.Error("Error listing dishes:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar pratos no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dishes); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetDish(service menu.MenuService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do prato é obrigatório", nil)
			return
		}

		dish, err := service.GetDish(id)
		if err != nil {
			handleDishError(w, err, id)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dish); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateDish(service menu.MenuService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateDish")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do prato é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateDishRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		updateRequest.ID = id

		dish, err := service.UpdateDish(r.Context(), &updateRequest)
		if err != nil {
			logrus.Error("Error updating dish:", err)

			switch {
			case errors.Is(err, menu.ErrDishNotFound):
				apiErrors.WriteError(w, apiErrors.ErrDishNotFound, "Prato não encontrado", map[string]any{
					"dish_id": id,
				})

			case errors.Is(err, menu.ErrInvalidBasePrice):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Preço base deve ser maior que zero", nil)

			case errors.Is(err, menu.ErrInvalidStatus):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status de prato inválido. Valores aceitos: active, inactive", nil)

			case errors.Is(err, menu.ErrDatabaseOperation):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar prato no banco de dados", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao atualizar prato", nil)
			}
			return
		}

		if err := json.NewEncoder(w).Encode(dish); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
