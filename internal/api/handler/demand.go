package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/menu-pricing-api/internal/usecases/demand"
	"github.com/vfg2006/menu-pricing-api/pkg/apiErrors"
)

// Eventos de demanda aceitos
const (
	DemandEventView    = "view"
	DemandEventCartAdd = "cart-add"
	DemandEventOrder   = "order"
)

type TrackOrderRequest struct {
	Amount float64 `json:"amount"`
}

type TrackEventResponse struct {
	Status string `json:"status"`
	Event  string `json:"event"`
	DishID string `json:"dish_id"`
}

// TrackDishEvent registra um evento de demanda para um prato. O
// registro é melhor esforço e roda fora do ciclo da requisição: a
// resposta é sempre 202 e a falha do incremento nunca chega ao cliente.
func TrackDishEvent(tracker demand.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		dishID := params.ByName("id")
		if dishID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do prato é obrigatório", nil)
			return
		}

		event := params.ByName("event")

		var amount float64
		switch event {
		case DemandEventView, DemandEventCartAdd:

		case DemandEventOrder:
			var req TrackOrderRequest
			if r.Body != nil {
				// Corpo ausente ou malformado não invalida o evento
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					logrus.WithError(err).Debug("Corpo do evento de pedido ignorado")
				}
			}
			amount = req.Amount

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Evento inválido. Valores aceitos: view, cart-add, order", nil)
			return
		}

		// O incremento roda desacoplado da requisição: o timeout do
		// rastreamento é aplicado pelo serviço de demanda.
		go func() {
			switch event {
			case DemandEventView:
				_ = tracker.RecordView(context.Background(), dishID)
			case DemandEventCartAdd:
				_ = tracker.RecordCartAdd(context.Background(), dishID)
			case DemandEventOrder:
				_ = tracker.RecordOrder(context.Background(), dishID, amount)
			}
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(TrackEventResponse{
			Status: "accepted",
			Event:  event,
			DishID: dishID,
		}); err != nil {
			logrus.WithError(err).Warn("Erro ao codificar resposta de evento de demanda")
		}
	})
}

// GetDishDemand retorna o balde de demanda da hora corrente de um prato
func GetDishDemand(tracker demand.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dishID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if dishID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do prato é obrigatório", nil)
			return
		}

		metric, err := tracker.BucketForCurrentHour(r.Context(), dishID)
		if err != nil {
			logrus.Error("Error fetching demand bucket:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar demanda do prato", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metric); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
