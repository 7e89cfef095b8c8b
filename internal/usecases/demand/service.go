package demand

import (
	"context"
	"time"

	"github.com/vfg2006/menu-pricing-api/infrastructure/repository"
	"github.com/vfg2006/menu-pricing-api/internal/config"
	"github.com/vfg2006/menu-pricing-api/internal/domain"
	"github.com/vfg2006/menu-pricing-api/pkg/log"
)

// Tracker registra eventos de demanda por prato em baldes de uma hora.
// O rastreamento é melhor esforço: os métodos Record* retornam o erro
// para fins de log, mas os chamadores devem seguir em frente sem ele.
type Tracker interface {
	RecordView(ctx context.Context, dishID string) error
	RecordCartAdd(ctx context.Context, dishID string) error
	RecordOrder(ctx context.Context, dishID string, amount float64) error
	OrderCountForCurrentHour(ctx context.Context, dishID string) int
	BucketForCurrentHour(ctx context.Context, dishID string) (*domain.DemandMetric, error)
}

type Service struct {
	metricRepository repository.DemandMetricRepository
	timeout          time.Duration
}

func NewService(
	metricRepository repository.DemandMetricRepository,
	cfg config.DemandTracking,
) *Service {
	return &Service{
		metricRepository: metricRepository,
		timeout:          time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
}

func (s *Service) RecordView(ctx context.Context, dishID string) error {
	return s.record(ctx, dishID, "view", func(ctx context.Context, date string, hour int) error {
		return s.metricRepository.IncrementView(ctx, dishID, date, hour)
	})
}

func (s *Service) RecordCartAdd(ctx context.Context, dishID string) error {
	return s.record(ctx, dishID, "cart_add", func(ctx context.Context, date string, hour int) error {
		return s.metricRepository.IncrementCartAdd(ctx, dishID, date, hour)
	})
}

func (s *Service) RecordOrder(ctx context.Context, dishID string, amount float64) error {
	return s.record(ctx, dishID, "order", func(ctx context.Context, date string, hour int) error {
		return s.metricRepository.IncrementOrder(ctx, dishID, date, hour, amount)
	})
}

// record aplica o incremento no balde da hora corrente com um timeout
// curto: rastreamento lento não pode segurar o chamador.
func (s *Service) record(
	ctx context.Context,
	dishID string,
	event string,
	increment func(ctx context.Context, date string, hour int) error,
) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	date, hour := domain.DemandBucketKey(time.Now())

	if err := increment(ctx, date, hour); err != nil {
		log.ForContext(ctx).WithError(err).
			WithField("dish_id", dishID).
			WithField("event", event).
			Warn("Falha ao registrar evento de demanda")

		return err
	}

	return nil
}

// OrderCountForCurrentHour retorna a contagem de pedidos do prato no
// balde da hora corrente. Qualquer falha de leitura degrada para zero,
// o que equivale ao fator de demanda neutro no cálculo de preço.
func (s *Service) OrderCountForCurrentHour(ctx context.Context, dishID string) int {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	date, hour := domain.DemandBucketKey(time.Now())

	count, err := s.metricRepository.GetOrderCount(ctx, dishID, date, hour)
	if err != nil {
		log.ForContext(ctx).WithError(err).
			WithField("dish_id", dishID).
			Warn("Falha ao consultar demanda, assumindo demanda normal")

		return 0
	}

	return count
}

// BucketForCurrentHour retorna o balde completo da hora corrente para
// consulta administrativa. Balde inexistente retorna o balde zerado.
func (s *Service) BucketForCurrentHour(ctx context.Context, dishID string) (*domain.DemandMetric, error) {
	date, hour := domain.DemandBucketKey(time.Now())

	metric, err := s.metricRepository.GetBucket(ctx, dishID, date, hour)
	if err != nil {
		return nil, err
	}

	if metric == nil {
		metric = &domain.DemandMetric{
			DishID: dishID,
			Date:   date,
			Hour:   hour,
		}
	}

	return metric, nil
}
