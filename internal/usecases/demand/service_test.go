package demand

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/menu-pricing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/menu-pricing-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_RecordEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricRepo := mocks.NewMockDemandMetricRepository(ctrl)

	service := &Service{
		metricRepository: mockMetricRepo,
		timeout:          3 * time.Second,
	}

	tests := []struct {
		name     string
		setup    func()
		execute  func(ctx context.Context) error
		hasError bool
	}{
		{
			name: "RecordView deve incrementar o balde da hora corrente",
			setup: func() {
				mockMetricRepo.EXPECT().
					IncrementView(gomock.Any(), "DSH001", gomock.Any(), gomock.Any()).
					Return(nil)
			},
			execute: func(ctx context.Context) error {
				return service.RecordView(ctx, "DSH001")
			},
			hasError: false,
		},
		{
			name: "RecordCartAdd deve incrementar o balde da hora corrente",
			setup: func() {
				mockMetricRepo.EXPECT().
					IncrementCartAdd(gomock.Any(), "DSH001", gomock.Any(), gomock.Any()).
					Return(nil)
			},
			execute: func(ctx context.Context) error {
				return service.RecordCartAdd(ctx, "DSH001")
			},
			hasError: false,
		},
		{
			name: "RecordOrder deve incrementar contagem e receita",
			setup: func() {
				mockMetricRepo.EXPECT().
					IncrementOrder(gomock.Any(), "DSH001", gomock.Any(), gomock.Any(), 42.90).
					Return(nil)
			},
			execute: func(ctx context.Context) error {
				return service.RecordOrder(ctx, "DSH001", 42.90)
			},
			hasError: false,
		},
		{
			name: "Falha no repositório deve ser retornada para log do chamador",
			setup: func() {
				mockMetricRepo.EXPECT().
					IncrementOrder(gomock.Any(), "DSH001", gomock.Any(), gomock.Any(), 10.0).
					Return(assert.AnError)
			},
			execute: func(ctx context.Context) error {
				return service.RecordOrder(ctx, "DSH001", 10.0)
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := tt.execute(context.Background())

			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_OrderCountForCurrentHour(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricRepo := mocks.NewMockDemandMetricRepository(ctrl)

	service := &Service{
		metricRepository: mockMetricRepo,
		timeout:          3 * time.Second,
	}

	tests := []struct {
		name     string
		setup    func()
		expected int
	}{
		{
			name: "Deve retornar a contagem do balde corrente",
			setup: func() {
				mockMetricRepo.EXPECT().
					GetOrderCount(gomock.Any(), "DSH001", gomock.Any(), gomock.Any()).
					Return(17, nil)
			},
			expected: 17,
		},
		{
			name: "Falha de leitura deve degradar para zero",
			setup: func() {
				mockMetricRepo.EXPECT().
					GetOrderCount(gomock.Any(), "DSH001", gomock.Any(), gomock.Any()).
					Return(0, assert.AnError)
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			count := service.OrderCountForCurrentHour(context.Background(), "DSH001")

			assert.Equal(t, tt.expected, count)
		})
	}
}

func TestService_BucketForCurrentHour(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricRepo := mocks.NewMockDemandMetricRepository(ctrl)

	service := &Service{
		metricRepository: mockMetricRepo,
	}

	t.Run("Deve retornar o balde existente", func(t *testing.T) {
		mockMetricRepo.EXPECT().
			GetBucket(gomock.Any(), "DSH001", gomock.Any(), gomock.Any()).
			Return(&domain.DemandMetric{
				DishID:     "DSH001",
				OrderCount: 12,
				ViewCount:  80,
			}, nil)

		metric, err := service.BucketForCurrentHour(context.Background(), "DSH001")

		assert.NoError(t, err)
		assert.Equal(t, 12, metric.OrderCount)
		assert.Equal(t, 80, metric.ViewCount)
	})

	t.Run("Balde inexistente deve retornar balde zerado", func(t *testing.T) {
		mockMetricRepo.EXPECT().
			GetBucket(gomock.Any(), "DSH001", gomock.Any(), gomock.Any()).
			Return(nil, nil)

		metric, err := service.BucketForCurrentHour(context.Background(), "DSH001")

		assert.NoError(t, err)
		assert.Equal(t, "DSH001", metric.DishID)
		assert.Equal(t, 0, metric.OrderCount)
		assert.Equal(t, 0, metric.ViewCount)
		assert.Equal(t, 0, metric.CartAddCount)
	})

	t.Run("Erro de leitura deve ser propagado", func(t *testing.T) {
		mockMetricRepo.EXPECT().
			GetBucket(gomock.Any(), "DSH001", gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		metric, err := service.BucketForCurrentHour(context.Background(), "DSH001")

		assert.Error(t, err)
		assert.Nil(t, metric)
	})
}
