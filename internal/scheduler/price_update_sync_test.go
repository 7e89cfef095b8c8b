package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	owmmocks "github.com/vfg2006/menu-pricing-api/infrastructure/integrator/openweather/mocks"
	"github.com/vfg2006/menu-pricing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/menu-pricing-api/internal/config"
	"github.com/vfg2006/menu-pricing-api/internal/domain"
	pricingmocks "github.com/vfg2006/menu-pricing-api/internal/usecases/pricing/mocks"
	"go.uber.org/mock/gomock"
)

func TestPriceUpdateSyncService_processDishPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDynamicPriceRepo := mocks.NewMockDynamicPriceRepository(ctrl)
	mockPricingService := pricingmocks.NewMockPricingService(ctrl)

	service := &PriceUpdateSyncService{
		config:           PriceUpdateSyncConfig{MaxConcurrentJobs: 2},
		dynamicPriceRepo: mockDynamicPriceRepo,
		pricingService:   mockPricingService,
	}

	dish := &domain.Dish{
		ID:         "DSH001",
		Name:       "Feijoada Completa",
		CategoryID: "mains",
		BasePrice:  20.00,
		Status:     domain.DishStatusActive,
	}

	calculatedAt := time.Date(2024, 6, 14, 19, 0, 0, 0, time.Local)

	breakdown := &domain.PriceBreakdown{
		DishID:          "DSH001",
		Price:           25.00,
		BasePrice:       20.00,
		TotalMultiplier: 1.25,
		Multipliers: []domain.MultiplierDetail{
			{Factor: "Peak Hour", Multiplier: 1.25, Reason: "Dinner Rush"},
		},
		CalculatedAt: calculatedAt,
	}

	tests := []struct {
		name     string
		setup    func()
		expected bool
	}{
		{
			name: "Primeiro cálculo do prato deve gravar preço e histórico",
			setup: func() {
				mockPricingService.EXPECT().
					Calculate(gomock.Any(), dish, gomock.Any()).
					Return(breakdown)

				// Sem preço dinâmico corrente
				mockDynamicPriceRepo.EXPECT().
					GetByDishID("DSH001").
					Return(nil, nil)

				mockDynamicPriceRepo.EXPECT().
					SaveWithHistory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(price *domain.DynamicPrice, entry *domain.PricingHistoryEntry) error {
						assert.Equal(t, "DSH001", price.DishID)
						assert.Equal(t, 25.00, price.CurrentPrice)
						assert.Equal(t, 1.25, price.Multiplier)
						assert.Equal(t, "Dinner Rush", price.Reason)
						assert.True(t, price.Active)

						// Sem preço anterior, o histórico parte do preço base
						assert.Equal(t, 20.00, entry.OldPrice)
						assert.Equal(t, 25.00, entry.NewPrice)
						assert.Equal(t, "Dinner Rush", entry.Reason)

						return nil
					})
			},
			expected: true,
		},
		{
			name: "Preço alterado deve historiar a partir do preço corrente",
			setup: func() {
				mockPricingService.EXPECT().
					Calculate(gomock.Any(), dish, gomock.Any()).
					Return(breakdown)

				mockDynamicPriceRepo.EXPECT().
					GetByDishID("DSH001").
					Return(&domain.DynamicPrice{
						DishID:       "DSH001",
						BasePrice:    20.00,
						CurrentPrice: 23.00,
					}, nil)

				mockDynamicPriceRepo.EXPECT().
					SaveWithHistory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(price *domain.DynamicPrice, entry *domain.PricingHistoryEntry) error {
						assert.Equal(t, 23.00, entry.OldPrice)
						assert.Equal(t, 25.00, entry.NewPrice)

						return nil
					})
			},
			expected: true,
		},
		{
			name: "Preço inalterado não deve gravar nem historiar",
			setup: func() {
				mockPricingService.EXPECT().
					Calculate(gomock.Any(), dish, gomock.Any()).
					Return(breakdown)

				mockDynamicPriceRepo.EXPECT().
					GetByDishID("DSH001").
					Return(&domain.DynamicPrice{
						DishID:       "DSH001",
						BasePrice:    20.00,
						CurrentPrice: 25.00,
					}, nil)

				// Nenhuma escrita esperada
			},
			expected: false,
		},
		{
			name: "Falha ao consultar preço corrente não deve gravar",
			setup: func() {
				mockPricingService.EXPECT().
					Calculate(gomock.Any(), dish, gomock.Any()).
					Return(breakdown)

				mockDynamicPriceRepo.EXPECT().
					GetByDishID("DSH001").
					Return(nil, assert.AnError)
			},
			expected: false,
		},
		{
			name: "Falha na gravação deve retornar false",
			setup: func() {
				mockPricingService.EXPECT().
					Calculate(gomock.Any(), dish, gomock.Any()).
					Return(breakdown)

				mockDynamicPriceRepo.EXPECT().
					GetByDishID("DSH001").
					Return(nil, nil)

				mockDynamicPriceRepo.EXPECT().
					SaveWithHistory(gomock.Any(), gomock.Any()).
					Return(assert.AnError)
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result := service.processDishPrice(dish, "")

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPriceUpdateSyncService_processDishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDynamicPriceRepo := mocks.NewMockDynamicPriceRepository(ctrl)
	mockPricingService := pricingmocks.NewMockPricingService(ctrl)

	service := &PriceUpdateSyncService{
		config:           PriceUpdateSyncConfig{MaxConcurrentJobs: 2},
		dynamicPriceRepo: mockDynamicPriceRepo,
		pricingService:   mockPricingService,
	}

	dishes := []*domain.Dish{
		{ID: "DSH001", BasePrice: 20.00, Status: domain.DishStatusActive},
		{ID: "DSH002", BasePrice: 30.00, Status: domain.DishStatusActive},
		{ID: "DSH003", BasePrice: 15.00, Status: domain.DishStatusActive},
	}

	// DSH001 muda de preço, DSH002 falha na consulta, DSH003 permanece igual:
	// a falha de um prato não interrompe a varredura dos demais
	mockPricingService.EXPECT().
		Calculate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, dish *domain.Dish, _ any) *domain.PriceBreakdown {
			return &domain.PriceBreakdown{
				DishID:          dish.ID,
				Price:           dish.BasePrice * 1.25,
				BasePrice:       dish.BasePrice,
				TotalMultiplier: 1.25,
				CalculatedAt:    time.Now(),
			}
		}).Times(3)

	mockDynamicPriceRepo.EXPECT().
		GetByDishID("DSH001").
		Return(nil, nil)
	mockDynamicPriceRepo.EXPECT().
		GetByDishID("DSH002").
		Return(nil, assert.AnError)
	mockDynamicPriceRepo.EXPECT().
		GetByDishID("DSH003").
		Return(&domain.DynamicPrice{DishID: "DSH003", CurrentPrice: 18.75}, nil)

	mockDynamicPriceRepo.EXPECT().
		SaveWithHistory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(price *domain.DynamicPrice, _ *domain.PricingHistoryEntry) error {
			assert.Equal(t, "DSH001", price.DishID)
			return nil
		})

	updated := service.processDishes(dishes, "")

	assert.Equal(t, 1, updated)
}

func TestPriceUpdateSyncService_currentWeatherCondition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		build    func() *PriceUpdateSyncService
		expected string
	}{
		{
			name: "Integrador configurado deve retornar a condição corrente",
			build: func() *PriceUpdateSyncService {
				mockWeather := owmmocks.NewMockWeatherIntegrator(ctrl)
				mockWeather.EXPECT().CurrentCondition().Return("rain", nil)

				return &PriceUpdateSyncService{
					appConfig:      &config.Config{OpenWeather: config.OpenWeather{Enabled: true}},
					weatherService: mockWeather,
				}
			},
			expected: "rain",
		},
		{
			name: "Falha no integrador deve degradar para fator neutro",
			build: func() *PriceUpdateSyncService {
				mockWeather := owmmocks.NewMockWeatherIntegrator(ctrl)
				mockWeather.EXPECT().CurrentCondition().Return("", assert.AnError)

				return &PriceUpdateSyncService{
					appConfig:      &config.Config{OpenWeather: config.OpenWeather{Enabled: true}},
					weatherService: mockWeather,
				}
			},
			expected: "",
		},
		{
			name: "Integrador desabilitado não deve ser consultado",
			build: func() *PriceUpdateSyncService {
				return &PriceUpdateSyncService{
					appConfig:      &config.Config{OpenWeather: config.OpenWeather{Enabled: false}},
					weatherService: owmmocks.NewMockWeatherIntegrator(ctrl),
				}
			},
			expected: "",
		},
		{
			name: "Sem integrador deve degradar para fator neutro",
			build: func() *PriceUpdateSyncService {
				return &PriceUpdateSyncService{
					appConfig: &config.Config{OpenWeather: config.OpenWeather{Enabled: true}},
				}
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := tt.build()

			assert.Equal(t, tt.expected, service.currentWeatherCondition())
		})
	}
}
