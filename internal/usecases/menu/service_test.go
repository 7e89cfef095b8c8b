package menu

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/menu-pricing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/menu-pricing-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetDish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDishRepo := mocks.NewMockDishRepository(ctrl)

	service := &Service{
		dishRepo: mockDishRepo,
	}

	tests := []struct {
		name        string
		dishID      string
		setup       func()
		expectedErr error
	}{
		{
			name:   "Deve retornar o prato existente",
			dishID: "DSH001",
			setup: func() {
				mockDishRepo.EXPECT().
					GetByID("DSH001").
					Return(&domain.Dish{ID: "DSH001", Name: "Feijoada Completa"}, nil)
			},
			expectedErr: nil,
		},
		{
			name:        "ID vazio deve retornar erro de validação",
			dishID:      "",
			setup:       func() {},
			expectedErr: ErrDishIDRequired,
		},
		{
			name:   "Prato inexistente deve retornar ErrDishNotFound",
			dishID: "DSH999",
			setup: func() {
				mockDishRepo.EXPECT().
					GetByID("DSH999").
					Return(nil, nil)
			},
			expectedErr: ErrDishNotFound,
		},
		{
			name:   "Falha de banco deve retornar ErrDatabaseOperation",
			dishID: "DSH001",
			setup: func() {
				mockDishRepo.EXPECT().
					GetByID("DSH001").
					Return(nil, assert.AnError)
			},
			expectedErr: ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			dish, err := service.GetDish(tt.dishID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, dish)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.dishID, dish.ID)
			}
		})
	}
}

func TestService_UpdateDish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDishRepo := mocks.NewMockDishRepository(ctrl)

	service := &Service{
		dishRepo: mockDishRepo,
	}

	existing := func() *domain.Dish {
		return &domain.Dish{
			ID:         "DSH001",
			Name:       "Feijoada Completa",
			CategoryID: "mains",
			BasePrice:  20.00,
			Status:     domain.DishStatusActive,
		}
	}

	tests := []struct {
		name        string
		req         *domain.UpdateDishRequest
		setup       func()
		expectedErr error
		validate    func(t *testing.T, dish *domain.Dish)
	}{
		{
			name: "Deve atualizar o preço base",
			req: &domain.UpdateDishRequest{
				ID:        "DSH001",
				BasePrice: float64Ptr(25.00),
			},
			setup: func() {
				mockDishRepo.EXPECT().GetByID("DSH001").Return(existing(), nil)
				mockDishRepo.EXPECT().UpdateDish(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, dish *domain.Dish) {
				assert.Equal(t, 25.00, dish.BasePrice)
			},
		},
		{
			name: "Preço base inválido deve ser rejeitado",
			req: &domain.UpdateDishRequest{
				ID:        "DSH001",
				BasePrice: float64Ptr(0),
			},
			setup: func() {
				mockDishRepo.EXPECT().GetByID("DSH001").Return(existing(), nil)
			},
			expectedErr: ErrInvalidBasePrice,
		},
		{
			name: "Status inválido deve ser rejeitado",
			req: &domain.UpdateDishRequest{
				ID:     "DSH001",
				Status: stringPtr("paused"),
			},
			setup: func() {
				mockDishRepo.EXPECT().GetByID("DSH001").Return(existing(), nil)
			},
			expectedErr: ErrInvalidStatus,
		},
		{
			name: "Deve inativar o prato",
			req: &domain.UpdateDishRequest{
				ID:     "DSH001",
				Status: stringPtr("inactive"),
			},
			setup: func() {
				mockDishRepo.EXPECT().GetByID("DSH001").Return(existing(), nil)
				mockDishRepo.EXPECT().UpdateDish(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, dish *domain.Dish) {
				assert.Equal(t, domain.DishStatusInactive, dish.Status)
			},
		},
		{
			name: "Prato inexistente deve retornar ErrDishNotFound",
			req: &domain.UpdateDishRequest{
				ID:   "DSH999",
				Name: stringPtr("Novo Nome"),
			},
			setup: func() {
				mockDishRepo.EXPECT().GetByID("DSH999").Return(nil, nil)
			},
			expectedErr: ErrDishNotFound,
		},
		{
			name: "Requisição sem ID deve ser rejeitada",
			req: &domain.UpdateDishRequest{
				Name: stringPtr("Novo Nome"),
			},
			setup:       func() {},
			expectedErr: ErrDishIDRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			dish, err := service.UpdateDish(context.Background(), tt.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, dish)
			} else {
				assert.NoError(t, err)
				if tt.validate != nil {
					tt.validate(t, dish)
				}
			}
		})
	}
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}
