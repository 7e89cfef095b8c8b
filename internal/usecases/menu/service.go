package menu

import (
	"context"
	"errors"

	"github.com/vfg2006/menu-pricing-api/infrastructure/cache"
	"github.com/vfg2006/menu-pricing-api/infrastructure/repository"
	"github.com/vfg2006/menu-pricing-api/internal/domain"
	"github.com/vfg2006/menu-pricing-api/pkg/log"
)

var (
	ErrDishIDRequired    = errors.New("id do prato é obrigatório")
	ErrDishNotFound      = errors.New("prato não encontrado")
	ErrInvalidBasePrice  = errors.New("preço base deve ser maior que zero")
	ErrInvalidStatus     = errors.New("status de prato inválido")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

type MenuService interface {
	ListDishes(statuses []domain.DishStatus) ([]*domain.Dish, error)
	GetDish(dishID string) (*domain.Dish, error)
	UpdateDish(ctx context.Context, req *domain.UpdateDishRequest) (*domain.Dish, error)
}

type Service struct {
	dishRepo   repository.DishRepository
	priceCache cache.PriceCache
}

func NewService(dishRepo repository.DishRepository, priceCache cache.PriceCache) MenuService {
	return &Service{
		dishRepo:   dishRepo,
		priceCache: priceCache,
	}
}

func (s *Service) ListDishes(statuses []domain.DishStatus) ([]*domain.Dish, error) {
	dishes, err := s.dishRepo.ListDishes(statuses)
	if err != nil {
		return nil, ErrDatabaseOperation
	}

	return dishes, nil
}

func (s *Service) GetDish(dishID string) (*domain.Dish, error) {
	if dishID == "" {
		return nil, ErrDishIDRequired
	}

	dish, err := s.dishRepo.GetByID(dishID)
	if err != nil {
		return nil, ErrDatabaseOperation
	}

	if dish == nil {
		return nil, ErrDishNotFound
	}

	return dish, nil
}

// UpdateDish aplica uma atualização parcial no prato. Mudança de preço
// base ou de status invalida o cache de preço do prato, em melhor
// esforço: o TTL curto do cache cobre a falha de invalidação.
func (s *Service) UpdateDish(ctx context.Context, req *domain.UpdateDishRequest) (*domain.Dish, error) {
	if req.ID == "" {
		return nil, ErrDishIDRequired
	}

	dish, err := s.dishRepo.GetByID(req.ID)
	if err != nil {
		return nil, ErrDatabaseOperation
	}

	if dish == nil {
		return nil, ErrDishNotFound
	}

	priceChanged := false

	if req.Name != nil {
		dish.Name = *req.Name
	}

	if req.CategoryID != nil {
		dish.CategoryID = *req.CategoryID
	}

	if req.BasePrice != nil {
		if *req.BasePrice <= 0 {
			return nil, ErrInvalidBasePrice
		}
		priceChanged = dish.BasePrice != *req.BasePrice
		dish.BasePrice = *req.BasePrice
	}

	if req.Status != nil {
		status := domain.DishStatus(*req.Status)
		if status != domain.DishStatusActive && status != domain.DishStatusInactive {
			return nil, ErrInvalidStatus
		}
		priceChanged = priceChanged || dish.Status != status
		dish.Status = status
	}

	if err := s.dishRepo.UpdateDish(dish); err != nil {
		return nil, ErrDatabaseOperation
	}

	if priceChanged && s.priceCache != nil {
		if err := s.priceCache.InvalidateDish(ctx, dish.ID); err != nil {
			log.ForContext(ctx).WithError(err).
				WithField("dish_id", dish.ID).
				Warn("Falha ao invalidar cache de preço do prato")
		}
	}

	return dish, nil
}
