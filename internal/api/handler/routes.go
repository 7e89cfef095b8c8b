package handler

import (
	"net/http"

	"github.com/vfg2006/menu-pricing-api/infrastructure/repository"
	"github.com/vfg2006/menu-pricing-api/internal/api/handler/router"
	"github.com/vfg2006/menu-pricing-api/internal/usecases/authenticating"
	"github.com/vfg2006/menu-pricing-api/internal/usecases/demand"
	"github.com/vfg2006/menu-pricing-api/internal/usecases/menu"
	"github.com/vfg2006/menu-pricing-api/internal/usecases/pricing"
	"github.com/vfg2006/menu-pricing-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Dishes retorna as rotas de gerenciamento do cardápio
func Dishes(menuService menu.MenuService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dishes",
			Method:      http.MethodGet,
			Handler:     DishList(menuService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dishes/:id",
			Method:      http.MethodGet,
			Handler:     GetDish(menuService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dishes/:id",
			Method:      http.MethodPut,
			Handler:     UpdateDish(menuService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

// Pricing retorna as rotas de consulta de preço dinâmico. A consulta de
// preço do prato é pública: é o preço exibido no cardápio.
func Pricing(
	menuService menu.MenuService,
	pricingService pricing.PricingService,
	ruleRepo repository.PricingRuleRepository,
	priceRepo repository.DynamicPriceRepository,
	historyRepo repository.PricingHistoryRepository,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dishes/:id/price",
			Method:  http.MethodGet,
			Handler: GetDishPrice(menuService, pricingService),
		},
		{
			Path:        "/v1/dishes/:id/price/rules",
			Method:      http.MethodGet,
			Handler:     GetDishPriceByRules(menuService, pricingService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/pricing/rules",
			Method:      http.MethodGet,
			Handler:     ListPricingRules(ruleRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/pricing/prices",
			Method:      http.MethodGet,
			Handler:     ListDynamicPrices(priceRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dishes/:id/history",
			Method:      http.MethodGet,
			Handler:     GetDishPricingHistory(historyRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

// Demand retorna as rotas de rastreamento e consulta de demanda. O
// registro de eventos é público: vem do próprio cardápio digital.
func Demand(tracker demand.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dishes/:id/events/:event",
			Method:  http.MethodPost,
			Handler: TrackDishEvent(tracker),
		},
		{
			Path:        "/v1/dishes/:id/demand",
			Method:      http.MethodGet,
			Handler:     GetDishDemand(tracker),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
