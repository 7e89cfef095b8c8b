package pricing

import (
	"context"

	"github.com/vfg2006/menu-pricing-api/infrastructure/cache"
	"github.com/vfg2006/menu-pricing-api/internal/domain"
	"github.com/vfg2006/menu-pricing-api/pkg/log"
)

// CachedService decora o serviço de precificação com cache de curta
// duração por prato. Somente o caminho Calculate é cacheado: o caminho
// de regras é usado por telas administrativas e deve refletir a base.
type CachedService struct {
	*Service
	priceCache cache.PriceCache
}

// WithCache retorna o serviço decorado com o cache informado
func (s *Service) WithCache(priceCache cache.PriceCache) *CachedService {
	return &CachedService{
		Service:    s,
		priceCache: priceCache,
	}
}

func (c *CachedService) Calculate(ctx context.Context, dish *domain.Dish, opts Options) *domain.PriceBreakdown {
	// O cache guarda apenas o cálculo padrão; opções explícitas mudam o
	// resultado e passam direto
	if opts != (Options{}) {
		return c.Service.Calculate(ctx, dish, opts)
	}

	if cached, err := c.priceCache.GetBreakdown(ctx, dish.ID); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Falha ao consultar cache de preço")
	} else if cached != nil {
		return cached
	}

	breakdown := c.Service.Calculate(ctx, dish, opts)

	if err := c.priceCache.SetBreakdown(ctx, breakdown); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Falha ao gravar cache de preço")
	}

	return breakdown
}
