package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/menu-pricing-api/infrastructure/cache"
	"github.com/vfg2006/menu-pricing-api/infrastructure/integrator/openweather"
	"github.com/vfg2006/menu-pricing-api/infrastructure/repository"
	"github.com/vfg2006/menu-pricing-api/internal/config"
	"github.com/vfg2006/menu-pricing-api/internal/domain"
	"github.com/vfg2006/menu-pricing-api/internal/usecases/pricing"
)

// PriceUpdateSyncConfig representa a configuração do agendador de preços dinâmicos
type PriceUpdateSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// PriceUpdateSyncService gerencia a varredura periódica que recalcula o
// preço dinâmico de todos os pratos ativos. Um preço recalculado só é
// persistido (e historiado) quando difere do preço corrente.
type PriceUpdateSyncService struct {
	scheduler           *gocron.Scheduler
	config              PriceUpdateSyncConfig
	appConfig           *config.Config
	dishRepo            repository.DishRepository
	dynamicPriceRepo    repository.DynamicPriceRepository
	pricingService      pricing.PricingService
	weatherService      openweather.WeatherIntegrator
	priceCache          cache.PriceCache
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewPriceUpdateSyncService cria uma nova instância do serviço de atualização de preços
func NewPriceUpdateSyncService(
	dishRepo repository.DishRepository,
	dynamicPriceRepo repository.DynamicPriceRepository,
	pricingService pricing.PricingService,
	weatherService openweather.WeatherIntegrator,
	priceCache cache.PriceCache,
	appConfig *config.Config,
) *PriceUpdateSyncService {
	syncConfig := PriceUpdateSyncConfig{
		CronSchedule:      appConfig.PriceUpdateSync.CronSchedule,
		MaxConcurrentJobs: appConfig.PriceUpdateSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.PriceUpdateSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de preços dinâmicos carregada")

	return &PriceUpdateSyncService{
		scheduler:        scheduler,
		config:           syncConfig,
		appConfig:        appConfig,
		dishRepo:         dishRepo,
		dynamicPriceRepo: dynamicPriceRepo,
		pricingService:   pricingService,
		weatherService:   weatherService,
		priceCache:       priceCache,
		syncRunning:      false,
	}
}

// Start inicia o agendador
func (s *PriceUpdateSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização periódica de preços desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de preços")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllPrices()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de preços: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de preços")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllPrices recalcula o preço dinâmico de todos os pratos ativos
func (s *PriceUpdateSyncService) syncAllPrices() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de preços já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização de preços para todos os pratos ativos")

	activeDishes, err := s.getActiveDishes()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de pratos para atualização de preços")
		return
	}

	if len(activeDishes) == 0 {
		logrus.Info("Nenhum prato ativo encontrado para atualização de preços")
		return
	}

	// A condição climática é resolvida uma vez por varredura: todos os
	// pratos da mesma varredura compartilham o mesmo fator de clima.
	weatherCondition := s.currentWeatherCondition()

	updated := s.processDishes(activeDishes, weatherCondition)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"dishes":   len(activeDishes),
		"updated":  updated,
	}).Info("Atualização de preços concluída")

	s.lastSyncCompletedAt = time.Now()
}

// getActiveDishes busca os pratos ativos do cardápio
func (s *PriceUpdateSyncService) getActiveDishes() ([]*domain.Dish, error) {
	activeDishes, err := s.dishRepo.ListDishes([]domain.DishStatus{domain.DishStatusActive})
	if err != nil {
		return nil, err
	}

	if len(activeDishes) == 0 {
		logrus.Info("Nenhum prato encontrado para atualização de preços")
		return []*domain.Dish{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"active_dishes": len(activeDishes),
	}).Info("Pratos encontrados para atualização de preços")

	return activeDishes, nil
}

// currentWeatherCondition resolve a condição climática corrente, em
// melhor esforço: falha no integrador degrada para o fator neutro.
func (s *PriceUpdateSyncService) currentWeatherCondition() string {
	if s.weatherService == nil || !s.appConfig.OpenWeather.Enabled {
		return ""
	}

	condition, err := s.weatherService.CurrentCondition()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao consultar condição climática, ignorando fator de clima")
		return ""
	}

	return condition
}

// processDishes recalcula e persiste os preços com workers concorrentes
func (s *PriceUpdateSyncService) processDishes(dishes []*domain.Dish, weatherCondition string) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	var updatedCount int64
	var countMutex sync.Mutex

	for _, dish := range dishes {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(d *domain.Dish) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			if s.processDishPrice(d, weatherCondition) {
				countMutex.Lock()
				updatedCount++
				countMutex.Unlock()
			}
		}(dish)
	}

	wg.Wait()

	return int(updatedCount)
}

// processDishPrice recalcula o preço de um prato e persiste a mudança.
// Retorna true quando o preço mudou e foi gravado. Falhas em um prato
// são registradas e não interrompem a varredura dos demais.
func (s *PriceUpdateSyncService) processDishPrice(dish *domain.Dish, weatherCondition string) bool {
	ctx := context.Background()

	opts := pricing.Options{
		ConsiderWeather:  weatherCondition != "",
		WeatherCondition: weatherCondition,
	}

	breakdown := s.pricingService.Calculate(ctx, dish, opts)

	currentPrice, err := s.dynamicPriceRepo.GetByDishID(dish.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"dish_id": dish.ID,
			"error":   err.Error(),
		}).Error("Erro ao consultar preço dinâmico corrente do prato")
		return false
	}

	oldPrice := dish.BasePrice
	if currentPrice != nil {
		oldPrice = currentPrice.CurrentPrice
	}

	// Preço inalterado: nada a gravar e nada a historiar
	if currentPrice != nil && breakdown.Price == currentPrice.CurrentPrice {
		return false
	}

	newPrice := &domain.DynamicPrice{
		DishID:       dish.ID,
		BasePrice:    dish.BasePrice,
		CurrentPrice: breakdown.Price,
		Multiplier:   breakdown.TotalMultiplier,
		Reason:       breakdown.PriceReason(),
		Active:       true,
		UpdatedAt:    breakdown.CalculatedAt,
	}

	historyEntry := &domain.PricingHistoryEntry{
		DishID:   dish.ID,
		OldPrice: oldPrice,
		NewPrice: breakdown.Price,
		Reason:   breakdown.PriceReason(),
	}

	if err := s.dynamicPriceRepo.SaveWithHistory(newPrice, historyEntry); err != nil {
		logrus.WithFields(logrus.Fields{
			"dish_id": dish.ID,
			"error":   err.Error(),
		}).Error("Erro ao salvar preço dinâmico do prato")
		return false
	}

	if s.priceCache != nil {
		if err := s.priceCache.InvalidateDish(ctx, dish.ID); err != nil {
			logrus.WithFields(logrus.Fields{
				"dish_id": dish.ID,
				"error":   err.Error(),
			}).Warn("Erro ao invalidar cache de preço do prato")
		}
	}

	logrus.WithFields(logrus.Fields{
		"dish_id":   dish.ID,
		"old_price": oldPrice,
		"new_price": breakdown.Price,
		"reason":    newPrice.Reason,
	}).Info("Preço dinâmico do prato atualizado")

	return true
}

// TriggerManualSync inicia manualmente uma atualização de preços
func (s *PriceUpdateSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de preços já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual de preços")
	go s.syncAllPrices()
}

// GetStatus retorna o status atual do agendador
func (s *PriceUpdateSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"weather_enabled":        s.appConfig.OpenWeather.Enabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
