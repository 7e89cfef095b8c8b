package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/menu-pricing-api/infrastructure/cache"
	"github.com/vfg2006/menu-pricing-api/infrastructure/database/postgres"
	"github.com/vfg2006/menu-pricing-api/infrastructure/integrator/openweather"
	"github.com/vfg2006/menu-pricing-api/infrastructure/integrator/openweather/owmclient"
	"github.com/vfg2006/menu-pricing-api/infrastructure/repository"
	"github.com/vfg2006/menu-pricing-api/internal/api"
	"github.com/vfg2006/menu-pricing-api/internal/config"
	"github.com/vfg2006/menu-pricing-api/internal/scheduler"
	"github.com/vfg2006/menu-pricing-api/internal/usecases/authenticating"
	"github.com/vfg2006/menu-pricing-api/internal/usecases/demand"
	"github.com/vfg2006/menu-pricing-api/internal/usecases/menu"
	"github.com/vfg2006/menu-pricing-api/internal/usecases/pricing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	dishRepo := repository.NewDishRepository(pgConn)
	ruleRepo := repository.NewPricingRuleRepository(pgConn)
	demandMetricRepo := repository.NewDemandMetricRepository(pgConn)
	dynamicPriceRepo := repository.NewDynamicPriceRepository(pgConn)
	pricingHistoryRepo := repository.NewPricingHistoryRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	priceCache := priceCache(ctx, cfg)

	// Integrador de clima, opcional por configuração
	var weatherService openweather.WeatherIntegrator
	if cfg.OpenWeather.Enabled {
		weatherService = openweather.New(cfg, owmclient.NewClient(cfg))
		logrus.Info("Integração com OpenWeather habilitada")
	}

	demandTracker := demand.NewService(demandMetricRepo, cfg.DemandTracking)
	menuService := menu.NewService(dishRepo, priceCache)

	// Inicializa o serviço de precificação com suporte a cache
	pricingService := pricing.NewService(ruleRepo, demandTracker)

	var cachedPricingService pricing.PricingService = pricingService
	if priceCache != nil {
		cachedPricingService = pricingService.WithCache(priceCache)
	}

	// Inicializa o agendador de atualização de preços. A varredura usa o
	// serviço sem cache: o preço persistido deve ser sempre recalculado.
	priceUpdateSyncService := scheduler.NewPriceUpdateSyncService(
		dishRepo,
		dynamicPriceRepo,
		pricingService,
		weatherService,
		priceCache,
		cfg,
	)

	// Inicia o agendador em background
	if err := priceUpdateSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de preços")
	} else {
		logrus.Info("Agendador de atualização de preços iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		menuService,
		cachedPricingService,
		demandTracker,
		authenticator,
		ruleRepo,
		dynamicPriceRepo,
		pricingHistoryRepo,
		priceUpdateSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// priceCache cria o cache de preços em Redis. Com o cache desabilitado,
// ou com o Redis indisponível e não obrigatório, o serviço sobe sem cache.
func priceCache(ctx context.Context, cfg *config.Config) cache.PriceCache {
	if !cfg.Redis.PriceCacheOn {
		logrus.Info("Cache de preços desabilitado por configuração")
		return nil
	}

	rdb, err := cache.NewRedis(ctx, cfg.Redis.URL)
	if err != nil {
		if cfg.Redis.ConnectRequired {
			logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
		}

		logrus.WithError(err).Warn("Redis indisponível, servindo preços sem cache")
		return nil
	}

	logrus.Info("Conexão com Redis estabelecida com sucesso")
	return cache.NewPriceCache(rdb, time.Duration(cfg.Redis.PriceCacheTTL)*time.Second)
}
