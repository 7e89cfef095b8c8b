package openweather

import (
	"github.com/vfg2006/menu-pricing-api/infrastructure/integrator/openweather/owmclient"
	"github.com/vfg2006/menu-pricing-api/internal/config"
)

// WeatherIntegrator expõe a condição climática corrente já reduzida ao
// vocabulário da tabela de multiplicadores (rain, snow, storm, cold, hot).
type WeatherIntegrator interface {
	CurrentCondition() (string, error)
}

type OpenWeatherService struct {
	cfg    *config.Config
	Client owmclient.Client
}

func New(cfg *config.Config, client owmclient.Client) WeatherIntegrator {
	return &OpenWeatherService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *OpenWeatherService) CurrentCondition() (string, error) {
	resp, err := s.Client.GetCurrentWeather()
	if err != nil {
		return "", err
	}

	return resp.Current.PricingCondition(), nil
}
