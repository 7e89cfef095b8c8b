package owmclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/menu-pricing-api/internal/config"
)

type Client interface {
	GetCurrentWeather() (*CurrentWeatherResponse, error)
}

type OpenWeatherClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &OpenWeatherClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
