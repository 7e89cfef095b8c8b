package owmclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	owmdomain "github.com/vfg2006/menu-pricing-api/infrastructure/integrator/openweather/domain"
)

type CurrentWeatherResponse struct {
	Lat     float64                  `json:"lat"`
	Lon     float64                  `json:"lon"`
	Current owmdomain.CurrentWeather `json:"current"`
}

func (c *OpenWeatherClient) GetCurrentWeather() (*CurrentWeatherResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.OpenWeather.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/onecall")

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("lat", strconv.FormatFloat(c.config.OpenWeather.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(c.config.OpenWeather.Longitude, 'f', -1, 64))
	query.Set("appid", c.config.OpenWeather.APIKey)
	query.Set("units", "metric")
	query.Set("exclude", "minutely,hourly,daily,alerts")
	endpoint.RawQuery = query.Encode()

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON.
	var response CurrentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}
