package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePeakHourMultiplier(t *testing.T) {
	tests := []struct {
		name               string
		hour               int
		expectedMultiplier float64
		expectedReason     string
	}{
		{
			name:               "Início do almoço (11h) deve aplicar Lunch Rush",
			hour:               11,
			expectedMultiplier: 1.15,
			expectedReason:     "Lunch Rush",
		},
		{
			name:               "Meio do almoço (13h) deve aplicar Lunch Rush",
			hour:               13,
			expectedMultiplier: 1.15,
			expectedReason:     "Lunch Rush",
		},
		{
			name:               "Fim do almoço (14h) já está fora da janela",
			hour:               14,
			expectedMultiplier: 1.0,
			expectedReason:     "Regular Hours",
		},
		{
			name:               "Início do jantar (18h) deve aplicar Dinner Rush",
			hour:               18,
			expectedMultiplier: 1.25,
			expectedReason:     "Dinner Rush",
		},
		{
			name:               "Meio do jantar (20h) deve aplicar Dinner Rush",
			hour:               20,
			expectedMultiplier: 1.25,
			expectedReason:     "Dinner Rush",
		},
		{
			name:               "Fim do jantar (21h) já está fora da janela",
			hour:               21,
			expectedMultiplier: 1.0,
			expectedReason:     "Regular Hours",
		},
		{
			name:               "Madrugada (22h) deve aplicar desconto Late Night",
			hour:               22,
			expectedMultiplier: 0.90,
			expectedReason:     "Late Night",
		},
		{
			name:               "23h já está fora da janela Late Night",
			hour:               23,
			expectedMultiplier: 1.0,
			expectedReason:     "Regular Hours",
		},
		{
			name:               "Manhã (9h) é horário regular",
			hour:               9,
			expectedMultiplier: 1.0,
			expectedReason:     "Regular Hours",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2024, 6, 12, tt.hour, 30, 0, 0, time.Local)

			multiplier, reason := CalculatePeakHourMultiplier(now)

			assert.Equal(t, tt.expectedMultiplier, multiplier)
			assert.Equal(t, tt.expectedReason, reason)
		})
	}
}

func TestCalculateDayOfWeekMultiplier(t *testing.T) {
	tests := []struct {
		name               string
		date               time.Time
		expectedMultiplier float64
		expectedReason     string
	}{
		{
			name:               "Domingo deve aplicar Sunday Premium",
			date:               time.Date(2024, 6, 16, 12, 0, 0, 0, time.Local),
			expectedMultiplier: 1.20,
			expectedReason:     "Sunday Premium",
		},
		{
			name:               "Sexta-feira deve aplicar Friday Night",
			date:               time.Date(2024, 6, 14, 12, 0, 0, 0, time.Local),
			expectedMultiplier: 1.15,
			expectedReason:     "Friday Night",
		},
		{
			name:               "Sábado deve aplicar Saturday Night",
			date:               time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local),
			expectedMultiplier: 1.20,
			expectedReason:     "Saturday Night",
		},
		{
			name:               "Quarta-feira é dia regular",
			date:               time.Date(2024, 6, 12, 12, 0, 0, 0, time.Local),
			expectedMultiplier: 1.0,
			expectedReason:     "Regular Day",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			multiplier, reason := CalculateDayOfWeekMultiplier(tt.date)

			assert.Equal(t, tt.expectedMultiplier, multiplier)
			assert.Equal(t, tt.expectedReason, reason)
		})
	}
}

func TestCalculateDemandMultiplier(t *testing.T) {
	tests := []struct {
		name               string
		orderCount         int
		expectedMultiplier float64
		expectedReason     string
	}{
		{
			name:               "20 pedidos devem cair na faixa Very High Demand",
			orderCount:         20,
			expectedMultiplier: 1.30,
			expectedReason:     "Very High Demand",
		},
		{
			name:               "25 pedidos permanecem na faixa Very High Demand",
			orderCount:         25,
			expectedMultiplier: 1.30,
			expectedReason:     "Very High Demand",
		},
		{
			name:               "15 pedidos devem cair na faixa High Demand",
			orderCount:         15,
			expectedMultiplier: 1.20,
			expectedReason:     "High Demand",
		},
		{
			name:               "12 pedidos devem cair na faixa Moderate Demand",
			orderCount:         12,
			expectedMultiplier: 1.10,
			expectedReason:     "Moderate Demand",
		},
		{
			name:               "9 pedidos ainda são demanda normal",
			orderCount:         9,
			expectedMultiplier: 1.0,
			expectedReason:     "Normal Demand",
		},
		{
			name:               "Zero pedidos é demanda normal",
			orderCount:         0,
			expectedMultiplier: 1.0,
			expectedReason:     "Normal Demand",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			multiplier, reason := CalculateDemandMultiplier(tt.orderCount)

			assert.Equal(t, tt.expectedMultiplier, multiplier)
			assert.Equal(t, tt.expectedReason, reason)
		})
	}
}

func TestCalculateWeatherMultiplier(t *testing.T) {
	tests := []struct {
		name               string
		condition          string
		expectedMultiplier float64
		expectedReason     string
	}{
		{
			name:               "Chuva deve aplicar Rainy Weather",
			condition:          "rain",
			expectedMultiplier: 1.15,
			expectedReason:     "Rainy Weather",
		},
		{
			name:               "Neve deve aplicar Snowy Weather",
			condition:          "snow",
			expectedMultiplier: 1.25,
			expectedReason:     "Snowy Weather",
		},
		{
			name:               "Tempestade deve aplicar Storm Surge",
			condition:          "storm",
			expectedMultiplier: 1.30,
			expectedReason:     "Storm Surge",
		},
		{
			name:               "Frio deve aplicar Cold Weather",
			condition:          "cold",
			expectedMultiplier: 1.10,
			expectedReason:     "Cold Weather",
		},
		{
			name:               "Calor deve aplicar Hot Weather",
			condition:          "hot",
			expectedMultiplier: 1.05,
			expectedReason:     "Hot Weather",
		},
		{
			name:               "Condição desconhecida é neutra",
			condition:          "fog",
			expectedMultiplier: 1.0,
			expectedReason:     "Regular Weather",
		},
		{
			name:               "Condição vazia é neutra",
			condition:          "",
			expectedMultiplier: 1.0,
			expectedReason:     "Regular Weather",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			multiplier, reason := CalculateWeatherMultiplier(tt.condition)

			assert.Equal(t, tt.expectedMultiplier, multiplier)
			assert.Equal(t, tt.expectedReason, reason)
		})
	}
}
