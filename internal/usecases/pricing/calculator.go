package pricing

import (
	"time"
)

// Fatores usados no detalhamento do preço
const (
	FactorPeakHour = "Peak Hour"
	FactorDay      = "Day Premium"
	FactorDemand   = "Demand"
	FactorWeather  = "Weather"
	FactorRule     = "Rule"
)

// peakWindow é uma janela diária de horas [Start, End) com multiplicador
// fixo. As janelas não se sobrepõem; a primeira que corresponder vence.
type peakWindow struct {
	Start      int
	End        int
	Multiplier float64
	Reason     string
}

var peakWindows = []peakWindow{
	{Start: 11, End: 14, Multiplier: 1.15, Reason: "Lunch Rush"},
	{Start: 18, End: 21, Multiplier: 1.25, Reason: "Dinner Rush"},
	{Start: 22, End: 23, Multiplier: 0.90, Reason: "Late Night"},
}

type dayMultiplier struct {
	Multiplier float64
	Reason     string
}

var dayMultipliers = map[time.Weekday]dayMultiplier{
	time.Sunday:   {Multiplier: 1.20, Reason: "Sunday Premium"},
	time.Friday:   {Multiplier: 1.15, Reason: "Friday Night"},
	time.Saturday: {Multiplier: 1.20, Reason: "Saturday Night"},
}

// demandThreshold é uma faixa de demanda; a tabela é avaliada em ordem
// decrescente para que a maior faixa atingida vença.
type demandThreshold struct {
	MinOrders  int
	Multiplier float64
	Reason     string
}

var demandThresholds = []demandThreshold{
	{MinOrders: 20, Multiplier: 1.30, Reason: "Very High Demand"},
	{MinOrders: 15, Multiplier: 1.20, Reason: "High Demand"},
	{MinOrders: 10, Multiplier: 1.10, Reason: "Moderate Demand"},
}

type weatherMultiplier struct {
	Multiplier float64
	Reason     string
}

var weatherMultipliers = map[string]weatherMultiplier{
	"rain":  {Multiplier: 1.15, Reason: "Rainy Weather"},
	"snow":  {Multiplier: 1.25, Reason: "Snowy Weather"},
	"storm": {Multiplier: 1.30, Reason: "Storm Surge"},
	"cold":  {Multiplier: 1.10, Reason: "Cold Weather"},
	"hot":   {Multiplier: 1.05, Reason: "Hot Weather"},
}

// CalculatePeakHourMultiplier retorna o multiplicador do horário de pico
// para o instante informado. Fora de todas as janelas retorna 1.0.
func CalculatePeakHourMultiplier(now time.Time) (float64, string) {
	hour := now.Hour()
	for _, window := range peakWindows {
		if hour >= window.Start && hour < window.End {
			return window.Multiplier, window.Reason
		}
	}

	return 1.0, "Regular Hours"
}

// CalculateDayOfWeekMultiplier retorna o multiplicador do dia da semana
func CalculateDayOfWeekMultiplier(now time.Time) (float64, string) {
	if day, exists := dayMultipliers[now.Weekday()]; exists {
		return day.Multiplier, day.Reason
	}

	return 1.0, "Regular Day"
}

// CalculateDemandMultiplier retorna o multiplicador da faixa de demanda
// pela contagem de pedidos da hora corrente. Avalia as faixas da maior
// para a menor: uma contagem de 20 cai em "Very High Demand", não nas
// faixas inferiores.
func CalculateDemandMultiplier(orderCount int) (float64, string) {
	for _, threshold := range demandThresholds {
		if orderCount >= threshold.MinOrders {
			return threshold.Multiplier, threshold.Reason
		}
	}

	return 1.0, "Normal Demand"
}

// CalculateWeatherMultiplier retorna o multiplicador para a condição
// climática informada; condições desconhecidas são neutras
func CalculateWeatherMultiplier(condition string) (float64, string) {
	if weather, exists := weatherMultipliers[condition]; exists {
		return weather.Multiplier, weather.Reason
	}

	return 1.0, "Regular Weather"
}
