package domain

// Condições climáticas reconhecidas pelo cálculo de preço. Qualquer outra
// condição reportada pelo provedor é tratada como neutra.
const (
	ConditionRain  = "rain"
	ConditionSnow  = "snow"
	ConditionStorm = "storm"
	ConditionCold  = "cold"
	ConditionHot   = "hot"
)

const (
	coldThresholdCelsius = 12.0
	hotThresholdCelsius  = 30.0
)

// CurrentWeather é o recorte da resposta do One Call API que interessa
// para precificação
type CurrentWeather struct {
	Temp    float64        `json:"temp"`
	Weather []WeatherGroup `json:"weather"`
}

type WeatherGroup struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
}

// PricingCondition reduz o estado do tempo a uma das condições usadas na
// tabela de multiplicadores. Precipitação tem precedência sobre
// temperatura; retorna vazio quando o tempo não influencia o preço.
func (w CurrentWeather) PricingCondition() string {
	for _, group := range w.Weather {
		switch group.Main {
		case "Thunderstorm":
			return ConditionStorm
		case "Snow":
			return ConditionSnow
		case "Rain", "Drizzle":
			return ConditionRain
		}
	}

	if w.Temp <= coldThresholdCelsius {
		return ConditionCold
	}

	if w.Temp >= hotThresholdCelsius {
		return ConditionHot
	}

	return ""
}
