package weather

const DateLayout = "2006-01-02"

type ForecastQuery struct {
	Lat       string `query:"lat"`
	Lon       string `query:"lon"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

type ForecastDay struct {
	Date    string  `json:"date"`
	Temp    float64 `json:"temp"`
	Weather string  `json:"weather"`
	Icon    string  `json:"icon"`
}

type ForecastResponse struct {
	Forecast []ForecastDay `json:"forecast"`
}
