package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go-weather/configs"
	"go-weather/internal/application/view"
	"go-weather/internal/domain/aggregation"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/usecase/forecast"
	"go-weather/internal/infra/httplog"
	"go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// Prints the condensed forecast of a city straight from OpenWeatherMap.
//
//	OPENWEATHER_API_KEY=... go run ./example/forecast -city Aarhus -day-key calendar-date
func main() {
	city := flag.String("city", "Copenhagen", "city to fetch")
	dayKeyName := flag.String("day-key", aggregation.StrategyDayOfMonth, "day-of-month or calendar-date")
	debug := flag.Bool("debug", false, "log upstream calls")
	messagesPath := flag.String("messages", configs.Env.MessagesPath, "message catalogue used by the log entries")
	flag.Parse()

	if err := msg.Init(*messagesPath); err != nil {
		log.Fatalf("failed to load messages: %v", err)
	}

	dayKey, err := aggregation.DayKeyStrategy(*dayKeyName)
	if err != nil {
		log.Fatalf("invalid day key: %v", err)
	}

	clientOptions := http.ClientOptions{ReadTimeout: 10 * time.Second}
	if *debug {
		log.Init("forecast-example", "debug")
		clientOptions.Logger = httplog.New(log.Base(), "openweathermap")
	}

	forecastGateway := api.NewForecastGateway("https://api.openweathermap.org", os.Getenv("OPENWEATHER_API_KEY"), "metric", clientOptions)
	geolocationGateway := api.NewGeolocationGateway("https://api.bigdatacloud.net", "en", http.ClientOptions{})
	useCase := forecast.NewForecastUseCase(forecastGateway, geolocationGateway, dayKey)

	result, err := useCase.GetDailyForecast(context.Background(), *city)
	if err != nil {
		log.Fatalf("failed to get forecast: %v", err)
	}

	fmt.Printf("%s, %s\n", result.City.Name, result.City.Country)
	for _, day := range result.List {
		description := ""
		if condition, ok := day.Condition(); ok {
			description = condition.Description
		}
		fmt.Printf("  %-9s %s  %5.1f°C  %s\n", view.DayName(day.TimestampText, true), day.TimestampText, day.Temperature(), description)
	}
}
