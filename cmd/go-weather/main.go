package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"go-weather/configs"
	"go-weather/docs"
	"go-weather/internal/application/controller"
	"go-weather/internal/application/middleware"
	"go-weather/internal/application/view"
	"go-weather/internal/domain/aggregation"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/usecase/forecast"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/infra/httplog"
	"go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/resource"
)

const shutdownTimeout = 10 * time.Second

// @title go-weather
// @version 1.0
// @description Daily weather forecast condensed from the OpenWeatherMap 5 day / 3 hour forecast.
// @BasePath /api
func main() {
	if err := resource.Init(configs.Env.PropertiesPath); err != nil {
		log.Fatalf("failed to load properties: %v", err)
	}
	if err := msg.Init(configs.Env.MessagesPath); err != nil {
		log.Fatalf("failed to load messages: %v", err)
	}

	cfg, err := configs.LoadAppConfig()
	if err != nil {
		log.Fatal(msg.GetMessage("app.error.config", err))
	}
	dayKey, err := aggregation.DayKeyStrategy(cfg.Forecast.DayKey)
	if err != nil {
		log.Fatal(msg.GetMessage("app.error.config", err))
	}

	log.Init(cfg.Name, cfg.LogLevel)
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))
	log.Info(msg.GetMessage("app.config-loaded", configs.Env.PropertiesPath))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = controller.NewRequestValidator()
	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("failed to load templates: %v", err)
	}
	e.Renderer = renderer

	middleware.SetupRecover(e)
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	middleware.SetupRateLimiter(e, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	apiGroup := e.Group(cfg.ContextPath)
	root := e.Group("")

	// Init Gateways
	forecastGateway := api.NewForecastGateway(cfg.Forecast.BaseURL, cfg.Forecast.APIKey, cfg.Forecast.Units, http.ClientOptions{
		ReadTimeout: cfg.Forecast.Timeout,
		Logger:      httplog.New(log.Base(), "openweathermap"),
	})
	geolocationGateway := api.NewGeolocationGateway(cfg.Geolocation.BaseURL, cfg.Geolocation.LocalityLanguage, http.ClientOptions{
		ReadTimeout: cfg.Geolocation.Timeout,
		Logger:      httplog.New(log.Base(), "bigdatacloud"),
	})

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(forecastGateway, geolocationGateway)
	forecastUseCase := forecast.NewForecastUseCase(forecastGateway, geolocationGateway, dayKey)

	// Init Controller
	healthController := controller.NewHealthController(apiGroup, healthUseCase)
	forecastController := controller.NewForecastController(apiGroup, forecastUseCase)
	geolocationController := controller.NewGeolocationController(apiGroup, forecastUseCase)
	pageController := controller.NewPageController(root, forecastUseCase, cfg.DefaultCity, cfg.ContextPath)

	// Init Routes
	healthController.InitHealthRoutes()
	forecastController.InitForecastRoutes()
	geolocationController.InitGeolocationRoutes()
	pageController.InitPageRoutes()

	docs.SwaggerInfo.BasePath = cfg.ContextPath
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start Routes
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatal(msg.GetMessage("app.error.start", err))
		}
	}()
	log.Info(msg.GetMessage("app.started", cfg.Port))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("failed to shut down server: %v", err)
	}
	log.Info(msg.GetMessage("app.stopped"))
}
