package app

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Nazarious-ucu/weather-hub-api/docs"
	"github.com/Nazarious-ucu/weather-hub-api/internal/cache"
	"github.com/Nazarious-ucu/weather-hub-api/internal/config"
	handlerAssistant "github.com/Nazarious-ucu/weather-hub-api/internal/handlers/assistant"
	handlerRecords "github.com/Nazarious-ucu/weather-hub-api/internal/handlers/records"
	handlerWeather "github.com/Nazarious-ucu/weather-hub-api/internal/handlers/weather"
	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
	"github.com/Nazarious-ucu/weather-hub-api/internal/refresher"
	"github.com/Nazarious-ucu/weather-hub-api/internal/repository"
	"github.com/Nazarious-ucu/weather-hub-api/internal/services/assistant"
	serviceCache "github.com/Nazarious-ucu/weather-hub-api/internal/services/cache"
	"github.com/Nazarious-ucu/weather-hub-api/internal/services/export"
	"github.com/Nazarious-ucu/weather-hub-api/internal/services/location"
	serviceLogger "github.com/Nazarious-ucu/weather-hub-api/internal/services/logger"
	"github.com/Nazarious-ucu/weather-hub-api/internal/services/metrics"
	"github.com/Nazarious-ucu/weather-hub-api/internal/services/records"
	serviceWeather "github.com/Nazarious-ucu/weather-hub-api/internal/services/weather"
	"github.com/Nazarious-ucu/weather-hub-api/internal/services/weather/decorators"
	"github.com/Nazarious-ucu/weather-hub-api/pkg/logger"
)

const timeoutDuration = 5 * time.Second

type App struct {
	cfg config.Config
	log *log.Logger
}

type ServiceContainer struct {
	WeatherService   *decorators.CachedService
	LocationService  *location.Service
	RecordService    *records.Service
	AssistantService *assistant.Service
	ExportService    *export.Service
	Refresher        *refresher.Refresher
	RecordRepository *repository.RecordRepository

	Router     *gin.Engine
	Srv        *http.Server
	Db         *sql.DB
	Redis      *redis.Client
	FileLogger *zap.Logger
}

func New(cfg config.Config, logger *log.Logger) *App {
	return &App{
		cfg: cfg,
		log: logger,
	}
}

func (a *App) Init() ServiceContainer {
	a.log.Println("Initializing application with configuration:", a.cfg)

	db, err := CreateSqliteDb(a.cfg.DB.Source)
	if err != nil {
		a.log.Panic(err)
	}

	if err := InitSqliteDb(db, a.cfg.DB.Dialect, a.cfg.DB.MigrationsPath); err != nil {
		a.log.Panic(err)
	}

	router := gin.Default()

	apiServer := &http.Server{
		Addr:        a.cfg.Server.Address,
		Handler:     router,
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	fileLogger, err := logger.NewFileLogger(a.cfg.LogsPath)
	if err != nil {
		a.log.Panicf("failed to create file logger: %v", err)
	}

	httpLogClient := &http.Client{
		Transport: serviceLogger.NewRoundTripper(fileLogger),
	}

	breakerCfg := serviceWeather.BreakerConfig{
		TimeInterval: time.Duration(a.cfg.Breaker.TimeInterval) * time.Second,
		TimeTimeOut:  time.Duration(a.cfg.Breaker.TimeTimeOut) * time.Second,
		RepeatNumber: a.cfg.Breaker.RepeatNumber,
	}

	openWeatherClient := serviceWeather.NewOpenWeatherClient(
		a.cfg.OpenWeatherAPIKey,
		a.cfg.OpenWeatherURL,
		httpLogClient,
		a.log,
	)

	openMeteoClient := serviceWeather.NewOpenMeteoClient(
		a.cfg.OpenMeteoURL,
		httpLogClient,
		a.log,
	)

	weatherService := serviceWeather.NewService(a.log,
		serviceWeather.NewBreakerClient("openweather", breakerCfg, openWeatherClient),
		serviceWeather.NewBreakerClient("openmeteo", breakerCfg, openMeteoClient),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr: a.cfg.Redis.Host + ":" + a.cfg.Redis.Port,
		DB:   a.cfg.Redis.DbType,
	})

	reportCache := serviceCache.NewMetricsDecorator[models.WeatherReport](
		cache.NewRedisClient[models.WeatherReport](redisClient, a.log),
		metrics.NewPromCollector(),
	)

	cachedWeather := decorators.NewCachedService(
		weatherService,
		reportCache,
		a.log,
		time.Duration(a.cfg.Redis.LiveTime)*time.Minute,
	)

	nominatimClient := location.NewNominatimClient(a.cfg.Geocoder.NominatimURL, httpLogClient, a.log)

	// Without a key every Google request fails, so skip it in the chain.
	var locationService *location.Service
	if a.cfg.Geocoder.GoogleAPIKey != "" {
		locationService = location.NewService(a.log,
			location.NewGoogleClient(
				a.cfg.Geocoder.GoogleAPIKey,
				a.cfg.Geocoder.GoogleURL,
				httpLogClient,
				a.log,
			),
			nominatimClient,
		)
	} else {
		locationService = location.NewService(a.log, nominatimClient)
	}

	recordRepository := repository.NewRecordRepository(db)
	recordService := records.NewService(recordRepository, cachedWeather, locationService, a.log)

	srvContainer := ServiceContainer{
		WeatherService:   cachedWeather,
		LocationService:  locationService,
		RecordService:    recordService,
		AssistantService: assistant.NewService(a.cfg.Assistant.OpenAIAPIKey, a.cfg.Assistant.Model, a.log),
		ExportService:    export.NewService(),
		Refresher:        refresher.NewRefresher(recordService, a.cfg.RefreshSpec, a.log),
		RecordRepository: recordRepository,

		Router:     router,
		Srv:        apiServer,
		Db:         db,
		Redis:      redisClient,
		FileLogger: fileLogger,
	}

	return srvContainer
}

func (a *App) Start(srvContainer ServiceContainer) error {
	a.log.Println("Starting server on", a.cfg.Server.Address)

	defer func() {
		if err := srvContainer.Srv.Close(); err != nil {
			a.log.Println("Error stopping server:", err)
		}
	}()

	weatherHandler := handlerWeather.NewHandler(srvContainer.RecordService)
	recordsHandler := handlerRecords.NewHandler(srvContainer.RecordService, srvContainer.ExportService)
	assistantHandler := handlerAssistant.NewHandler(
		srvContainer.AssistantService,
		srvContainer.RecordService,
	)

	api := srvContainer.Router.Group("/api")
	{
		api.GET("/weather", weatherHandler.GetWeather)

		api.POST("/records", recordsHandler.Create)
		api.GET("/records", recordsHandler.List)
		api.GET("/records/export", recordsHandler.Export)
		api.GET("/records/:id", recordsHandler.Get)
		api.PUT("/records/:id", recordsHandler.Update)
		api.DELETE("/records/:id", recordsHandler.Delete)

		api.GET("/stats", recordsHandler.Stats)

		api.POST("/assistant/chat", assistantHandler.Chat)
		api.GET("/assistant/insights", assistantHandler.Insights)
		api.GET("/assistant/activities", assistantHandler.Activities)
	}
	srvContainer.Router.GET("/swagger/*any", swagger.WrapHandler(swaggerfiles.Handler))
	srvContainer.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if err := srvContainer.Refresher.Start(); err != nil {
		return err
	}

	if err := srvContainer.Srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (a *App) Stop(srvContainer ServiceContainer) error {
	a.log.Println("Stopping application…")

	srvContainer.Refresher.Stop()
	a.log.Println("Refresher stopped")

	ctx, cancel := context.WithTimeout(context.Background(), timeoutDuration)
	defer cancel()

	if err := srvContainer.Srv.Shutdown(ctx); err != nil {
		a.log.Println("HTTP shutdown error:", err)
	} else {
		a.log.Println("HTTP server stopped")
	}

	if err := srvContainer.Redis.Close(); err != nil {
		a.log.Println("Redis close error:", err)
	}

	if err := srvContainer.Db.Close(); err != nil {
		a.log.Println("DB close error:", err)
	} else {
		a.log.Println("Database closed")
	}

	if err := srvContainer.FileLogger.Sync(); err != nil {
		a.log.Printf("failed to sync file logger: %v", err)
	}

	a.log.Println("Shutdown complete")
	return nil
}

func CreateSqliteDb(name string) (*sql.DB, error) {
	if name == "" {
		return nil, errors.New("database name cannot be empty")
	}
	connectionString := "file:" + name + "?cache=shared&mode=rwc"
	db, err := sql.Open("sqlite", connectionString)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitSqliteDb(db *sql.DB, dialect, migrationPath string) error {
	log.Println("Initializing migrations:", migrationPath)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	if err := goose.Up(db, migrationPath); err != nil {
		return err
	}

	return nil
}
