package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Nazarious-ucu/weather-hub-api/internal/app"
	"github.com/Nazarious-ucu/weather-hub-api/internal/config"
)

// @title Weather Hub API
// @version 1.0
// @description API for weather lookup, stored weather records and a weather assistant
// @host localhost:8080
// @BasePath /api/
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panic(err)
	}

	logger := log.New(log.Writer(), "WeatherHubAPI: ", log.LstdFlags)

	application := app.New(*cfg, logger)

	container := application.Init()

	if err := application.Start(container); err != nil {
		log.Panic(err)
	}

	defer func() {
		if err := application.Stop(container); err != nil {
			log.Panicf("failed to shutdown application: %v", err)
		}
		log.Println("Application shutdown successfully")
	}()
}
