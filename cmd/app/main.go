package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"galapagos/cmd"
	httpin "galapagos/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	ctx := context.Background()

	app, err := cmd.NewCompositionRoot(ctx, configs)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer func() {
		_ = app.Close(ctx)
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		Neo4jURI:      goDotEnvVariable("NEO4J_URI"),
		Neo4jUser:     goDotEnvVariable("NEO4J_USER"),
		Neo4jPassword: goDotEnvVariable("NEO4J_PASSWORD"),
		Neo4jDatabase: goDotEnvVariable("NEO4J_DATABASE"),
		RedisURL:      goDotEnvVariable("REDIS_URL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreatePlanDeliveryCommandHandler(),
		app.CreateGetShortestPathQueryHandler(),
		app.CreateListVehiclesQueryHandler(),
		app.CreateGetPortsQueryHandler(),
		app.CreateGetLockersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
