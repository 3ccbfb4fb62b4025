package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tradematch/cmd"
	"tradematch/internal/adapters/out/postgres/orderrepo"
	"tradematch/internal/adapters/out/postgres/workerrepo"
)

func main() {
	config := getConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err = gormDB.AutoMigrate(&workerrepo.WorkerDTO{}, &orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	root, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}
	defer root.Close()

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, config.HTTPPort)
}

func getConfig() cmd.Config {
	return cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		NotifyMode:     goDotEnvVariable("NOTIFY_MODE"),
		PushGatewayURL: goDotEnvVariable("PUSH_GATEWAY_URL"),
		PushToken:      goDotEnvVariable("PUSH_TOKEN"),
		AmqpURL:        goDotEnvVariable("AMQP_URL"),
		AmqpExchange:   goDotEnvVariable("AMQP_EXCHANGE"),
		CandidateLimit: cmd.LimitOrDefault(goDotEnvVariable("CANDIDATE_LIMIT"), 0),
		ListLimit:      cmd.LimitOrDefault(goDotEnvVariable("LIST_LIMIT"), 0),
	}
}

func goDotEnvVariable(key string) string {
	_ = godotenv.Load(".env")
	return os.Getenv(key)
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	server, err := root.CreateHTTPServer()
	if err != nil {
		log.Fatalf("failed to build http server: %v", err)
	}
	server.RegisterRoutes(e)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
