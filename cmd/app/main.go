package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"universestore/cmd"
	httpin "universestore/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Error wiring application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		TelegramToken:  goDotEnvVariable("TELEGRAM_TOKEN"),
		TelegramChatID: goDotEnvVariable("TELEGRAM_CHAT_ID"),
		OrdersFilePath: goDotEnvVariable("ORDERS_FILE"),
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
		app.CreatePlaceOrderCommandHandler(),
		app.CreateNotifyDeliveryCompleteCommandHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetOrderProgressQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
