package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"waiterbot/cmd"
	waiterhttp "waiterbot/internal/adapters/in/http"
	"waiterbot/internal/adapters/out/postgres/orderrepo"
	"waiterbot/internal/adapters/out/staticdata"
	"waiterbot/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)

	catalog, err := staticdata.LoadMenu(configs.MenuPath)
	if err != nil {
		log.Fatalf("Failed to load menu: %v", err)
	}

	week, err := staticdata.LoadOpeningHours(configs.OpeningHoursPath)
	if err != nil {
		log.Fatalf("Failed to load opening hours: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, catalog, week)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateResetAbandonedOrdersCommandHandler(),
		abandonedAfter(configs),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		MenuPath:              goDotEnvVariable("MENU_PATH"),
		OpeningHoursPath:      goDotEnvVariable("OPENING_HOURS_PATH"),
		AbandonedAfterMinutes: goDotEnvVariable("ABANDONED_AFTER_MINUTES"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func abandonedAfter(configs cmd.Config) time.Duration {
	minutes, err := strconv.Atoi(configs.AbandonedAfterMinutes)
	if err != nil || minutes <= 0 {
		log.Fatalf("ABANDONED_AFTER_MINUTES must be a positive integer, got %q",
			configs.AbandonedAfterMinutes)
	}
	return time.Duration(minutes) * time.Minute
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	getMenuHandler, err := app.CreateGetMenuQueryHandler()
	if err != nil {
		log.Fatalf("Failed to build menu query handler: %v", err)
	}
	getOpeningHoursHandler, err := app.CreateGetOpeningHoursQueryHandler()
	if err != nil {
		log.Fatalf("Failed to build opening hours query handler: %v", err)
	}
	checkIsOpenHandler, err := app.CreateCheckIsOpenQueryHandler()
	if err != nil {
		log.Fatalf("Failed to build is-open query handler: %v", err)
	}
	checkCurrentlyOpenHandler, err := app.CreateCheckCurrentlyOpenQueryHandler()
	if err != nil {
		log.Fatalf("Failed to build currently-open query handler: %v", err)
	}

	server := waiterhttp.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreatePlaceAdditionalRequestOrderCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreateResetOrderCommandHandler(),
		getMenuHandler,
		getOpeningHoursHandler,
		checkIsOpenHandler,
		checkCurrentlyOpenHandler,
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
