package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/franciscosanchezn/pizza-store-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-store-api/internal/config"
	"github.com/franciscosanchezn/pizza-store-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-store-api/internal/database"
	"github.com/franciscosanchezn/pizza-store-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-store-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// @title Pizza Store API
// @version 1.0
// @description Catalog of pizzas and the toppings they are made of
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()

	// Initialize database connection
	db := setupDatabase(configuration)

	// Initialize services and controllers
	toppingService := services.NewToppingService(db)
	pizzaService := services.NewPizzaService(db, toppingService)

	if configuration.SeedData {
		seedDatabase(toppingService, pizzaService)
	}

	router := setupRouter(db, pizzaService, toppingService)

	server := &http.Server{
		Addr:              fmt.Sprintf("%v:%d", configuration.Host, configuration.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := startServer(server)
	if err := database.Close(db); err != nil {
		log.WithError(err).Error("Failed to close database")
	}
	if serveErr != nil {
		log.WithError(serveErr).Error("Server stopped with error")
		os.Exit(1)
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter.
// The level follows APP_ENV unless LOG_LEVEL names one explicitly.
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	level := config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "development"))
	if explicit, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		level = explicit
	}
	log.SetLevel(level)
	database.SetLogLevel(level)
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the configured database and migrates the catalog schema
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(conf.Database)
	checkPanicErr(err)
	checkPanicErr(database.Migrate(db))
	return db
}

// seedDatabase fills the catalog with the house menu when it is empty
func seedDatabase(toppings services.ToppingService, pizzas services.PizzaService) {
	seeded, err := services.SeedCatalog(context.Background(), toppings, pizzas)
	checkPanicErr(err)
	if seeded {
		log.Info("Database seeded successfully")
	} else {
		log.Info("Database already contains catalog data, skipping seed")
	}
}

// setupRouter initializes the Gin router and sets up the routes
func setupRouter(db *gorm.DB, pizzas services.PizzaService, toppings services.ToppingService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log.StandardLogger()))

	router.GET("/health", controllers.HealthCheck(controllers.DatabasePinger(db)))
	controllers.RegisterRoutes(router,
		controllers.NewPizzaController(pizzas),
		controllers.NewToppingController(toppings),
	)
	router.NoRoute(controllers.RouteNotFound)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}

// startServer serves until SIGINT or SIGTERM, then drains in-flight requests
func startServer(server *http.Server) error {
	serverErr := make(chan error, 1)
	go func() {
		log.WithField("addr", server.Addr).Info("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		log.Info("Server stopped gracefully")
		return nil
	}
}
