package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"kopilka/internal/api"
	"kopilka/internal/api/handlers"
	"kopilka/internal/repository"
	"kopilka/internal/service"
	"kopilka/pkg/auth"
	"kopilka/pkg/config"
	"kopilka/pkg/logger"
	"kopilka/pkg/postgres"

	"go.uber.org/zap"
)

// @title Kopilka API
// @version 1.0
// @description Personal finance tracker: accounts, transactions, savings goals, debts and recurring expenses.

// @contact.name API Support
// @contact.email support@kopilka.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Kopilka service")

	// Apply database migrations
	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	accountRepo := repository.NewAccountRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	goalRepo := repository.NewSavingsGoalRepository(db, appLogger)
	debtRepo := repository.NewDebtRepository(db, appLogger)
	recurringRepo := repository.NewRecurringExpenseRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	ledgerService := service.NewLedgerService(db, accountRepo, txRepo, goalRepo, recurringRepo, appLogger)

	// Initialize handlers
	h := api.Handlers{
		Auth:             handlers.NewAuthHandler(authService, appLogger),
		Category:         handlers.NewCategoryHandler(categoryRepo, appLogger),
		Account:          handlers.NewAccountHandler(accountRepo, ledgerService, appLogger),
		Transaction:      handlers.NewTransactionHandler(txRepo, accountRepo, categoryRepo, ledgerService, appLogger),
		SavingsGoal:      handlers.NewSavingsGoalHandler(goalRepo, ledgerService, appLogger),
		Debt:             handlers.NewDebtHandler(debtRepo, appLogger),
		RecurringExpense: handlers.NewRecurringExpenseHandler(recurringRepo, accountRepo, categoryRepo, ledgerService, appLogger),
		Health:           handlers.NewHealthHandler(db),
	}

	// Setup router
	app := api.SetupRouter(h, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
