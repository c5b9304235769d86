package main

import (
	"context"
	"errors"
	"log"
	"time"

	"kopilka/internal/models"
	"kopilka/internal/money"
	"kopilka/internal/repository"
	"kopilka/pkg/auth"
	"kopilka/pkg/config"
	"kopilka/pkg/logger"
	"kopilka/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	demoEmail    = "demo@kopilka.app"
	demoUsername = "demo"
	demoPassword = "demo1234"
)

// Seeds a demo user with a month of sample finance data. Running it twice
// is a no-op: the demo user's presence is the idempotency marker.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Apply database migrations
	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	accountRepo := repository.NewAccountRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	goalRepo := repository.NewSavingsGoalRepository(db, appLogger)
	debtRepo := repository.NewDebtRepository(db, appLogger)
	recurringRepo := repository.NewRecurringExpenseRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	if existing, err := userRepo.GetByEmail(ctx, demoEmail); err == nil && existing != nil {
		appLogger.Info("Demo user already exists, nothing to do", zap.String("email", demoEmail))
		return
	} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		appLogger.Fatal("Failed to check demo user", zap.Error(err))
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	hashed, err := auth.HashPassword(demoPassword)
	if err != nil {
		appLogger.Fatal("Failed to hash demo password", zap.Error(err))
	}

	user := &models.User{
		ID:        uuid.New(),
		Username:  demoUsername,
		Email:     demoEmail,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		appLogger.Fatal("Failed to create demo user", zap.Error(err))
	}

	// Categories
	salary := &models.Category{
		ID: uuid.New(), UserID: user.ID,
		Name: "Salary", Type: models.CategoryTypeIncome, Color: "#4C9F70",
		CreatedAt: now, UpdatedAt: now,
	}
	groceries := &models.Category{
		ID: uuid.New(), UserID: user.ID,
		Name: "Groceries", Type: models.CategoryTypeExpense, Color: "#E07A5F",
		CreatedAt: now, UpdatedAt: now,
	}
	housing := &models.Category{
		ID: uuid.New(), UserID: user.ID,
		Name: "Housing", Type: models.CategoryTypeExpense, Color: "#3D405B",
		CreatedAt: now, UpdatedAt: now,
	}
	entertainment := &models.Category{
		ID: uuid.New(), UserID: user.ID,
		Name: "Entertainment", Type: models.CategoryTypeExpense, Color: "#F2CC8F",
		CreatedAt: now, UpdatedAt: now,
	}
	for _, cat := range []*models.Category{salary, groceries, housing, entertainment} {
		if err := categoryRepo.Create(ctx, cat); err != nil {
			appLogger.Fatal("Failed to create category", zap.String("name", cat.Name), zap.Error(err))
		}
	}

	// Accounts
	card := &models.Account{
		ID: uuid.New(), UserID: user.ID,
		Name: "Main card", Type: models.AccountTypeDebit,
		Balance: money.FromCents(50_000_00), Color: "#97A97C", IsActive: true,
		CreatedAt: now, UpdatedAt: now,
	}
	cash := &models.Account{
		ID: uuid.New(), UserID: user.ID,
		Name: "Wallet", Type: models.AccountTypeCash,
		Balance: money.FromCents(3_000_00), Color: "#BC6C25", IsActive: true,
		CreatedAt: now, UpdatedAt: now,
	}
	for _, acc := range []*models.Account{card, cash} {
		if err := accountRepo.Create(ctx, acc); err != nil {
			appLogger.Fatal("Failed to create account", zap.String("name", acc.Name), zap.Error(err))
		}
	}

	// A month of transactions
	type seedTxn struct {
		account  *models.Account
		category *models.Category
		txnType  models.TransactionType
		amount   money.Money
		day      int
		desc     string
		method   models.PaymentMethod
	}
	txns := []seedTxn{
		{card, salary, models.TransactionTypeIncome, money.FromCents(120_000_00), 5, "Monthly salary", models.PaymentMethodTransfer},
		{card, housing, models.TransactionTypeExpense, money.FromCents(35_000_00), 6, "Rent", models.PaymentMethodTransfer},
		{card, groceries, models.TransactionTypeExpense, money.FromCents(4_350_50), 7, "Supermarket", models.PaymentMethodCard},
		{cash, groceries, models.TransactionTypeExpense, money.FromCents(1_200_00), 9, "Farmers market", models.PaymentMethodCash},
		{card, entertainment, models.TransactionTypeExpense, money.FromCents(2_500_00), 12, "Cinema and dinner", models.PaymentMethodCard},
		{card, groceries, models.TransactionTypeExpense, money.FromCents(5_780_25), 15, "Weekly groceries", models.PaymentMethodCard},
		{cash, entertainment, models.TransactionTypeExpense, money.FromCents(800_00), 18, "Coffee with friends", models.PaymentMethodCash},
	}
	for _, st := range txns {
		desc := st.desc
		txn := &models.Transaction{
			ID:            uuid.New(),
			UserID:        user.ID,
			AccountID:     &st.account.ID,
			CategoryID:    &st.category.ID,
			Type:          st.txnType,
			Amount:        st.amount,
			Date:          monthStart.AddDate(0, 0, st.day-1),
			Description:   &desc,
			PaymentMethod: st.method,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := txRepo.Create(ctx, txn); err != nil {
			appLogger.Fatal("Failed to create transaction", zap.String("description", st.desc), zap.Error(err))
		}
	}

	// Savings goal
	vacationDate := monthStart.AddDate(0, 6, 0)
	goal := &models.SavingsGoal{
		ID: uuid.New(), UserID: user.ID,
		Name:          "Vacation",
		TargetAmount:  money.FromCents(150_000_00),
		CurrentAmount: money.FromCents(42_000_00),
		TargetDate:    &vacationDate,
		Color:         "#FFB84C",
		CreatedAt:     now, UpdatedAt: now,
	}
	if err := goalRepo.Create(ctx, goal); err != nil {
		appLogger.Fatal("Failed to create savings goal", zap.Error(err))
	}

	// Debt
	debtDue := monthStart.AddDate(0, 2, 0)
	debtNote := "Lent for laptop repair"
	debt := &models.Debt{
		ID: uuid.New(), UserID: user.ID,
		Name:            "Alex",
		Description:     &debtNote,
		Type:            models.DebtTypeOwedToMe,
		TotalAmount:     money.FromCents(10_000_00),
		RemainingAmount: money.FromCents(6_000_00),
		DueDate:         &debtDue,
		CreatedAt:       now, UpdatedAt: now,
	}
	if err := debtRepo.Create(ctx, debt); err != nil {
		appLogger.Fatal("Failed to create debt", zap.Error(err))
	}

	// Recurring expenses
	recurring := []*models.RecurringExpense{
		{
			ID: uuid.New(), UserID: user.ID,
			Name: "Rent", Amount: money.FromCents(35_000_00),
			CategoryID: &housing.ID, AccountID: &card.ID,
			DueDay: 5, IsActive: true,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New(), UserID: user.ID,
			Name: "Music streaming", Amount: money.FromCents(299_00),
			CategoryID: &entertainment.ID, AccountID: &card.ID,
			DueDay: 20, IsActive: true,
			CreatedAt: now, UpdatedAt: now,
		},
	}
	for _, re := range recurring {
		if err := recurringRepo.Create(ctx, re); err != nil {
			appLogger.Fatal("Failed to create recurring expense", zap.String("name", re.Name), zap.Error(err))
		}
	}

	appLogger.Info("Database seeding completed successfully!",
		zap.String("email", demoEmail),
		zap.String("password", demoPassword),
	)
}
