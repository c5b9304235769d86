package api

import (
	"kopilka/docs"
	"kopilka/internal/api/handlers"
	"kopilka/pkg/auth"
	"kopilka/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth             *handlers.AuthHandler
	Category         *handlers.CategoryHandler
	Account          *handlers.AccountHandler
	Transaction      *handlers.TransactionHandler
	SavingsGoal      *handlers.SavingsGoalHandler
	Debt             *handlers.DebtHandler
	RecurringExpense *handlers.RecurringExpenseHandler
	Health           *handlers.HealthHandler
}

func SetupRouter(h Handlers, jwtManager *auth.JWTManager, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger; importing docs registers the spec through init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/healthz", h.Health.Check)

	// Auth routes (public)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	categories := protected.Group("/categories")
	categories.Get("", h.Category.List)
	categories.Post("", h.Category.Create)
	categories.Get("/:id", h.Category.Get)
	categories.Put("/:id", h.Category.Update)
	categories.Delete("/:id", h.Category.Delete)

	accounts := protected.Group("/accounts")
	accounts.Get("", h.Account.List)
	accounts.Post("", h.Account.Create)
	accounts.Get("/:id", h.Account.Get)
	accounts.Put("/:id", h.Account.Update)
	accounts.Delete("/:id", h.Account.Delete)

	transactions := protected.Group("/transactions")
	transactions.Get("", h.Transaction.List)
	transactions.Post("", h.Transaction.Create)
	// Fixed paths before /:id so they are not swallowed by the param route.
	transactions.Get("/summary", h.Transaction.Summary)
	transactions.Post("/transfer", h.Transaction.Transfer)
	transactions.Get("/:id", h.Transaction.Get)
	transactions.Put("/:id", h.Transaction.Update)
	transactions.Delete("/:id", h.Transaction.Delete)

	goals := protected.Group("/savings-goals")
	goals.Get("", h.SavingsGoal.List)
	goals.Post("", h.SavingsGoal.Create)
	goals.Get("/:id", h.SavingsGoal.Get)
	goals.Put("/:id", h.SavingsGoal.Update)
	goals.Delete("/:id", h.SavingsGoal.Delete)
	goals.Post("/:id/add-funds", h.SavingsGoal.AddFunds)

	debts := protected.Group("/debts")
	debts.Get("", h.Debt.List)
	debts.Post("", h.Debt.Create)
	debts.Get("/:id", h.Debt.Get)
	debts.Put("/:id", h.Debt.Update)
	debts.Delete("/:id", h.Debt.Delete)

	recurring := protected.Group("/recurring-expenses")
	recurring.Get("", h.RecurringExpense.List)
	recurring.Post("", h.RecurringExpense.Create)
	recurring.Get("/:id", h.RecurringExpense.Get)
	recurring.Put("/:id", h.RecurringExpense.Update)
	recurring.Delete("/:id", h.RecurringExpense.Delete)
	recurring.Post("/:id/pay", h.RecurringExpense.Pay)

	return app
}
