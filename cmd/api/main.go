package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Shr1ramN/expense-calculator/docs"
	"github.com/Shr1ramN/expense-calculator/internal/config"
	"github.com/Shr1ramN/expense-calculator/internal/database"
	"github.com/Shr1ramN/expense-calculator/internal/expense"
	expensesplit "github.com/Shr1ramN/expense-calculator/internal/expense/split"
	"github.com/Shr1ramN/expense-calculator/internal/ledger"
	"github.com/Shr1ramN/expense-calculator/internal/user"
	"github.com/Shr1ramN/expense-calculator/pkg/logging"
)

// @title        Expense Calculator API
// @version      1.0
// @description  Expense-sharing ledger: record shared expenses, query who owes whom, download a settlement report.
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	logging.Setup()

	cfg := config.Load()

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("connected to database")

	// Split strategy factory, shared by expense creation and aggregation
	splitFactory := expensesplit.NewFactory()

	// User feature
	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	// Expense feature (with split factory injected)
	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo, userRepo, splitFactory)
	expenseHandler := expense.NewHandler(expenseService)

	// Ledger feature: balances and settlement report
	ledgerService := ledger.NewService(expenseRepo, userRepo)
	ledgerHandler := ledger.NewHandler(ledgerService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/users", userHandler.Routes())
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/balances", ledgerHandler.BalanceRoutes())
		r.Mount("/report", ledgerHandler.ReportRoutes())
	})

	addr := ":" + cfg.Port
	slog.Info("server starting", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
