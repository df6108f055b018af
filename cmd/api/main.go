package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/rhasan/estatedesk/internal/auth"
	"github.com/rhasan/estatedesk/internal/config"
	"github.com/rhasan/estatedesk/internal/customer"
	customerStore "github.com/rhasan/estatedesk/internal/customer/store"
	"github.com/rhasan/estatedesk/internal/database"
	"github.com/rhasan/estatedesk/internal/expense"
	expenseStore "github.com/rhasan/estatedesk/internal/expense/store"
	estateHttp "github.com/rhasan/estatedesk/internal/http"
	authnHandler "github.com/rhasan/estatedesk/internal/http/authn"
	customerHandler "github.com/rhasan/estatedesk/internal/http/customer"
	expenseHandler "github.com/rhasan/estatedesk/internal/http/expense"
	importHandler "github.com/rhasan/estatedesk/internal/http/importcsv"
	ledgerHandler "github.com/rhasan/estatedesk/internal/http/ledger"
	opcostHandler "github.com/rhasan/estatedesk/internal/http/opcost"
	projectHandler "github.com/rhasan/estatedesk/internal/http/project"
	reportHandler "github.com/rhasan/estatedesk/internal/http/report"
	saleHandler "github.com/rhasan/estatedesk/internal/http/sale"
	vendorHandler "github.com/rhasan/estatedesk/internal/http/vendors"
	"github.com/rhasan/estatedesk/internal/importer"
	"github.com/rhasan/estatedesk/internal/ledger"
	ledgerStore "github.com/rhasan/estatedesk/internal/ledger/store"
	"github.com/rhasan/estatedesk/internal/logging"
	"github.com/rhasan/estatedesk/internal/opcost"
	opcostStore "github.com/rhasan/estatedesk/internal/opcost/store"
	"github.com/rhasan/estatedesk/internal/project"
	projectStore "github.com/rhasan/estatedesk/internal/project/store"
	"github.com/rhasan/estatedesk/internal/report"
	reportStore "github.com/rhasan/estatedesk/internal/report/store"
	"github.com/rhasan/estatedesk/internal/sale"
	saleStore "github.com/rhasan/estatedesk/internal/sale/store"
	"github.com/rhasan/estatedesk/internal/vendors"
	vendorStore "github.com/rhasan/estatedesk/internal/vendors/store"
)

func main() {
	_ = godotenv.Load()

	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	authMgr := auth.NewManager(cfg.Auth.Secret, cfg.Auth.TokenTTL, cfg.Auth.AdminEmail, cfg.Auth.AdminPwdHash)

	var (
		projectService  = project.NewService(projectStore.New(db))
		customerService = customer.NewService(customerStore.New(db))
		vendorService   = vendor.NewService(vendorStore.New(db))
		saleService     = sale.NewService(saleStore.New(db))
		ledgerService   = ledger.NewService(ledgerStore.New(db))
		expenseService  = expense.NewService(expenseStore.New(db))
		opcostService   = opcost.NewService(opcostStore.New(db))
		reportService   = report.NewService(reportStore.New(db))
		importService   = importer.NewService()
	)

	handlers := estateHttp.Handlers{
		Auth:      authnHandler.NewHandler(authMgr),
		Projects:  projectHandler.NewHandler(projectService),
		Customers: customerHandler.NewHandler(customerService),
		Vendors:   vendorHandler.NewHandler(vendorService),
		Sales:     saleHandler.NewHandler(saleService),
		Expenses:  expenseHandler.NewHandler(expenseService),
		OpCosts:   opcostHandler.NewHandler(opcostService),
		Ledger:    ledgerHandler.NewHandler(ledgerService),
		Reports:   reportHandler.NewHandler(reportService),
		Import:    importHandler.NewHandler(importService, ledgerService),
	}

	router := estateHttp.New(authMgr, handlers, cfg.CORS.Origins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
