package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/rhasan/estatedesk/cmd/tui/internal/view"
	"github.com/rhasan/estatedesk/internal/config"
	"github.com/rhasan/estatedesk/internal/database"
	"github.com/rhasan/estatedesk/internal/expense"
	expenseStore "github.com/rhasan/estatedesk/internal/expense/store"
	"github.com/rhasan/estatedesk/internal/ledger"
	ledgerStore "github.com/rhasan/estatedesk/internal/ledger/store"
	"github.com/rhasan/estatedesk/internal/report"
	reportStore "github.com/rhasan/estatedesk/internal/report/store"
	"github.com/rhasan/estatedesk/internal/sale"
	saleStore "github.com/rhasan/estatedesk/internal/sale/store"
)

type model struct {
	saleService    *sale.Service
	expenseService *expense.Service
	ledgerService  *ledger.Service
	reportService  *report.Service

	currentView View

	dashboardView   view.DashboardModel
	salesView       view.SalesModel
	expensesView    view.ExpensesModel
	collectionsView view.CollectionsModel
	exportView      view.ExportModel
}

type View int

const (
	ViewMenu        View = 0
	ViewDashboard   View = 1
	ViewSales       View = 2
	ViewExpenses    View = 3
	ViewCollections View = 4
	ViewExport      View = 5
)

func initialModel() model {
	_ = godotenv.Load()

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

	saleSvc := sale.NewService(saleStore.New(db))
	expenseSvc := expense.NewService(expenseStore.New(db))
	ledgerSvc := ledger.NewService(ledgerStore.New(db))
	reportSvc := report.NewService(reportStore.New(db))

	return model{
		saleService:     saleSvc,
		expenseService:  expenseSvc,
		ledgerService:   ledgerSvc,
		reportService:   reportSvc,
		currentView:     ViewMenu,
		dashboardView:   view.NewDashboardModel(reportSvc),
		salesView:       view.NewSalesModel(saleSvc),
		expensesView:    view.NewExpensesModel(expenseSvc),
		collectionsView: view.NewCollectionsModel(ledgerSvc),
		exportView:      view.NewExportModel(reportSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.reportService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewSales
				m.salesView = view.NewSalesModel(m.saleService)

				return m, m.salesView.Init()
			case "3":
				m.currentView = ViewExpenses
				m.expensesView = view.NewExpensesModel(m.expenseService)

				return m, m.expensesView.Init()
			case "4":
				m.currentView = ViewCollections
				m.collectionsView = view.NewCollectionsModel(m.ledgerService)

				return m, m.collectionsView.Init()
			case "5":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.reportService)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewSales:
		var newModel tea.Model
		newModel, cmd = m.salesView.Update(msg)
		m.salesView = newModel.(view.SalesModel)
	case ViewExpenses:
		var newModel tea.Model
		newModel, cmd = m.expensesView.Update(msg)
		m.expensesView = newModel.(view.ExpensesModel)
	case ViewCollections:
		var newModel tea.Model
		newModel, cmd = m.collectionsView.Update(msg)
		m.collectionsView = newModel.(view.CollectionsModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Estatedesk TUI\n\n" +
				"1. Dashboard\n" +
				"2. Sales\n" +
				"3. Expenses\n" +
				"4. Collections\n" +
				"5. Export Registers\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewSales:
		return m.salesView.View()
	case ViewExpenses:
		return m.expensesView.View()
	case ViewCollections:
		return m.collectionsView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
