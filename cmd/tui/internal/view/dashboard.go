package view

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rhasan/estatedesk/internal/report"
)

// DashboardModel shows every project's position: inventory, sales value,
// collections and the expense ledger.
type DashboardModel struct {
	CommonModel
	reportService *report.Service

	table     table.Model
	summaries []*report.ProjectSummary
	loading   bool
	err       error
}

func NewDashboardModel(reportSvc *report.Service) DashboardModel {
	columns := []table.Column{
		{Title: "Project", Width: 22},
		{Title: "Status", Width: 10},
		{Title: "Flats", Width: 6},
		{Title: "Sold", Width: 6},
		{Title: "Sales Value", Width: 14},
		{Title: "Collected", Width: 14},
		{Title: "Spent", Width: 14},
		{Title: "Exp. Due", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return DashboardModel{
		reportService: reportSvc,
		table:         t,
		loading:       true,
	}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.summaries = msg.summaries
		m.refreshTable()
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	var totalSales, totalCollected, totalSpent int64
	for _, s := range m.summaries {
		totalSales += s.SalesValue
		totalCollected += s.Collected
		totalSpent += s.Spent
	}

	footer := fmt.Sprintf(
		"Total sales: %s | Collected: %s | Spent: %s",
		FormatTaka(totalSales), FormatTaka(totalCollected), FormatTaka(totalSpent),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			tableView,
			lipgloss.NewStyle().PaddingTop(1).Faint(true).Render(footer),
		),
	)
}

func (m *DashboardModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.summaries))
	for _, s := range m.summaries {
		rows = append(rows, table.Row{
			s.ProjectName,
			s.Status,
			strconv.Itoa(s.TotalFlats),
			strconv.Itoa(s.SoldFlats),
			FormatTaka(s.SalesValue),
			FormatTaka(s.Collected),
			FormatTaka(s.Spent),
			FormatTaka(s.ExpenseOutstanding),
		})
	}
	m.table.SetRows(rows)
}

type dashboardLoadMsg struct {
	summaries []*report.ProjectSummary
	err       error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		summaries, err := m.reportService.Dashboard(ctx)
		return dashboardLoadMsg{summaries: summaries, err: err}
	}
}
