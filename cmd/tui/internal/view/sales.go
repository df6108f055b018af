package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/sale"
)

type salesState int

const (
	salesStateBrowse salesState = iota
	salesStateRecord
)

// SalesModel lists recorded flat sales and records new ones. The total price
// is derived server-side; the form only takes the components.
type SalesModel struct {
	CommonModel
	saleService *sale.Service

	state   salesState
	table   table.Model
	sales   []*sale.Sale
	form    *huh.Form
	loading bool
	err     error
	status  string

	// Form bindings, parsed on submit.
	formProjectID   string
	formFlatID      string
	formCustomerID  string
	formBasePrice   string
	formParking     string
	formUtility     string
	formDownpayment string
	formInstallment string
	formDate        string
}

func NewSalesModel(saleSvc *sale.Service) SalesModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Flat", Width: 10},
		{Title: "Base", Width: 14},
		{Title: "Total", Width: 14},
		{Title: "Downpayment", Width: 14},
		{Title: "Installment", Width: 14},
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

	return SalesModel{
		saleService: saleSvc,
		table:       t,
		loading:     true,
	}
}

func (m SalesModel) Title() string { return "Sales" }
func (m SalesModel) ShortHelp() string {
	if m.state == salesStateRecord {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | n: new sale | r: refresh"
}

func (m SalesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m SalesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case salesLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.sales = msg.sales
		m.refreshTable()
		return m, nil

	case salesSaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Sale recorded, total %s", FormatTaka(msg.total))
		}
		m.state = salesStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case salesStateBrowse:
		return m.updateBrowse(msg)
	case salesStateRecord:
		return m.updateRecord(msg)
	}

	return m, nil
}

func (m SalesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "n":
			return m.enterRecordMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m SalesModel) enterRecordMode() (tea.Model, tea.Cmd) {
	m.formProjectID = ""
	m.formFlatID = ""
	m.formCustomerID = ""
	m.formBasePrice = ""
	m.formParking = "0"
	m.formUtility = "0"
	m.formDownpayment = "0"
	m.formInstallment = "0"
	m.formDate = FormatDate(time.Now())

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("project_id").Title("Project ID").Value(&m.formProjectID).Validate(validUUID),
			huh.NewInput().Key("flat_id").Title("Flat ID").Value(&m.formFlatID).Validate(validUUID),
			huh.NewInput().Key("customer_id").Title("Customer ID").Value(&m.formCustomerID).Validate(validUUID),
			huh.NewInput().Key("base_price").Title("Base Price (Taka)").Value(&m.formBasePrice).Validate(validTaka),
			huh.NewInput().Key("parking").Title("Parking Charge").Value(&m.formParking).Validate(validTaka),
			huh.NewInput().Key("utility").Title("Utility Charge").Value(&m.formUtility).Validate(validTaka),
			huh.NewInput().Key("downpayment").Title("Downpayment").Value(&m.formDownpayment).Validate(validTaka),
			huh.NewInput().Key("installment").Title("Monthly Installment").Value(&m.formInstallment).Validate(validTaka),
			huh.NewInput().Key("date").Title("Sale Date").Placeholder("YYYY-MM-DD").Value(&m.formDate),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = salesStateRecord
	m.table.Blur()
	return m, m.form.Init()
}

func (m SalesModel) updateRecord(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = salesStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m SalesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading sales...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.state == salesStateRecord && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(54).
			Render("Record Sale\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *SalesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.sales))
	for _, s := range m.sales {
		rows = append(rows, table.Row{
			FormatDate(s.SaleDate),
			shortID(s.FlatID),
			FormatTaka(s.BasePrice),
			FormatTaka(s.TotalPrice),
			FormatTaka(s.Downpayment),
			FormatTaka(s.MonthlyInstallment),
		})
	}
	m.table.SetRows(rows)
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

func validUUID(s string) error {
	if _, err := uuid.Parse(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("not a valid id")
	}
	return nil
}

func validTaka(s string) error {
	if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
		return fmt.Errorf("whole Taka amount required")
	}
	return nil
}

func parseTakaField(s string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}

// Messages

type salesLoadMsg struct {
	sales []*sale.Sale
	err   error
}

func (m SalesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		sales, err := m.saleService.List(ctx, sale.ListFilter{})
		return salesLoadMsg{sales: sales, err: err}
	}
}

type salesSaveMsg struct {
	total int64
	err   error
}

func (m SalesModel) saveCmd() tea.Cmd {
	projectID, _ := uuid.Parse(strings.TrimSpace(m.formProjectID))
	flatID, _ := uuid.Parse(strings.TrimSpace(m.formFlatID))
	customerID, _ := uuid.Parse(strings.TrimSpace(m.formCustomerID))

	saleDate, err := time.Parse(time.DateOnly, strings.TrimSpace(m.formDate))
	if err != nil {
		saleDate = time.Now()
	}

	params := sale.CreateParams{
		ProjectID:          projectID,
		FlatID:             flatID,
		CustomerID:         customerID,
		BasePrice:          parseTakaField(m.formBasePrice),
		ParkingCharge:      parseTakaField(m.formParking),
		UtilityCharge:      parseTakaField(m.formUtility),
		Downpayment:        parseTakaField(m.formDownpayment),
		MonthlyInstallment: parseTakaField(m.formInstallment),
		SaleDate:           saleDate,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		s, err := m.saleService.Create(ctx, params)
		if err != nil {
			return salesSaveMsg{err: err}
		}

		return salesSaveMsg{total: s.TotalPrice}
	}
}
