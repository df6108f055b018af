package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/ledger"
)

type collectionsState int

const (
	collectionsStateBrowse collectionsState = iota
	collectionsStateRecord
)

// CollectionsModel lists customer inflows and records new ones.
type CollectionsModel struct {
	CommonModel
	ledgerService *ledger.Service

	state   collectionsState
	table   table.Model
	inflows []*ledger.Inflow
	form    *huh.Form

	dateFilterIdx int
	filter        ledger.InflowFilter

	loading bool
	err     error
	status  string

	formProjectID  string
	formFlatID     string
	formCustomerID string
	formAmount     string
	formType       string
	formMethod     string
	formReceiptNo  string
}

func NewCollectionsModel(ledgerSvc *ledger.Service) CollectionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Flat", Width: 10},
		{Title: "Type", Width: 12},
		{Title: "Method", Width: 14},
		{Title: "Receipt", Width: 14},
		{Title: "Amount", Width: 14},
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

	return CollectionsModel{
		ledgerService: ledgerSvc,
		table:         t,
		loading:       true,
	}
}

func (m CollectionsModel) Title() string { return "Collections" }
func (m CollectionsModel) ShortHelp() string {
	if m.state == collectionsStateRecord {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | n: new collection | d: date filter | r: refresh"
}

func (m CollectionsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m CollectionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case collectionsLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.inflows = msg.inflows
		m.refreshTable()
		return m, nil

	case collectionsSaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = "Collection recorded"
		}
		m.state = collectionsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case collectionsStateBrowse:
		return m.updateBrowse(msg)
	case collectionsStateRecord:
		return m.updateRecord(msg)
	}

	return m, nil
}

func (m CollectionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "n":
			return m.enterRecordMode()
		case "d":
			m.dateFilterIdx = (m.dateFilterIdx + 1) % 3
			m.applyFilter()
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *CollectionsModel) applyFilter() {
	now := time.Now()
	switch m.dateFilterIdx {
	case 1:
		s := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		e := s.AddDate(0, 1, 0).Add(-time.Nanosecond)
		m.filter.StartDate = &s
		m.filter.EndDate = &e
	case 2:
		s := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		e := s.AddDate(0, 1, 0).Add(-time.Nanosecond)
		m.filter.StartDate = &s
		m.filter.EndDate = &e
	default:
		m.filter.StartDate = nil
		m.filter.EndDate = nil
	}
}

func (m CollectionsModel) enterRecordMode() (tea.Model, tea.Cmd) {
	m.formProjectID = ""
	m.formFlatID = ""
	m.formCustomerID = ""
	m.formAmount = ""
	m.formType = string(ledger.PaymentTypeInstallment)
	m.formMethod = "Bank Transfer"
	m.formReceiptNo = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("project_id").Title("Project ID").Value(&m.formProjectID).Validate(validUUID),
			huh.NewInput().Key("flat_id").Title("Flat ID").Value(&m.formFlatID).Validate(validUUID),
			huh.NewInput().Key("customer_id").Title("Customer ID").Value(&m.formCustomerID).Validate(validUUID),
			huh.NewInput().Key("amount").Title("Amount (Taka)").Value(&m.formAmount).Validate(validTaka),

			huh.NewSelect[string]().
				Key("payment_type").
				Title("Payment Type").
				Options(
					huh.NewOption("Installment", string(ledger.PaymentTypeInstallment)),
					huh.NewOption("Booking", string(ledger.PaymentTypeBooking)),
				).
				Value(&m.formType),

			huh.NewInput().Key("method").Title("Payment Method").Value(&m.formMethod),
			huh.NewInput().Key("receipt_no").Title("Receipt No").Value(&m.formReceiptNo),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = collectionsStateRecord
	m.table.Blur()
	return m, m.form.Init()
}

func (m CollectionsModel) updateRecord(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = collectionsStateBrowse
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

func (m CollectionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading collections...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	dateLabels := []string{"All Time", "This Month", "Last Month"}
	header := fmt.Sprintf("Filter: [d] Date: %s", activeStyle(dateLabels[m.dateFilterIdx]))

	var total int64
	for _, in := range m.inflows {
		total += in.Amount
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		lipgloss.NewStyle().PaddingTop(1).Faint(true).Render("Total: "+FormatTaka(total)),
	)

	if m.state == collectionsStateRecord && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(54).
			Render("Record Collection\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *CollectionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.inflows))
	for _, in := range m.inflows {
		rows = append(rows, table.Row{
			FormatDate(in.Date),
			shortID(in.FlatID),
			string(in.PaymentType),
			in.PaymentMethod,
			in.ReceiptNo,
			FormatTaka(in.Amount),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type collectionsLoadMsg struct {
	inflows []*ledger.Inflow
	err     error
}

func (m CollectionsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		inflows, err := m.ledgerService.ListInflows(ctx, m.filter)
		return collectionsLoadMsg{inflows: inflows, err: err}
	}
}

type collectionsSaveMsg struct {
	err error
}

func (m CollectionsModel) saveCmd() tea.Cmd {
	projectID, _ := uuid.Parse(strings.TrimSpace(m.formProjectID))
	flatID, _ := uuid.Parse(strings.TrimSpace(m.formFlatID))
	customerID, _ := uuid.Parse(strings.TrimSpace(m.formCustomerID))

	params := ledger.InflowParams{
		ProjectID:     projectID,
		FlatID:        flatID,
		CustomerID:    customerID,
		Amount:        parseTakaField(m.formAmount),
		Date:          time.Now(),
		PaymentType:   ledger.PaymentType(m.formType),
		PaymentMethod: strings.TrimSpace(m.formMethod),
		ReceiptNo:     strings.TrimSpace(m.formReceiptNo),
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.ledgerService.RecordInflow(ctx, params); err != nil {
			return collectionsSaveMsg{err: err}
		}

		return collectionsSaveMsg{}
	}
}
