package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rhasan/estatedesk/internal/expense"
)

type expensesState int

const (
	expensesStateBrowse expensesState = iota
	expensesStatePay
)

// ExpensesModel lists vendor expenses and takes payments against them. A
// payment settles through the reconciler, so the row's paid amount and status
// refresh together.
type ExpensesModel struct {
	CommonModel
	expenseService *expense.Service

	state    expensesState
	table    table.Model
	expenses []*expense.Expense
	form     *huh.Form

	statusFilterIdx int
	filter          expense.ListFilter

	loading bool
	err     error
	status  string

	formAmount    string
	formMethod    string
	formReference string
}

func NewExpensesModel(expenseSvc *expense.Service) ExpensesModel {
	columns := []table.Column{
		{Title: "Expense No", Width: 22},
		{Title: "Vendor", Width: 20},
		{Title: "Item", Width: 16},
		{Title: "Price", Width: 14},
		{Title: "Paid", Width: 14},
		{Title: "Status", Width: 15},
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

	return ExpensesModel{
		expenseService: expenseSvc,
		table:          t,
		loading:        true,
	}
}

func (m ExpensesModel) Title() string { return "Expenses" }
func (m ExpensesModel) ShortHelp() string {
	if m.state == expensesStatePay {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | p: pay | s: status filter | r: refresh"
}

func (m ExpensesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ExpensesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case expensesLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.expenses = msg.expenses
		m.refreshTable()
		return m, nil

	case expensesPayMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Payment failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Paid %s against %s", FormatTaka(msg.amount), msg.expenseNo)
		}
		m.state = expensesStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case expensesStateBrowse:
		return m.updateBrowse(msg)
	case expensesStatePay:
		return m.updatePay(msg)
	}

	return m, nil
}

func (m ExpensesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "p":
			return m.enterPayMode()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % 4
			m.applyFilter()
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ExpensesModel) applyFilter() {
	switch m.statusFilterIdx {
	case 1:
		m.filter.Status = new(expense.StatusUnpaid)
	case 2:
		m.filter.Status = new(expense.StatusPartiallyPaid)
	case 3:
		m.filter.Status = new(expense.StatusPaid)
	default:
		m.filter.Status = nil
	}
}

func (m ExpensesModel) enterPayMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.expenses) {
		return m, nil
	}

	e := m.expenses[idx]
	if e.Status == expense.StatusPaid {
		m.status = fmt.Sprintf("%s is already settled", e.ExpenseNo)
		return m, nil
	}

	m.formAmount = ""
	m.formMethod = "Bank Transfer"
	m.formReference = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title(fmt.Sprintf("Amount (due %s)", FormatTaka(e.Remaining()))).
				Value(&m.formAmount).
				Validate(validTaka),

			huh.NewInput().Key("method").Title("Payment Method").Value(&m.formMethod),
			huh.NewInput().Key("reference").Title("Reference").Value(&m.formReference),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = expensesStatePay
	m.table.Blur()
	return m, m.form.Init()
}

func (m ExpensesModel) updatePay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = expensesStateBrowse
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

	return m, m.payCmd()
}

func (m ExpensesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading expenses...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	statusLabels := []string{"All", "Unpaid", "Partially Paid", "Paid"}
	header := fmt.Sprintf("Filter: [s] Status: %s", activeStyle(statusLabels[m.statusFilterIdx]))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == expensesStatePay && m.form != nil {
		idx := m.table.Cursor()
		label := ""
		if idx >= 0 && idx < len(m.expenses) {
			label = m.expenses[idx].ExpenseNo
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("Make Payment\n\nExpense: %s\n\n%s", label, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *ExpensesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.expenses))
	for _, e := range m.expenses {
		rows = append(rows, table.Row{
			e.ExpenseNo,
			e.VendorName,
			e.ItemName,
			FormatTaka(e.Price),
			FormatTaka(e.PaidAmount),
			string(e.Status),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type expensesLoadMsg struct {
	expenses []*expense.Expense
	err      error
}

func (m ExpensesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		expenses, err := m.expenseService.List(ctx, m.filter)
		return expensesLoadMsg{expenses: expenses, err: err}
	}
}

type expensesPayMsg struct {
	expenseNo string
	amount    int64
	err       error
}

func (m ExpensesModel) payCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.expenses) {
		return nil
	}

	e := m.expenses[idx]
	params := expense.PaymentParams{
		ExpenseNo:     e.ExpenseNo,
		Amount:        parseTakaField(m.formAmount),
		Date:          time.Now(),
		PaymentMethod: strings.TrimSpace(m.formMethod),
		Reference:     strings.TrimSpace(m.formReference),
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.expenseService.MakePayment(ctx, params); err != nil {
			return expensesPayMsg{expenseNo: e.ExpenseNo, err: err}
		}

		return expensesPayMsg{expenseNo: e.ExpenseNo, amount: params.Amount}
	}
}
