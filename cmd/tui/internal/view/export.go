package view

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rhasan/estatedesk/internal/report"
)

type exportState int

const (
	exportStateForm exportState = iota
	exportStateExporting
	exportStateResult
)

// ExportModel writes one of the CSV registers to disk.
type ExportModel struct {
	CommonModel
	reportService *report.Service

	state   exportState
	err     error
	form    *huh.Form
	spinner spinner.Model

	register string
	path     string
	summary  string
}

func NewExportModel(reportSvc *report.Service) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := ExportModel{
		reportService: reportSvc,
		state:         exportStateForm,
		register:      "sales",
		path:          "./exports",
		spinner:       s,
	}
	m.form = m.buildForm()

	return m
}

func (m ExportModel) Title() string { return "Export Registers" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateResult:
		return "Esc: back to menu"
	case exportStateExporting:
		return "Exporting..."
	}
	return "Esc: back | Enter: confirm"
}

func (m ExportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case exportStateForm:
		return m.updateForm(msg)
	case exportStateExporting:
		return m.updateExporting(msg)
	case exportStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m ExportModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = exportStateExporting
	m.err = nil
	return m, tea.Batch(m.spinner.Tick, m.runExportCmd(m.register, m.path))
}

func (m ExportModel) updateExporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(exportResultMsg); ok {
		m.state = exportStateResult
		if result.err != nil {
			m.err = result.err
		}
		m.summary = result.body
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m ExportModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}
	return m, nil
}

func (m *ExportModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("register").
				Title("Register").
				Options(
					huh.NewOption("Sales", "sales"),
					huh.NewOption("Collections", "collections"),
					huh.NewOption("Payments", "payments"),
				).
				Value(&m.register),

			huh.NewInput().
				Key("path").
				Title("Output Path").
				Description("Directory will be created if it doesn't exist").
				Placeholder("./exports").
				Value(&m.path),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) View() string {
	switch m.state {
	case exportStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case exportStateExporting:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Writing %s register...", m.spinner.View(), m.register),
		)

	case exportStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ExportModel) viewResult() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)),
		)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Export Complete!")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			m.summary,
		),
	)
}

type exportResultMsg struct {
	body string
	err  error
}

func (m ExportModel) runExportCmd(register, path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := os.MkdirAll(path, 0o755); err != nil {
			return exportResultMsg{err: err}
		}

		filename := filepath.Join(path, fmt.Sprintf("%s-register-%s.csv", register, time.Now().Format("20060102")))

		f, err := os.Create(filename)
		if err != nil {
			return exportResultMsg{err: err}
		}
		defer f.Close()

		var count int
		switch register {
		case "sales":
			rows, err := m.reportService.SalesRegister(ctx)
			if err != nil {
				return exportResultMsg{err: err}
			}
			if err := report.WriteSalesRegister(f, rows); err != nil {
				return exportResultMsg{err: err}
			}
			count = len(rows)
		case "collections":
			rows, err := m.reportService.CollectionsRegister(ctx)
			if err != nil {
				return exportResultMsg{err: err}
			}
			if err := report.WriteCollectionsRegister(f, rows); err != nil {
				return exportResultMsg{err: err}
			}
			count = len(rows)
		case "payments":
			rows, err := m.reportService.PaymentsRegister(ctx)
			if err != nil {
				return exportResultMsg{err: err}
			}
			if err := report.WritePaymentsRegister(f, rows); err != nil {
				return exportResultMsg{err: err}
			}
			count = len(rows)
		default:
			return exportResultMsg{err: fmt.Errorf("unknown register %q", register)}
		}

		return exportResultMsg{body: fmt.Sprintf("Wrote %d rows to %s", count, filename)}
	}
}
