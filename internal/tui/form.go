package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/jmrivas/tablero/internal/models"
	"github.com/jmrivas/tablero/internal/services/issue"
	"github.com/jmrivas/tablero/internal/tui/forms"
	"github.com/jmrivas/tablero/internal/tui/state"
)

// openIssueForm opens the quick-create dialog.
func (m Model) openIssueForm() (tea.Model, tea.Cmd) {
	m.formData = &forms.IssueData{
		IssueType: string(models.TypeTask),
		Priority:  2,
	}
	m.form = forms.CreateIssueForm(m.formData)
	m.UiState.SetMode(state.FormMode)
	return m, m.form.Init()
}

// updateForm feeds a message to the active form and handles completion.
// This is separated out because forms need ALL messages, not just KeyMsg.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		return m.closeForm()
	}

	updated, cmd := m.form.Update(msg)
	if form, ok := updated.(*huh.Form); ok {
		m.form = form
	}

	if m.form.State == huh.StateCompleted {
		return m.submitForm()
	}

	return m, cmd
}

// submitForm turns the form values into a create request.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	data := m.formData
	model, _ := m.closeForm()
	m = model.(Model)

	req := issue.CreateIssueRequest{
		Title:       data.Title,
		Description: data.Description,
		IssueType:   models.IssueType(data.IssueType),
		Assignee:    data.Assignee,
		Priority:    data.Priority,
		Labels:      data.ParsedLabels(),
	}
	return m, m.createIssue(req)
}

func (m Model) closeForm() (tea.Model, tea.Cmd) {
	m.form = nil
	m.formData = nil
	m.UiState.SetMode(state.NormalMode)
	return m, nil
}
