// Package forms builds the huh forms used by the TUI.
package forms

import (
	"strings"

	"charm.land/huh/v2"

	"github.com/jmrivas/tablero/internal/models"
)

// IssueData holds the field values bound to the issue creation form.
type IssueData struct {
	Title       string
	Description string
	IssueType   string
	Assignee    string
	Priority    int
	Labels      string
}

// ParsedLabels splits the comma-separated labels field into clean label
// names, dropping empties.
func (d *IssueData) ParsedLabels() []string {
	if strings.TrimSpace(d.Labels) == "" {
		return nil
	}

	parts := strings.Split(d.Labels, ",")
	labels := make([]string, 0, len(parts))
	for _, part := range parts {
		if label := strings.TrimSpace(part); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

func typeOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Task", string(models.TypeTask)),
		huh.NewOption("Bug", string(models.TypeBug)),
		huh.NewOption("Feature", string(models.TypeFeature)),
		huh.NewOption("Chore", string(models.TypeChore)),
		huh.NewOption("Epic", string(models.TypeEpic)),
	}
}

func priorityOptions() []huh.Option[int] {
	return []huh.Option[int]{
		huh.NewOption("P0 - Critical", 0),
		huh.NewOption("P1 - High", 1),
		huh.NewOption("P2 - Normal", 2),
		huh.NewOption("P3 - Low", 3),
		huh.NewOption("P4 - Someday", 4),
	}
}

// CreateIssueForm creates a huh form for the quick-create issue dialog.
// No confirmation field is used - the form saves on completion.
func CreateIssueForm(data *IssueData) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter issue title...").
			CharLimit(models.MaxTitleLength).
			Value(&data.Title),
		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown supported...").
			CharLimit(4000).
			Value(&data.Description),
		huh.NewSelect[string]().
			Key("type").
			Title("Type").
			Options(typeOptions()...).
			Value(&data.IssueType),
		huh.NewSelect[int]().
			Key("priority").
			Title("Priority").
			Options(priorityOptions()...).
			Value(&data.Priority),
		huh.NewInput().
			Key("assignee").
			Title("Assignee").
			Placeholder("Optional...").
			Value(&data.Assignee),
		huh.NewInput().
			Key("labels").
			Title("Labels").
			Placeholder("Comma separated, optional...").
			Value(&data.Labels),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(keyMapWithShiftEnter())
}
