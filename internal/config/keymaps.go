package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Cards
	NewIssue    string `yaml:"new_issue"`
	ViewIssue   string `yaml:"view_issue"`
	DeleteIssue string `yaml:"delete_issue"`
	GrabCard    string `yaml:"grab_card"`
	DropCard    string `yaml:"drop_card"`
	CancelGrab  string `yaml:"cancel_grab"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`
	PrevLane   string `yaml:"prev_lane"`
	NextLane   string `yaml:"next_lane"`

	// Board
	CycleGrouping string `yaml:"cycle_grouping"`
	Filter        string `yaml:"filter"`
	Refresh       string `yaml:"refresh"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		NewIssue:    "a",
		ViewIssue:   " ",
		DeleteIssue: "d",
		GrabCard:    "g",
		DropCard:    "enter",
		CancelGrab:  "esc",

		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",
		PrevLane:   "{",
		NextLane:   "}",

		CycleGrouping: "s",
		Filter:        "/",
		Refresh:       "r",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.NewIssue == "" {
		k.NewIssue = defaults.NewIssue
	}
	if k.ViewIssue == "" {
		k.ViewIssue = defaults.ViewIssue
	}
	if k.DeleteIssue == "" {
		k.DeleteIssue = defaults.DeleteIssue
	}
	if k.GrabCard == "" {
		k.GrabCard = defaults.GrabCard
	}
	if k.DropCard == "" {
		k.DropCard = defaults.DropCard
	}
	if k.CancelGrab == "" {
		k.CancelGrab = defaults.CancelGrab
	}
	if k.PrevColumn == "" {
		k.PrevColumn = defaults.PrevColumn
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.PrevCard == "" {
		k.PrevCard = defaults.PrevCard
	}
	if k.NextCard == "" {
		k.NextCard = defaults.NextCard
	}
	if k.PrevLane == "" {
		k.PrevLane = defaults.PrevLane
	}
	if k.NextLane == "" {
		k.NextLane = defaults.NextLane
	}
	if k.CycleGrouping == "" {
		k.CycleGrouping = defaults.CycleGrouping
	}
	if k.Filter == "" {
		k.Filter = defaults.Filter
	}
	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
