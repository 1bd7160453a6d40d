package components

const (
	// ColumnWidth is the content width of a board column
	ColumnWidth = 30

	// CardWidth is the content width of an issue card
	CardWidth = 26

	// CardHeight is the fixed height of an issue card: three content
	// lines plus the top and bottom border
	CardHeight = 5

	// cardTitleMaxLength is where card titles get truncated
	cardTitleMaxLength = 22
)
