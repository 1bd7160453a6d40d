package issue

import "errors"

// Issue service errors
var (
	// ErrEmptyLabel indicates a label operation with an empty label name
	ErrEmptyLabel = errors.New("label cannot be empty")
)
