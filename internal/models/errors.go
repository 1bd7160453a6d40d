package models

import "errors"

// Domain-specific errors for issue operations
var (
	// ErrInvalidIssueID indicates an empty or malformed issue ID
	ErrInvalidIssueID = errors.New("invalid issue ID")

	// ErrEmptyTitle indicates an issue title was empty
	ErrEmptyTitle = errors.New("issue title cannot be empty")

	// ErrTitleTooLong indicates an issue title exceeded MaxTitleLength
	ErrTitleTooLong = errors.New("issue title exceeds maximum length")

	// ErrInvalidStatus indicates an unknown status value
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidType indicates an unknown issue type value
	ErrInvalidType = errors.New("invalid issue type")

	// ErrInvalidPriority indicates a priority outside the 0-4 range
	ErrInvalidPriority = errors.New("priority must be between 0 and 4")

	// ErrIssueNotFound indicates the requested issue does not exist
	ErrIssueNotFound = errors.New("issue not found")

	// ErrDependencyExists indicates the dependency edge is already present
	ErrDependencyExists = errors.New("dependency already exists")

	// ErrSelfDependency indicates an issue was asked to block itself
	ErrSelfDependency = errors.New("issue cannot depend on itself")
)
