// Package idgen provides short, URL-safe unique issue ID generation backed
// by nanoid.
package idgen

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Prefix is prepended to every generated issue ID
const Prefix = "tb-"

// Alphabet is the character set for the random portion of the ID
const Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Length is the number of random characters generated (excluding the prefix)
const Length = 8

// NewIssueID returns a new unique issue ID
func NewIssueID() (string, error) {
	id, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return Prefix + id, nil
}
