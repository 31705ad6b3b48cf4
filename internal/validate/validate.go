// Package validate checks candidate parameter values against a regular expression.
package validate

import (
	"errors"
	"fmt"
	"regexp"
)

// DefaultPattern is used when the operator has not configured a pattern.
const DefaultPattern = "[a-zA-Z0-9_,-]{8,}"

// ErrInvalidPattern reports a configured pattern that does not compile.
var ErrInvalidPattern = errors.New("invalid regular expression")

// Result reports the outcome of validating a candidate value.
type Result struct {
	OK      bool
	Message string
}

// Candidate checks whether value fully matches pattern. On a non-match the
// result carries failedMessage if non-empty, otherwise a generic message
// naming the pattern. A pattern that does not compile is returned as an
// ErrInvalidPattern wrapping the parser diagnostic.
func Candidate(pattern, failedMessage, value string) (Result, error) {
	if _, err := regexp.Compile(pattern); err != nil {
		return Result{}, fmt.Errorf("%w [%s]: %v", ErrInvalidPattern, pattern, err)
	}

	// Anchor the pattern so the whole value must match, not a substring.
	full, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return Result{}, fmt.Errorf("%w [%s]: %v", ErrInvalidPattern, pattern, err)
	}

	if full.MatchString(value) {
		return Result{OK: true}, nil
	}

	if failedMessage != "" {
		return Result{Message: failedMessage}, nil
	}
	return Result{Message: "value does not match regular expression: " + pattern}, nil
}
