// Package session runs one comparison query: it validates the selection,
// fetches or estimates every value, and assembles the Dataset handed to the
// chart, export and narration layers.
package session

import (
	"errors"
	"fmt"

	"indicomp/internal/models"
)

// Validation errors. They are returned before any fetch is attempted.
var (
	ErrNoEntities    = errors.New("no entities selected")
	ErrNoIndicators  = errors.New("no indicators selected")
	ErrMissingParent = errors.New("region scope requires a parent country")
)

// ErrNoData is returned by Run when every entity was skipped.
var ErrNoData = errors.New("no data returned for any selected entity")

// Validate checks that a selection can be queried.
func Validate(sel models.Selection) error {
	scope := sel.Scope()

	if scope.IsRegional() && scope.Parent == "" {
		return ErrMissingParent
	}

	if len(sel.Entities()) == 0 {
		return fmt.Errorf("%w: choose at least one of the %s", ErrNoEntities, scope.Plural())
	}

	if len(sel.Indicators()) == 0 {
		return ErrNoIndicators
	}

	return nil
}

// Prompt turns a validation error into the corrective message shown to the
// user. Unknown errors return their text unchanged.
func Prompt(err error, scope models.Scope) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingParent):
		return "Please choose the country whose states or provinces you want to compare."
	case errors.Is(err, ErrNoEntities):
		return fmt.Sprintf("Please select at least one of the %s to compare.", scope.Plural())
	case errors.Is(err, ErrNoIndicators):
		return "Please select at least one indicator to analyze."
	case errors.Is(err, ErrNoData):
		return fmt.Sprintf("No data could be retrieved for the selected %s. Try different selections.", scope.Plural())
	default:
		return err.Error()
	}
}

// IsValidation reports whether err is a selection problem the user can fix.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNoEntities) || errors.Is(err, ErrNoIndicators) || errors.Is(err, ErrMissingParent)
}
