package service

import (
	"time"

	apperrors "football-roster-backend/internal/errors"
)

// dateLayout is the wire format for all calendar dates in the API.
const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD string, reporting the offending field on
// failure so the handler can surface a 400.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, "invalid date format, expected YYYY-MM-DD")
	}
	return t, nil
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
