package sqlite

import (
	"fmt"
	"time"
)

// parseDate parses a stored YYYY-MM-DD date.
// Returns an error naming the field if parsing fails.
func parseDate(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}
