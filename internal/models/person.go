// ABOUTME: Person registry model and the Self sentinel.
// ABOUTME: People are explicit records; the Self profile always exists.
package models

import (
	"fmt"
	"strings"
)

// DefaultPerson is the sentinel profile that always exists, even in an
// empty database.
const DefaultPerson = "Self"

// ValidatePersonName checks a person name before it is written anywhere.
func ValidatePersonName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("person name is required")
	}
	return nil
}
