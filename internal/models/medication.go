// ABOUTME: Medication model for scheduled doses.
// ABOUTME: Records are append-only; only the taken flag is ever updated.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Medication represents one scheduled dose for a person.
// IDs are assigned by the store on insert.
type Medication struct {
	ID               int64   `json:"id" yaml:"id"`
	Person           string  `json:"person" yaml:"person"`
	Name             string  `json:"name" yaml:"name"`
	Date             string  `json:"date" yaml:"date"` // YYYY-MM-DD
	Time             string  `json:"time" yaml:"time"` // HH:MM
	Taken            bool    `json:"taken" yaml:"taken"`
	CaregiverContact *string `json:"caregiver_contact,omitempty" yaml:"caregiver_contact,omitempty"`
}

// NewMedication creates a Medication for the given person.
// An empty person falls back to the Self sentinel.
func NewMedication(person, name, date, timeOfDay string) *Medication {
	if strings.TrimSpace(person) == "" {
		person = DefaultPerson
	}
	return &Medication{
		Person: strings.TrimSpace(person),
		Name:   strings.TrimSpace(name),
		Date:   date,
		Time:   timeOfDay,
	}
}

// WithCaregiver sets the optional caregiver contact.
// The contact is stored for reference only; nothing is ever sent to it.
func (m *Medication) WithCaregiver(contact string) *Medication {
	contact = strings.TrimSpace(contact)
	if contact != "" {
		m.CaregiverContact = &contact
	}
	return m
}

// Validate checks the fields a write must not proceed without.
func (m *Medication) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("medicine name is required")
	}
	if m.Time == "" {
		return fmt.Errorf("time is required")
	}
	if _, err := time.Parse("15:04", m.Time); err != nil {
		return fmt.Errorf("invalid time %q (use HH:MM)", m.Time)
	}
	if _, err := time.Parse("2006-01-02", m.Date); err != nil {
		return fmt.Errorf("invalid date %q (use YYYY-MM-DD)", m.Date)
	}
	return nil
}
