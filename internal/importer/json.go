// ABOUTME: JSON metric import parser.
// ABOUTME: Expects a top-level array of objects with date/steps/calories keys.
package importer

import (
	"encoding/json"
	"fmt"
)

type jsonRow struct {
	Date     *string `json:"date"`
	Steps    *int    `json:"steps"`
	Calories *int    `json:"calories"`
}

// ParseJSON parses a record-oriented structured file. Each element must
// carry all three keys; a missing key anywhere fails the whole import.
func ParseJSON(data []byte) ([]Row, error) {
	var raw []jsonRow
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	rows := make([]Row, 0, len(raw))
	for i, jr := range raw {
		n := i + 1
		if jr.Date == nil {
			return nil, fmt.Errorf("row %d: missing date (json must contain date, steps, calories)", n)
		}
		if jr.Steps == nil {
			return nil, fmt.Errorf("row %d: missing steps (json must contain date, steps, calories)", n)
		}
		if jr.Calories == nil {
			return nil, fmt.Errorf("row %d: missing calories (json must contain date, steps, calories)", n)
		}

		row := Row{Date: *jr.Date, Steps: *jr.Steps, Calories: *jr.Calories}
		if err := validateRow(n, &row); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
