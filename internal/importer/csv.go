// ABOUTME: CSV metric import parser.
// ABOUTME: Requires a header with date, steps, calories columns in any order.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseCSV parses columnar text with a header row. Column order is
// free, matching is case-insensitive, and extra columns are ignored.
func ParseCSV(data []byte) ([]Row, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"date", "steps", "calories"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("csv must contain date, steps, calories columns (missing %s)", required)
		}
	}

	var rows []Row
	for n := 1; ; n++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n, err)
		}

		row := Row{Date: record[cols["date"]]}
		if row.Steps, err = parseCount(record[cols["steps"]]); err != nil {
			return nil, fmt.Errorf("row %d: steps: %w", n, err)
		}
		if row.Calories, err = parseCount(record[cols["calories"]]); err != nil {
			return nil, fmt.Errorf("row %d: calories: %w", n, err)
		}
		if err := validateRow(n, &row); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseCount(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return v, nil
}
