// ABOUTME: XML metric import parser.
// ABOUTME: Collects <row> elements at any depth; each needs date/steps/calories children.
package importer

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

type xmlRow struct {
	Date     *string `xml:"date"`
	Steps    *string `xml:"steps"`
	Calories *string `xml:"calories"`
}

// ParseXML parses a tag-delimited file. Row elements may sit anywhere
// under the root, so feeds that wrap rows in grouping elements work
// unchanged. A row missing any child element fails the whole import.
func ParseXML(data []byte) ([]Row, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var rows []Row
	n := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "row" {
			continue
		}

		n++
		var xr xmlRow
		if err := dec.DecodeElement(&xr, &start); err != nil {
			return nil, fmt.Errorf("row %d: %w", n, err)
		}

		if xr.Date == nil {
			return nil, fmt.Errorf("row %d: missing <date> element", n)
		}
		if xr.Steps == nil {
			return nil, fmt.Errorf("row %d: missing <steps> element", n)
		}
		if xr.Calories == nil {
			return nil, fmt.Errorf("row %d: missing <calories> element", n)
		}

		row := Row{Date: strings.TrimSpace(*xr.Date)}
		if row.Steps, err = parseCount(*xr.Steps); err != nil {
			return nil, fmt.Errorf("row %d: steps: %w", n, err)
		}
		if row.Calories, err = parseCount(*xr.Calories); err != nil {
			return nil, fmt.Errorf("row %d: calories: %w", n, err)
		}
		if err := validateRow(n, &row); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	if n == 0 {
		return nil, fmt.Errorf("xml must contain <row> elements with <date>, <steps>, <calories> children")
	}
	return rows, nil
}
