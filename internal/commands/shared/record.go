// Package shared holds the building blocks of the WorkHub resource commands.
package shared

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/terminal"
)

const (
	envelopeKey = "data"

	// MaxColumns is the maximum number of columns displayed for a list of records
	MaxColumns = 6
)

// Records decodes the records of a list response, unwrapping a {"data": [...]} envelope
func Records(res workhub.Response) ([]workhub.Record, error) {
	return workhub.Response{Body: unwrap(res.Body)}.Records()
}

// Record decodes the record of a single document response, unwrapping a {"data": {...}} envelope
func Record(res workhub.Response) (workhub.Record, error) {
	return workhub.Response{Body: unwrap(res.Body)}.Record()
}

func unwrap(body []byte) []byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return body
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &doc); err != nil || len(doc) != 1 {
		return body
	}
	if data, ok := doc[envelopeKey]; ok {
		return data
	}
	return body
}

// Headers returns the scalar field names found in records, in the order they are first seen
func Headers(records []workhub.Record, limit int) []string {
	var headers []string
	seen := map[string]struct{}{}

	for _, record := range records {
		if record.OrderedMap == nil {
			continue
		}
		for _, key := range record.Keys() {
			if _, ok := seen[key]; ok {
				continue
			}
			if _, ok := record.Field(key); !ok {
				continue
			}
			seen[key] = struct{}{}
			headers = append(headers, key)
			if len(headers) == limit {
				return headers
			}
		}
	}
	return headers
}

// Rows returns the table rows of records for the provided headers
func Rows(records []workhub.Record, headers []string) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		row := make(map[string]interface{}, len(headers))
		for _, header := range headers {
			if value, ok := record.Field(header); ok {
				row[header] = value
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// PrintRecords prints the records of a list response as a table
func PrintRecords(ui terminal.UI, resource string, res workhub.Response) error {
	records, err := Records(res)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", resource, err)
	}

	if len(records) == 0 {
		return ui.Print(terminal.NewTextLog("No %s found", resource))
	}

	headers := Headers(records, MaxColumns)
	if len(headers) == 0 {
		return ui.Print(terminal.NewJSONLog(records))
	}

	return ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Found %d %s", len(records), resource),
		headers,
		Rows(records, headers)...,
	))
}

// PrintRecord prints the record of a single document response
func PrintRecord(ui terminal.UI, title string, res workhub.Response) error {
	record, err := Record(res)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", title, err)
	}
	return ui.Print(terminal.NewTitledJSONLog(title, record))
}

// PrintResult prints message along with the document of a write response, if the server sent one
func PrintResult(ui terminal.UI, message string, res workhub.Response) error {
	if len(bytes.TrimSpace(res.Body)) == 0 {
		return ui.Print(terminal.NewTextLog(message))
	}

	record, err := Record(res)
	if err != nil {
		return ui.Print(terminal.NewTextLog(message))
	}
	return ui.Print(terminal.NewTitledJSONLog(message, record))
}
