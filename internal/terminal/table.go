package terminal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const (
	logFieldHeaders = "headers"
	logFieldRows    = "rows"
)

// set of exported spacing options
const (
	Indent = "  "
	Gutter = "  "
)

var (
	tableFields = []string{logFieldMessage, logFieldHeaders, logFieldRows}

	errTableNoHeaders = errors.New("cannot create a table without headers")
)

type table struct {
	message string
	headers []string
	rows    []map[string]string
	widths  map[string]int
}

func newTable(message string, headers []string, rows []map[string]interface{}) table {
	t := table{
		message: message,
		headers: headers,
		rows:    make([]map[string]string, 0, len(rows)),
		widths:  make(map[string]int, len(headers)),
	}

	for _, header := range headers {
		t.widths[header] = len(header)
	}

	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		cells := make(map[string]string, len(headers))
		for _, header := range headers {
			value := parseValue(row[header])
			if len(value) > t.widths[header] {
				t.widths[header] = len(value)
			}
			cells[header] = value
		}
		t.rows = append(t.rows, cells)
	}
	return t
}

func (t table) Message() (string, error) {
	if len(t.headers) == 0 {
		return "", errTableNoHeaders
	}

	lines := []string{t.message, t.line(t.headers, true)}

	dashes := make([]string, len(t.headers))
	for i, header := range t.headers {
		dashes[i] = strings.Repeat("-", t.widths[header])
	}
	lines = append(lines, Indent+strings.Join(dashes, Gutter))

	for _, row := range t.rows {
		cells := make([]string, len(t.headers))
		for i, header := range t.headers {
			cells[i] = row[header]
		}
		lines = append(lines, t.line(cells, false))
	}
	return strings.Join(lines, "\n"), nil
}

func (t table) Payload() ([]string, map[string]interface{}, error) {
	if len(t.headers) == 0 {
		return nil, nil, errTableNoHeaders
	}
	return tableFields, map[string]interface{}{
		logFieldMessage: t.message,
		logFieldHeaders: t.headers,
		logFieldRows:    t.rows,
	}, nil
}

func (t table) line(cells []string, bold bool) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padding := strings.Repeat(" ", t.widths[t.headers[i]]-len(cell))
		if bold {
			cell = color.New(color.Bold).Sprint(cell)
		}
		padded[i] = cell + padding
	}
	return strings.TrimRight(Indent+strings.Join(padded, Gutter), " ")
}

func parseValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	default:
		return fmt.Sprintf("%+v", v)
	}
}
