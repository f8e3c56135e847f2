package terminal

import (
	"fmt"
	"strings"
)

const (
	logFieldItems = "items"
)

var (
	listFields = []string{logFieldMessage, logFieldItems}
)

type list struct {
	message string
	items   []string
	bullet  string
}

func newList(message, bullet string, items []interface{}) list {
	l := list{message: message, bullet: bullet, items: make([]string, 0, len(items))}
	for _, item := range items {
		l.items = append(l.items, parseValue(item))
	}
	return l
}

func (l list) Message() (string, error) {
	if len(l.items) == 0 {
		return l.message, nil
	}

	rows := make([]string, len(l.items))
	for i, item := range l.items {
		rows[i] = fmt.Sprintf("%s%s%s", Indent, l.bullet, item)
	}
	return fmt.Sprintf("%s\n%s", l.message, strings.Join(rows, "\n")), nil
}

func (l list) Payload() ([]string, map[string]interface{}, error) {
	return listFields, map[string]interface{}{
		logFieldMessage: l.message,
		logFieldItems:   l.items,
	}, nil
}
