package service

import (
	"errors"
	"regexp"
	"time"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	colorRe = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
)

// Generated ids are 36 chars; anything shorter than this cannot be one.
const minIDLen = 10

func validID(id string) bool { return len(id) >= minIDLen }

var dueDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

var errBadTimestamp = errors.New("unrecognized timestamp")

func parseDueDate(s string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errBadTimestamp
}
