package repository

import (
	"time"

	"github.com/jmkcontents/jmkcontents/internal/docstore"
)

// Document field accessors. The docstore JSON round-trip turns every
// number into float64 and every list into []interface{}; these helpers
// normalize that back into domain types. Missing or mistyped fields
// yield zero values.

func docString(doc docstore.Document, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

func docBool(doc docstore.Document, key string) bool {
	if v, ok := doc[key].(bool); ok {
		return v
	}
	return false
}

func docFloat(doc docstore.Document, key string) float64 {
	if v, ok := doc[key].(float64); ok {
		return v
	}
	return 0
}

func docInt(doc docstore.Document, key string) int {
	return int(docFloat(doc, key))
}

func docStringSlice(doc docstore.Document, key string) []string {
	raw, ok := doc[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// docTime converts a stored RFC3339 string back to time.Time.
// Unparseable values come back as the zero time.
func docTime(doc docstore.Document, key string) time.Time {
	s := docString(doc, key)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
