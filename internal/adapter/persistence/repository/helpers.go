package repository

import (
	"os"
	"time"

	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Monetary values are stored as exact decimal strings; a malformed stored
// value reads back as zero, same as an absent attribute.

func decToString(d decimal.Decimal) string {
	return d.String()
}

func decFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func timeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func timeFromString(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// Optional dates (completion stamps) round-trip through an empty string.

func timePtrToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return timeToString(*t)
}

func timePtrFromString(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := timeFromString(s)
	return &t
}
