package services

import "time"

// ISOLayout renders an instant as ISO-8601 in UTC with millisecond precision.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// FormatISO formats t in ISOLayout.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}
