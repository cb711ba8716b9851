package viewmodel

import (
	"fmt"
	"strings"
	"time"
)

const displayTimeLayout = "2006-01-02 15:04:05"

// isoLayouts are the accepted upload date string encodings, tried in order.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatTimestamp renders an upload date for display. Numeric values are
// seconds since the Unix epoch, formatted in UTC. Strings are parsed as
// ISO-8601 (a trailing Z is accepted); on parse failure the original
// string is returned unchanged. Never fails.
func FormatTimestamp(v any) string {
	switch t := v.(type) {
	case int64:
		return time.Unix(t, 0).UTC().Format(displayTimeLayout)
	case int:
		return time.Unix(int64(t), 0).UTC().Format(displayTimeLayout)
	case float64:
		return time.Unix(int64(t), 0).UTC().Format(displayTimeLayout)
	case string:
		for _, layout := range isoLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.Format(displayTimeLayout)
			}
		}
		return t
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// FormatDate renders only the date portion of an upload date.
func FormatDate(v any) string {
	date, _, _ := strings.Cut(FormatTimestamp(v), " ")
	return date
}
