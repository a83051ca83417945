package util

import "time"

// ISOLayout is the timestamp layout used in API payloads: RFC 3339 with
// microsecond precision, always carrying the zone offset.
const ISOLayout = "2006-01-02T15:04:05.000000Z07:00"

// FormatISO renders t in ISOLayout.
func FormatISO(t time.Time) string {
	return t.Format(ISOLayout)
}
