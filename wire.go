package derpi

import (
	"encoding/json"
	"fmt"
	"time"
)

// URL is a link as returned by the API. Derpibooru serves most asset links
// protocol-relative ("//derpicdn.net/..."); decoding rewrites those to https.
// Absent, null and empty values all decode to the empty string.
type URL string

func (u *URL) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("url field: %w", err)
	}
	if s == nil || *s == "" {
		*u = ""
		return nil
	}
	if len(*s) >= 2 && (*s)[:2] == "//" {
		*u = URL("https:" + *s)
		return nil
	}
	*u = URL(*s)
	return nil
}

func (u URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(u))
}

func (u URL) String() string { return string(u) }

// Timestamp is an ISO-8601 wire timestamp. Absent and null values report the
// Unix epoch, matching fields the API may omit.
type Timestamp struct {
	t time.Time
}

// Time returns the parsed instant, or the Unix epoch when the wire value was
// absent or null.
func (ts Timestamp) Time() time.Time {
	if ts.t.IsZero() {
		return time.Unix(0, 0).UTC()
	}
	return ts.t
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp field: %w", err)
	}
	if s == nil || *s == "" {
		ts.t = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, *s); err == nil {
			ts.t = t
			return nil
		}
	}
	return fmt.Errorf("timestamp %q: unrecognized format", *s)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.Time().Format(time.RFC3339Nano))
}

func (ts Timestamp) String() string {
	return ts.Time().Format(time.RFC3339Nano)
}
