package replay

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Flag is a boolean the capture format stores as a JSON bool in some client
// versions and as 0/1 in others. null leaves the zero value.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case "null":
		return nil
	case "true":
		*f = true
		return nil
	case "false":
		*f = false
		return nil
	}
	n, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("flag: unexpected value %q", b)
	}
	*f = n != 0
	return nil
}

func (f Flag) Bool() bool {
	return bool(f)
}

// AccountID tolerates both numeric and quoted account ids, which vary by
// capture format version.
type AccountID int64

func (a *AccountID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("account id: %w", err)
	}
	*a = AccountID(n)
	return nil
}

// decodeInto remaps a generic decoded map onto a typed record. Keys absent
// from the source leave the struct's zero value in place, so every versioned
// optional field defaults to 0/false by construction. A present key with an
// unexpected shape fails the decode instead of silently corrupting the
// record.
func decodeInto(src map[string]any, dst any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func firstOrZero(v []int) int {
	if len(v) == 0 {
		return 0
	}
	return v[0]
}
