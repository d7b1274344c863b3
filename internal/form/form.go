// Package form reconstructs structured records from the flat key→value
// payloads admin HTML forms submit, including array-indexed keys such as
// "experience.0.role". Unknown keys are ignored by construction: callers
// only ask for the fields they know.
package form

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Values is a flat form payload. Where the transport allows repeated keys,
// the first value wins.
type Values map[string]string

// FromURLValues flattens parsed form data into Values.
func FromURLValues(v url.Values) Values {
	out := make(Values, len(v))
	for key, vals := range v {
		if len(vals) > 0 {
			out[key] = vals[0]
		}
	}
	return out
}

// Get returns the value for key, or "" when absent.
func (v Values) Get(key string) string { return v[key] }

// Indexed groups keys of the shape "<prefix>.<n>.<field>" into per-index
// records, ordered by n ascending. Gaps in the index sequence are preserved
// as submitted (a form that deletes row 1 still submits rows 0 and 2 in
// that order).
func (v Values) Indexed(prefix string) []map[string]string {
	byIndex := make(map[int]map[string]string)
	head := prefix + "."
	for key, val := range v {
		if !strings.HasPrefix(key, head) {
			continue
		}
		rest := key[len(head):]
		dot := strings.IndexByte(rest, '.')
		if dot <= 0 {
			continue
		}
		n, err := strconv.Atoi(rest[:dot])
		if err != nil || n < 0 {
			continue
		}
		field := rest[dot+1:]
		if field == "" {
			continue
		}
		if byIndex[n] == nil {
			byIndex[n] = make(map[string]string)
		}
		byIndex[n][field] = val
	}

	indices := make([]int, 0, len(byIndex))
	for n := range byIndex {
		indices = append(indices, n)
	}
	sort.Ints(indices)

	out := make([]map[string]string, 0, len(indices))
	for _, n := range indices {
		out = append(out, byIndex[n])
	}
	return out
}
