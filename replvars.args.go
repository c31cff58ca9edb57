package replvars

import (
	"sort"
	"strconv"
	"strings"
)

// Arguments holds the parsed argument clause of a token such as
// categories(limit=3&separator= | ). Raw keeps the clause exactly as written
// for resolvers that take a single free-form argument (date formats).
type Arguments struct {
	raw    string
	values map[string]string
}

// ParseArgs parses an argument clause into key/value pairs. Pairs are split
// on "&", then on the first "=" so values may themselves contain "=". Keys
// are trimmed; values are kept verbatim. Empty segments are skipped and a
// segment without "=" becomes a key with an empty value. Parsing never fails.
func ParseArgs(raw string) Arguments {
	args := Arguments{raw: raw, values: make(map[string]string)}
	if raw == "" {
		return args
	}

	for _, pair := range strings.Split(raw, ArgPairSeparator) {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, ArgValueSeparator)
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		args.values[key] = value
	}
	return args
}

// NoArgs is the argument set for a token used without a clause.
func NoArgs() Arguments {
	return Arguments{values: map[string]string{}}
}

// Raw returns the clause as written, without parentheses.
func (a Arguments) Raw() string {
	return a.raw
}

// Get retrieves an argument value.
func (a Arguments) Get(key string) (string, bool) {
	v, ok := a.values[key]
	return v, ok
}

// GetDefault retrieves an argument value, or defaultVal when the key is absent.
func (a Arguments) GetDefault(key, defaultVal string) string {
	if v, ok := a.values[key]; ok {
		return v
	}
	return defaultVal
}

// Has reports whether the key was given.
func (a Arguments) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// Len returns the number of parsed keys.
func (a Arguments) Len() int {
	return len(a.values)
}

// Keys returns all keys in sorted order.
func (a Arguments) Keys() []string {
	keys := make([]string, 0, len(a.values))
	for k := range a.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the parsed pairs.
func (a Arguments) Map() map[string]string {
	out := make(map[string]string, len(a.values))
	for k, v := range a.values {
		out[k] = v
	}
	return out
}

// Int returns an integer argument, or def when the key is absent or not a
// non-negative integer.
func (a Arguments) Int(key string, def int) int {
	v, ok := a.values[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return def
	}
	return n
}

// IDSet parses a comma separated id list. Entries that are not integers are
// ignored.
func (a Arguments) IDSet(key string) map[int64]struct{} {
	set := make(map[int64]struct{})
	v, ok := a.values[key]
	if !ok {
		return set
	}
	for _, part := range strings.Split(v, ArgListSeparator) {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		set[id] = struct{}{}
	}
	return set
}

// String serializes the pairs canonically: sorted keys joined by "&".
// Parsing the result yields the same pairs.
func (a Arguments) String() string {
	keys := a.Keys()
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+ArgValueSeparator+a.values[k])
	}
	return strings.Join(parts, ArgPairSeparator)
}
