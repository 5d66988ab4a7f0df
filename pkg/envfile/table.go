package envfile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// table is a flat key-value document with stable key order. Values keep the
// Go type go-toml decoded them to; comments captured above an existing key
// are re-emitted with it so repeated merges are byte-stable.
type table struct {
	keys     []string
	values   map[string]interface{}
	comments map[string][]string
}

func (t *table) has(key string) bool {
	_, ok := t.values[key]
	return ok
}

// insert appends a new key with the given value, preceded by the
// description rendered as a comment line.
func (t *table) insert(key, value, description string) {
	t.keys = append(t.keys, key)
	t.values[key] = value
	if description != "" {
		t.comments[key] = []string{"# " + description}
	}
}

// parseTable decodes raw document text into a table. Whitespace-only input
// is an empty table; anything that is not a flat TOML table is rejected.
func parseTable(doc string) (*table, error) {
	t := &table{
		values:   make(map[string]interface{}),
		comments: make(map[string][]string),
	}
	if strings.TrimSpace(doc) == "" {
		return t, nil
	}

	if err := toml.Unmarshal([]byte(doc), &t.values); err != nil {
		return nil, malformed(err.Error())
	}
	for key, value := range t.values {
		if _, nested := value.(map[string]interface{}); nested {
			return nil, malformed(fmt.Sprintf("key %q is a nested table, expected a flat document", key))
		}
	}

	t.keys = scanKeyOrder(doc, t.values, t.comments)
	return t, nil
}

// scanKeyOrder walks the document line by line to recover the original key
// order and the comment lines sitting directly above each key. Only keys
// confirmed by the parsed value map are recorded; any parsed key the scan
// missed is appended afterwards so no value can be dropped.
func scanKeyOrder(doc string, values map[string]interface{}, comments map[string][]string) []string {
	var keys []string
	seen := make(map[string]bool, len(values))
	var pending []string

	for _, line := range strings.Split(doc, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			pending = nil
		case strings.HasPrefix(trimmed, "#"):
			pending = append(pending, trimmed)
		default:
			key, ok := keyOfLine(trimmed)
			if ok {
				if _, known := values[key]; known && !seen[key] {
					seen[key] = true
					keys = append(keys, key)
					if len(pending) > 0 {
						comments[key] = pending
					}
				}
			}
			pending = nil
		}
	}

	var missed []string
	for key := range values {
		if !seen[key] {
			missed = append(missed, key)
		}
	}
	sort.Strings(missed)
	keys = append(keys, missed...)
	return keys
}

// keyOfLine extracts the key from a "key = value" line, handling bare and
// basic-quoted keys.
func keyOfLine(line string) (string, bool) {
	if strings.HasPrefix(line, `"`) {
		end := strings.Index(line[1:], `"`)
		if end < 0 {
			return "", false
		}
		rest := strings.TrimSpace(line[end+2:])
		if !strings.HasPrefix(rest, "=") {
			return "", false
		}
		return line[1 : end+1], true
	}

	eq := strings.Index(line, "=")
	if eq <= 0 {
		return "", false
	}
	key := strings.TrimSpace(line[:eq])
	if key == "" || !isBareKey(key) {
		return "", false
	}
	return key, true
}

func isBareKey(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}

// render serializes the table: per key, its comment lines (captured or
// freshly inserted) followed by the key assignment, entries separated by a
// blank line. Output is a deterministic function of the table contents.
func (t *table) render() string {
	var b strings.Builder
	for i, key := range t.keys {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, comment := range t.comments[key] {
			b.WriteString(comment)
			b.WriteString("\n")
		}
		b.WriteString(encodeKey(key))
		b.WriteString(" = ")
		b.WriteString(encodeValue(t.values[key]))
		b.WriteString("\n")
	}
	return b.String()
}

func encodeKey(key string) string {
	if key != "" && isBareKey(key) {
		return key
	}
	return quoteBasic(key)
}

// encodeValue renders a value as TOML. Strings are always emitted as basic
// (double-quoted) strings so existing values round-trip byte-for-byte;
// other scalar types fall back to the go-toml encoder.
func encodeValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return quoteBasic(s)
	}

	encoded, err := toml.Marshal(map[string]interface{}{"v": v})
	if err != nil {
		// Unrepresentable values cannot come out of a successful parse.
		return quoteBasic(fmt.Sprintf("%v", v))
	}
	line := strings.TrimSuffix(string(encoded), "\n")
	return strings.TrimPrefix(line, "v = ")
}

// quoteBasic renders a TOML basic string with the required escapes.
func quoteBasic(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				b.WriteString(fmt.Sprintf(`\u%04X`, r))
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
