package output

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/vegasq/csvop/internal/table"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row, keyed by header name. Cells beyond
// the header, or with an empty or repeated name, are keyed by their index;
// when that index is itself a header name a numeric suffix is added
// ("1_1", "1_2", ...) so no cell is dropped. The header itself is not
// written as a line.
func (j *JSONFormatter) Format(header table.Row, rows []table.Row) error {
	keys := newColumnKeys(header)
	encoder := json.NewEncoder(j.writer)
	for _, row := range rows {
		obj := make(map[string]string, len(row))
		for i, cell := range row {
			obj[keys.key(i)] = cell
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}

// columnKeys assigns each column position a distinct object key.
type columnKeys struct {
	keys  []string
	taken map[string]bool
}

func newColumnKeys(header table.Row) *columnKeys {
	k := &columnKeys{
		keys:  make([]string, len(header)),
		taken: make(map[string]bool, len(header)),
	}

	// header names are reserved before any fallback key is picked
	for i, name := range header {
		if name != "" && !k.taken[name] {
			k.taken[name] = true
			k.keys[i] = name
		}
	}
	for i := range header {
		if k.keys[i] == "" {
			k.keys[i] = k.fallback(i)
		}
	}
	return k
}

// key returns the key for column i, extending past the header as needed.
func (k *columnKeys) key(i int) string {
	for len(k.keys) <= i {
		k.keys = append(k.keys, k.fallback(len(k.keys)))
	}
	return k.keys[i]
}

func (k *columnKeys) fallback(i int) string {
	base := strconv.Itoa(i)
	key := base
	for n := 1; k.taken[key]; n++ {
		key = base + "_" + strconv.Itoa(n)
	}
	k.taken[key] = true
	return key
}
