package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vegasq/csvop/internal/confirm"
	"github.com/vegasq/csvop/internal/reader"
	"github.com/vegasq/csvop/internal/table"
	"github.com/vegasq/csvop/internal/transform"
)

func source(content string) reader.RowReader {
	return reader.NewCSVReader(strings.NewReader(content))
}

func TestWriter_Stream(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		header      table.Row
		transform   transform.Transform
		want        string
		wantRows    int
		wantColumns int
		wantErr     bool
	}{
		{
			name:        "header and rows unchanged",
			input:       "1,2,3\n4,5,6\n",
			header:      table.Row{"a", "b", "c"},
			want:        "a,b,c\n1,2,3\n4,5,6\n",
			wantRows:    3,
			wantColumns: 3,
		},
		{
			name:        "no header counts first data row",
			input:       "1,2\n3,4,5\n",
			want:        "1,2\n3,4,5\n",
			wantRows:    2,
			wantColumns: 2,
		},
		{
			name:        "column count from transformed header",
			input:       "1,2,3\n",
			header:      table.Row{"a", "b", "c"},
			transform:   transform.Insert{Index: 1, Name: "x", Value: "0"},
			want:        "a,x,b,c\n1,0,2,3\n",
			wantRows:    2,
			wantColumns: 4,
		},
		{
			name:        "jagged rows pass through",
			input:       "1\n1,2,3,4,5\n",
			header:      table.Row{"a", "b"},
			want:        "a,b\n1\n1,2,3,4,5\n",
			wantRows:    3,
			wantColumns: 2,
		},
		{
			name:        "quoting follows the codec",
			input:       "\"x,y\",\"say \"\"hi\"\"\"\n",
			header:      table.Row{"a", "b"},
			want:        "a,b\n\"x,y\",\"say \"\"hi\"\"\"\n",
			wantRows:    2,
			wantColumns: 2,
		},
		{
			name:        "empty input with header",
			input:       "",
			header:      table.Row{"a"},
			want:        "a\n",
			wantRows:    1,
			wantColumns: 1,
		},
		{
			name:        "empty input without header",
			input:       "",
			want:        "",
			wantRows:    0,
			wantColumns: 0,
		},
		{
			name:        "failing row keeps earlier rows",
			input:       "1,2\n3\n4,5\n",
			header:      table.Row{"a", "b"},
			transform:   transform.Drop{Index: 1},
			want:        "a\n1\n",
			wantRows:    2,
			wantColumns: 1,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(confirm.AlwaysYes{}, nil)

			summary, err := w.Stream(&buf, source(tt.input), tt.header, tt.transform)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Stream() error = %v, wantErr %v", err, tt.wantErr)
			}
			if buf.String() != tt.want {
				t.Errorf("Stream() output = %q, want %q", buf.String(), tt.want)
			}
			if summary.Rows != tt.wantRows || summary.Columns != tt.wantColumns {
				t.Errorf("Stream() summary = %+v, want %d rows %d columns", summary, tt.wantRows, tt.wantColumns)
			}
		})
	}
}

// ordinalRecorder passes rows through and records the ordinals it sees.
type ordinalRecorder struct {
	seen []int
}

func (r *ordinalRecorder) Apply(ordinal int, row table.Row) (table.Row, error) {
	r.seen = append(r.seen, ordinal)
	return row, nil
}

func TestWriter_Stream_Ordinals(t *testing.T) {
	record := &ordinalRecorder{}

	var buf bytes.Buffer
	w := NewWriter(nil, nil)
	if _, err := w.Stream(&buf, source("1\n2\n3\n"), table.Row{"h"}, record); err != nil {
		t.Fatalf("Stream() error = %v", err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(record.seen, want) {
		t.Errorf("ordinals = %v, want %v", record.seen, want)
	}

	record.seen = nil
	if _, err := w.Stream(&buf, source("1\n2\n"), nil, record); err != nil {
		t.Fatalf("Stream() error = %v", err)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(record.seen, want) {
		t.Errorf("ordinals without header = %v, want %v", record.seen, want)
	}
}

func TestWriter_Write_NewFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.csv")
	w := NewWriter(confirm.AlwaysNo{}, nil)

	summary, err := w.Write(source("1,2\n"), dest, table.Row{"a", "b"}, nil)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := summary.String(); got != "Wrote 2 rows and 2 columns to "+dest {
		t.Errorf("Summary.String() = %q", got)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "a,b\n1,2\n" {
		t.Errorf("file content = %q", data)
	}
}

func TestWriter_Write_OverwriteDeclined(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.csv")
	original := []byte("keep,me\n")
	if err := os.WriteFile(dest, original, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	var prompt bytes.Buffer
	policy := confirm.NewInteractive(strings.NewReader("n\n"), &prompt)
	w := NewWriter(policy, nil)

	summary, err := w.Write(source("1,2\n"), dest, table.Row{"a", "b"}, nil)
	if !errors.Is(err, ErrOverwriteDeclined) {
		t.Fatalf("Write() error = %v, want ErrOverwriteDeclined", err)
	}
	if summary != (Summary{}) {
		t.Errorf("Write() summary = %+v, want zero", summary)
	}
	if !strings.Contains(prompt.String(), "Overwrite "+dest+"?") {
		t.Errorf("prompt = %q", prompt.String())
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.Equal(data, original) {
		t.Errorf("file changed to %q", data)
	}
}

func TestWriter_Write_OverwriteApproved(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.csv")
	if err := os.WriteFile(dest, []byte("old,content,here\nmore\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	w := NewWriter(confirm.AlwaysYes{}, nil)
	if _, err := w.Write(source("1\n"), dest, table.Row{"a"}, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, _ := os.ReadFile(dest)
	if string(data) != "a\n1\n" {
		t.Errorf("file content = %q", data)
	}
}

func TestWriter_Write_PartialOnError(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.csv")
	w := NewWriter(confirm.AlwaysYes{}, nil)

	_, err := w.Write(source("1,2\n3\n"), dest, table.Row{"a", "b"}, transform.Drop{Index: 1})
	if !errors.Is(err, table.ErrIndexOutOfRange) {
		t.Fatalf("Write() error = %v, want ErrIndexOutOfRange", err)
	}

	data, _ := os.ReadFile(dest)
	if string(data) != "a\n1\n" {
		t.Errorf("file content = %q, want rows written before the failure", data)
	}
}

func TestWriter_Write_BadDestination(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "missing-dir", "out.csv")
	w := NewWriter(confirm.AlwaysYes{}, nil)
	if _, err := w.Write(source("1\n"), dest, nil, nil); err == nil {
		t.Errorf("Write() into a missing directory should fail")
	}
}
