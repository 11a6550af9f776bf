package confirm

import (
	"bytes"
	"strings"
	"testing"
)

func TestFixedPolicies(t *testing.T) {
	if ok, err := (AlwaysYes{}).Confirm("Overwrite out.csv?"); !ok || err != nil {
		t.Errorf("AlwaysYes.Confirm() = %v, %v; want true, nil", ok, err)
	}
	if ok, err := (AlwaysNo{}).Confirm("Overwrite out.csv?"); ok || err != nil {
		t.Errorf("AlwaysNo.Confirm() = %v, %v; want false, nil", ok, err)
	}
}

func TestInteractive_Confirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
		wantPrompt int
	}{
		{name: "yes", input: "y\n", want: true, wantPrompt: 1},
		{name: "upper yes", input: "Y\n", want: true, wantPrompt: 1},
		{name: "no", input: "n\n", want: false, wantPrompt: 1},
		{name: "empty takes default no", input: "\n", want: false, wantPrompt: 1},
		{name: "empty takes default yes", input: "\n", defaultYes: true, want: true, wantPrompt: 1},
		{name: "retry after junk", input: "maybe\nyes\ny\n", want: true, wantPrompt: 3},
		{name: "closed input", input: "", want: false, wantPrompt: 1},
		{name: "answer without newline", input: "y", want: true, wantPrompt: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewInteractive(strings.NewReader(tt.input), &out)
			p.defaultYes = tt.defaultYes

			got, err := p.Confirm("Overwrite out.csv?")
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if n := strings.Count(out.String(), "Overwrite out.csv?"); n != tt.wantPrompt {
				t.Errorf("prompt shown %d times, want %d", n, tt.wantPrompt)
			}
		})
	}
}

func TestInteractive_PromptText(t *testing.T) {
	var out bytes.Buffer
	p := NewInteractive(strings.NewReader("n\n"), &out)
	if _, err := p.Confirm(""); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if got := out.String(); got != "Confirm [n]|y: " {
		t.Errorf("prompt = %q, want %q", got, "Confirm [n]|y: ")
	}
}
