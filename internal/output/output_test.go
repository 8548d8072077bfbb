package output

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
)

type record struct {
	Path   string  `json:"path" yaml:"path"`
	Branch *string `json:"branch" yaml:"branch"`
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := FromContext(WithPrinter(context.Background(), &buf))
	p.Println("/work/myapp-worktree/myapp-x-worktree")
	p.Printf("%d worktrees\n", 2)
	p.Print("done")

	want := "/work/myapp-worktree/myapp-x-worktree\n2 worktrees\ndone"
	if got := buf.String(); got != want {
		t.Errorf("printer wrote %q, want %q", got, want)
	}
	if p.Writer() != &buf {
		t.Error("Writer() should return the buffer passed to WithPrinter")
	}

	if FromContext(context.Background()).Writer() != os.Stdout {
		t.Error("printer without context value should write to os.Stdout")
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"JSON", "", true},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPrinter_Data(t *testing.T) {
	t.Parallel()

	main := "main"
	data := []record{{Path: "/work/myapp", Branch: &main}, {Path: "/work/myapp-worktree/x"}}

	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "[\n  {\n    \"path\": \"/work/myapp\",\n    \"branch\": \"main\"\n  },\n" +
			"  {\n    \"path\": \"/work/myapp-worktree/x\",\n    \"branch\": null\n  }\n]\n"},
		{FormatYAML, "- path: /work/myapp\n  branch: main\n- path: /work/myapp-worktree/x\n  branch: null\n"},
		{FormatTable, "TABLE\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			rendered := false
			err := New(&buf).Data(tt.format, data, func() string {
				rendered = true
				return "TABLE\n"
			})
			if err != nil {
				t.Fatalf("Data() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Data(%s) wrote %q, want %q", tt.format, buf.String(), tt.want)
			}
			if rendered != (tt.format == FormatTable) {
				t.Errorf("table renderer called = %v for %s", rendered, tt.format)
			}
		})
	}
}

func TestPrinter_JSONEmptyList(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := New(&buf).JSON([]record{}); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("JSON() of empty list = %q, want []", buf.String())
	}
}
