package web

import (
	"bytes"
	"io"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatNAV(t *testing.T) {
	cases := []struct {
		nav  string
		want string
	}{
		{"100.50", "$100.50"},
		{"45.2", "$45.20"},
		{"1234.5", "$1,234.50"},
		{"0", "$0.00"},
		{"78.755", "$78.76"},
	}
	for _, tc := range cases {
		got := FormatNAV(decimal.RequireFromString(tc.nav), "USD")
		if got != tc.want {
			t.Errorf("FormatNAV(%s) = %q, want %q", tc.nav, got, tc.want)
		}
	}
}

func TestTemplates_Parse(t *testing.T) {
	tmpl, err := Templates("USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{IndexTemplate, DetailsTemplate, NotFoundTemplate, ErrorTemplate} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("template %s not found", name)
		}
	}

	var buf bytes.Buffer
	data := map[string]any{"Title": "Error", "RequestID": "r-1"}
	if err := tmpl.ExecuteTemplate(&buf, ErrorTemplate, data); err != nil {
		t.Fatalf("failed to render error page: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("r-1")) {
		t.Errorf("expected request id in output")
	}
}

func TestStatic_ServesSiteJS(t *testing.T) {
	f, err := Static().Open("site.js")
	if err != nil {
		t.Fatalf("failed to open site.js: %v", err)
	}
	defer f.Close()

	body, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("failed to read site.js: %v", err)
	}
	if !bytes.Contains(body, []byte("darkModeToggle")) {
		t.Errorf("unexpected site.js content")
	}
}
