package templates

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

type fakeLocalizer struct {
	value string
}

func (f fakeLocalizer) Sprintf(key message.Reference, args ...any) string {
	return f.value
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestComposePageTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "Progressive Bar"},
		{in: "Orders", want: "Orders | Progressive Bar"},
		{in: "Orders | Progressive Bar", want: "Orders | Progressive Bar"},
	}
	for _, tc := range tests {
		if got := ComposePageTitle(tc.in); got != tc.want {
			t.Fatalf("ComposePageTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTranslateFallback(t *testing.T) {
	if T(nil, "hello") != "hello" {
		t.Fatal("expected key fallback")
	}

	if T(nil, message.Reference(123)) != "" {
		t.Fatal("expected empty string for non-string key")
	}
}

func TestTranslateLocalizer(t *testing.T) {
	loc := fakeLocalizer{value: "translated"}
	if T(loc, "hello") != "translated" {
		t.Fatal("expected translated value")
	}
}

func TestIsActiveNav(t *testing.T) {
	tests := []struct {
		current string
		item    string
		want    bool
	}{
		{current: "/", item: "/", want: true},
		{current: "/orders", item: "/", want: false},
		{current: "/orders", item: "/orders", want: true},
		{current: "/orders/content", item: "/orders", want: true},
		{current: "/ordersx", item: "/orders", want: false},
	}
	for _, tc := range tests {
		if got := isActiveNav(tc.current, tc.item); got != tc.want {
			t.Fatalf("isActiveNav(%q, %q) = %v, want %v", tc.current, tc.item, got, tc.want)
		}
	}
}

func TestLanguageURLKeepsQuery(t *testing.T) {
	page := PageContext{CurrentPath: "/orders", CurrentQuery: "filter=pending"}
	got := LanguageURL(page, "pt-BR")
	if got != "/orders?filter=pending&lang=pt-BR" {
		t.Fatalf("LanguageURL = %q", got)
	}
}
