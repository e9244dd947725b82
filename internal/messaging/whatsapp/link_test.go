package whatsapp

import (
	"net/url"
	"testing"
)

func TestEncodeComponent(t *testing.T) {
	cases := map[string]string{
		"hello world":     "hello%20world",
		"*Name:* Asha":    "*Name%3A*%20Asha",
		"a\nb":            "a%0Ab",
		"₹400":            "%E2%82%B9400",
		"keep-_.!~*'()":   "keep-_.!~*'()",
		"a&b=c+d/e?f#g,h": "a%26b%3Dc%2Bd%2Fe%3Ff%23g%2Ch",
	}
	for in, want := range cases {
		if got := EncodeComponent(in); got != want {
			t.Errorf("EncodeComponent(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEncodeComponentRoundTrips(t *testing.T) {
	text := "*New Booking Request*\n\n*Price:* ₹400 & more"
	decoded, err := url.QueryUnescape(EncodeComponent(text))
	if err != nil {
		t.Fatalf("unescape: %v", err)
	}
	if decoded != text {
		t.Fatalf("round trip mismatch: %q", decoded)
	}
}

func TestLink(t *testing.T) {
	got := Link("wa.me", "7086484190", "hi there")
	if got != "https://wa.me/7086484190?text=hi%20there" {
		t.Fatalf("unexpected link %q", got)
	}
	if got := Link("https://wa.me/", "+91 70864-84190", ""); got != "https://wa.me/917086484190" {
		t.Fatalf("unexpected chat link %q", got)
	}
}
