// Package whatsapp builds click-to-chat deep links.
package whatsapp

import (
	"strings"
)

const upperhex = "0123456789ABCDEF"

// Link returns https://<host>/<recipient>?text=<encoded text>.
func Link(host, recipient, text string) string {
	base := ChatLink(host, recipient)
	if text == "" {
		return base
	}
	return base + "?text=" + EncodeComponent(text)
}

// ChatLink opens a chat with recipient without a pre-filled message.
func ChatLink(host, recipient string) string {
	host = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(host), "https://"), "/")
	return "https://" + host + "/" + digitsOnly(recipient)
}

// EncodeComponent percent-encodes s the way browsers' encodeURIComponent
// does: spaces become %20 and only A-Z a-z 0-9 - _ . ! ~ * ' ( ) pass through.
func EncodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0F])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// wa.me rejects "+", spaces and dashes in the number.
func digitsOnly(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
