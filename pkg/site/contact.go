package site

import (
	"strings"
)

const upperHex = "0123456789ABCDEF"

// Field is one submitted form field.
type Field struct {
	Name  string
	Value string
}

// MailtoURL builds action?name=value&... with every value escaped like
// encodeURIComponent. Names are written as given. Fields keep their order
// and there is no trailing separator.
func MailtoURL(action string, fields []Field) string {
	var b strings.Builder

	b.WriteString(action)
	b.WriteByte('?')

	for i, f := range fields {
		if i > 0 {
			b.WriteByte('&')
		}

		b.WriteString(f.Name)
		b.WriteByte('=')
		b.WriteString(EncodeURIComponent(f.Value))
	}

	return b.String()
}

// EncodeURIComponent percent-encodes every UTF-8 byte of s except
// A-Z a-z 0-9 and - _ . ! ~ * ' ( ). Spaces become %20.
func EncodeURIComponent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for i := range len(s) {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)

			continue
		}

		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}

	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	return strings.IndexByte("-_.!~*'()", c) >= 0
}
