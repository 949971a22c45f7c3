// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package relexer

import (
	"strconv"
	"unicode/utf16"
)

var mnemonics = map[byte]string{
	'"':  "\"",
	'\'': "'",
	'?':  "?",
	'\\': "\\",
	'a':  "\a",
	'b':  "\b",
	'e':  "\x1b",
	'f':  "\f",
	'n':  "\n",
	'r':  "\r",
	't':  "\t",
	'v':  "\v",
}

// unescape decodes one escape sequence, backslash included. Octal and hex
// forms produce a single byte, truncated to eight bits. The \u form produces
// the UTF-8 encoding of a BMP code point. Surrogates and the eight digit \U
// form are rejected.
func unescape(text string) (string, bool) {
	if len(text) < 2 || text[0] != '\\' {
		return "", false
	}
	body := text[1:]
	switch {
	case len(body) <= 3 && isDigits(body, 8):
		v, err := strconv.ParseUint(body, 8, 16)
		if err != nil {
			return "", false
		}
		return string([]byte{byte(v)}), true
	case len(body) == 1:
		v, ok := mnemonics[body[0]]
		return v, ok
	case body[0] == 'x' && len(body) >= 2 && len(body) <= 7 && isDigits(body[1:], 16):
		v, err := strconv.ParseUint(body[1:], 16, 32)
		if err != nil {
			return "", false
		}
		return string([]byte{byte(v)}), true
	case body[0] == 'u' && len(body) == 5 && isDigits(body[1:], 16):
		v, err := strconv.ParseUint(body[1:], 16, 32)
		if err != nil || utf16.IsSurrogate(rune(v)) {
			return "", false
		}
		return string(rune(v)), true
	default:
		return "", false
	}
}

func isDigits(s string, base int) bool {
	if s == "" {
		return false
	}
	for x := 0; x < len(s); x = x + 1 {
		c := s[x]
		switch {
		case c >= '0' && c <= '7':
		case c >= '8' && c <= '9' && base > 8:
		case (c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') && base > 10:
		default:
			return false
		}
	}
	return true
}
