package util

import (
	"errors"
	"strings"
	"unicode"
)

// ErrInvalidFileName is returned for upload names that cannot be stored safely.
var ErrInvalidFileName = errors.New("invalid file name")

const maxFileNameLen = 200

// SanitizeFileName turns a client-supplied upload name into a single path
// segment: separators become "_", control characters are dropped and the
// result is capped at maxFileNameLen bytes with the extension kept.
// Traversal patterns are rejected outright.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	s = strings.TrimSpace(s)
	if s == "" || s == "." {
		return "", ErrInvalidFileName
	}
	if len(s) > maxFileNameLen {
		ext := ""
		if i := strings.LastIndexByte(s, '.'); i > 0 && len(s)-i <= 16 {
			ext = s[i:]
		}
		s = strings.ToValidUTF8(s[:maxFileNameLen-len(ext)], "") + ext
	}
	return s, nil
}
