package dartsarif

import (
	"path/filepath"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// FileURI converts a filesystem path to a file:// URI. Relative paths are
// resolved against the working directory first. Every byte other than an
// unreserved character or a slash is percent-encoded.
func FileURI(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	slashed := filepath.ToSlash(abs)

	switch {
	case strings.HasPrefix(slashed, "//"):
		// UNC path, the server becomes the authority
		return "file:" + escapePath(slashed), nil
	case len(slashed) >= 2 && slashed[1] == ':':
		// drive letter, C:/src becomes file:///C:/src
		return "file:///" + slashed[:2] + escapePath(slashed[2:]), nil
	default:
		return "file://" + escapePath(slashed), nil
	}
}

func escapePath(path string) string {
	var b strings.Builder
	b.Grow(len(path))
	for i := 0; i < len(path); i++ {
		c := path[i]
		if isUnreserved(c) || c == '/' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}
