package storage

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// SecureFilename reduces a client-supplied name to a safe ASCII basename.
// Accents decompose and drop, path separators become spaces, whitespace runs
// become "_", anything outside [A-Za-z0-9_.-] is removed, and leading or
// trailing dots and underscores are trimmed. The result may be empty.
func SecureFilename(name string) string {
	decomposed := norm.NFKD.String(name)

	var ascii strings.Builder
	for _, r := range decomposed {
		if r > unicode.MaxASCII {
			continue
		}
		if r == '/' || r == '\\' {
			r = ' '
		}
		ascii.WriteRune(r)
	}

	joined := strings.Join(strings.Fields(ascii.String()), "_")
	var out strings.Builder
	for _, r := range joined {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9',
			r == '_', r == '.', r == '-':
			out.WriteRune(r)
		}
	}
	return strings.Trim(out.String(), "._")
}

// DownloadName is the attachment name for a stored file: the sanitised title
// followed by the stored file's extension.
func DownloadName(title, storedName string) string {
	return SecureFilename(title) + filepath.Ext(storedName)
}
