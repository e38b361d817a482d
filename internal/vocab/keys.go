package vocab

import "strings"

// Normalize reduces a vocabulary key or a file name to its lookup key: every
// 'd' and 'c' is removed, then every ".jpg", then everything from the first
// hyphen onward when that hyphen is not the first character.
//
// The letters are removed wherever they occur, not only where they mark a
// derivative image.
func Normalize(name string) string {
	key := strings.ReplaceAll(name, "d", "")
	key = strings.ReplaceAll(key, "c", "")
	key = strings.ReplaceAll(key, ".jpg", "")
	if idx := strings.Index(key, "-"); idx > 0 {
		key = key[:idx]
	}
	return key
}
