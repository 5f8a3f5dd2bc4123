package models

import "strings"

// Slugify derives a URL-safe identifier from a display name: lowercase ASCII
// with runs of non-alphanumeric characters collapsed to a single hyphen.
// Derivation happens once, at creation; slugs are never regenerated on
// update, and colliding derivations are rejected by the store's unique index
// rather than auto-suffixed.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}

	return b.String()
}
