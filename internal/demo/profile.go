package demo

import (
	"strings"

	"github.com/substrate-ui/substrate/pkg/substrate"
)

// Profile is the demo state: a fixed, fully-populated record. Updates are
// partial merges, so setting one field preserves the other.
type Profile struct {
	First string
	Last  string
}

// SetFirst returns a patch overwriting the first name.
func SetFirst(v string) substrate.Patch[Profile] {
	return func(p *Profile) { p.First = v }
}

// SetLast returns a patch overwriting the last name.
func SetLast(v string) substrate.Patch[Profile] {
	return func(p *Profile) { p.Last = v }
}

// SelectFirst projects the first name.
func SelectFirst(p Profile) string { return p.First }

// SelectLast projects the last name.
func SelectLast(p Profile) string { return p.Last }

// SelectFullName projects the display name composed from both fields.
func SelectFullName(p Profile) string {
	return strings.TrimSpace(p.First + " " + p.Last)
}
