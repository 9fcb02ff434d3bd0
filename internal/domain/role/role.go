package role

import "strings"

// Role is a closed set. Values outside the constants below are never valid.
type Role string

const (
	Customer   Role = "CUSTOMER"
	Admin      Role = "ADMIN"
	SuperAdmin Role = "SUPER_ADMIN"
)

// Rank is the hierarchy position. Invalid roles rank below everything.
func Rank(r Role) int {
	switch r {
	case Customer:
		return 0
	case Admin:
		return 1
	case SuperAdmin:
		return 2
	default:
		return -1
	}
}

func (r Role) Valid() bool {
	return Rank(r) >= 0
}

func (r Role) String() string {
	return string(r)
}

// AtLeast reports whether r sits at or above minimum. An invalid role on
// either side never satisfies the check.
func AtLeast(r, minimum Role) bool {
	if !r.Valid() || !minimum.Valid() {
		return false
	}
	return Rank(r) >= Rank(minimum)
}

// Parse accepts only the exact enum spellings.
func Parse(raw string) (Role, bool) {
	r := Role(raw)
	if r.Valid() {
		return r, true
	}
	return "", false
}

// ParseOrDefault is used for claims from outside the system: anything that
// does not parse becomes Customer. suspicious is true when a non-empty value
// was rejected, which callers log as a possible tampering attempt.
func ParseOrDefault(raw string) (r Role, suspicious bool) {
	if parsed, ok := Parse(raw); ok {
		return parsed, false
	}
	return Customer, strings.TrimSpace(raw) != ""
}
