package planner

import "strings"

// AddPart appends the trimmed draft to parts when it is non-empty and not
// already present (exact, case-sensitive match). It reports whether the part
// was added. The input slice is never modified.
func AddPart(parts []string, draft string) ([]string, bool) {
	part := strings.TrimSpace(draft)
	if part == "" || containsPart(parts, part) {
		return parts, false
	}

	next := make([]string, 0, len(parts)+1)
	next = append(next, parts...)
	return append(next, part), true
}

// RemovePart returns parts without name. The input slice is never modified.
func RemovePart(parts []string, name string) []string {
	next := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != name {
			next = append(next, p)
		}
	}
	return next
}

func containsPart(parts []string, part string) bool {
	for _, p := range parts {
		if p == part {
			return true
		}
	}
	return false
}
