package text

import "strings"

// DefaultTabSize is the number of spaces a tab expands to
const DefaultTabSize = 4

// ExpandTabs replaces every tab with size spaces. A size of zero removes tabs.
func ExpandTabs(s string, size int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	if size < 0 {
		size = 0
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", size))
}
