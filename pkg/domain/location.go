package domain

import "fmt"

// Location represents a range in source code.
// Lines are 1-based; columns are 0-based byte offsets within the line.
type Location struct {
	File      string `json:"file"`
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine"`
	StartCol  int    `json:"startCol"`
	EndCol    int    `json:"endCol"`
}

// String formats the start of the location as file:line:col with a 1-based column.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.StartLine, l.StartCol+1)
}

// Before reports whether l starts before other.
func (l Location) Before(other Location) bool {
	if l.StartLine != other.StartLine {
		return l.StartLine < other.StartLine
	}
	return l.StartCol < other.StartCol
}
