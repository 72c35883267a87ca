package support

import "fmt"

// SourceLocation identifies a position in a source file. It is invalid iff
// File is empty, and is immutable once constructed.
type SourceLocation struct {
	File   string
	Line   uint32
	Column uint32
}

// Valid reports whether the location carries a usable file name.
func (l SourceLocation) Valid() bool {
	return l.File != ""
}

// String renders the location as "file:line:column", or the empty string
// when invalid.
func (l SourceLocation) String() string {
	if !l.Valid() {
		return ""
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}
