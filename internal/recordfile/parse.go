// Package recordfile parses a persisted optimization-record document (the
// compiler's `-opt-remarks` YAML-shaped output) into the same support.Remark
// value the live collector produces, so downstream stages are
// source-agnostic.
package recordfile

import (
	"os"
	"strconv"
	"strings"

	"aion/internal/support"
)

var tagToKind = map[string]support.RemarkKind{
	"!Missed":   support.Missed,
	"!Passed":   support.Applied,
	"!Analysis": support.Analysis,
}

// ParseFile reads path and parses it as a record document.
func ParseFile(path string) ([]support.Remark, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is an explicit CLI/API input
	if err != nil {
		return nil, support.NewIoError("failed to read record file", err)
	}
	return Parse(string(data)), nil
}

// Parse splits text into records delimited by lines starting with "---",
// parses each, and returns the successfully-parsed remarks in document
// order. Malformed or unrecognized records are skipped silently rather
// than surfaced as an error, since a record file is expected to carry
// documents this package doesn't recognize.
func Parse(text string) []support.Remark {
	var remarks []support.Remark
	for _, doc := range splitDocuments(text) {
		kind, known := tagToKind[doc.tag]
		if !known {
			continue
		}
		if remark, ok := parseRecord(doc.body, kind); ok {
			remarks = append(remarks, remark)
		}
	}
	return remarks
}

type document struct {
	tag  string
	body string
}

// splitDocuments scans for "---" at line start, the document separator
// used by the record format.
func splitDocuments(text string) []document {
	lines := strings.Split(text, "\n")
	var docs []document
	var current *document
	var body []string

	flush := func() {
		if current != nil {
			current.body = strings.Join(body, "\n")
			docs = append(docs, *current)
		}
	}

	for _, line := range lines {
		if strings.HasPrefix(line, "---") {
			flush()
			tag := strings.TrimSpace(strings.TrimPrefix(line, "---"))
			current = &document{tag: tag}
			body = nil
			continue
		}
		if current != nil {
			body = append(body, line)
		}
	}
	flush()
	return docs
}

func parseRecord(body string, kind support.RemarkKind) (support.Remark, bool) {
	argsIdx, argsFound := findFieldStart(body, "Args")
	head := body
	argsSection := ""
	if argsFound {
		head = body[:argsIdx]
		if colon := strings.IndexByte(body[argsIdx:], ':'); colon >= 0 {
			argsSection = body[argsIdx+colon+1:]
		}
	}

	pass, _ := extractField(head, "Pass")
	if pass == "" {
		return support.Remark{}, false
	}
	name, _ := extractField(head, "Name")
	fn, _ := extractField(head, "Function")
	loc := extractDebugLoc(head)

	args, message := extractArgs(argsSection)

	return support.Remark{
		Kind:         kind,
		PassName:     pass,
		RemarkName:   name,
		FunctionName: fn,
		Loc:          loc,
		Message:      message,
		Args:         args,
	}, true
}

// findFieldStart locates the first occurrence of fieldName+":" whose
// preceding byte is a newline, space, or '{' (or which is the first byte
// of the string) — a best-effort defense against matching "Field:" inside
// a message body, not a full YAML parser.
func findFieldStart(s, fieldName string) (int, bool) {
	needle := fieldName + ":"
	from := 0
	for {
		idx := strings.Index(s[from:], needle)
		if idx < 0 {
			return 0, false
		}
		idx += from
		if idx == 0 || isFieldBoundary(s[idx-1]) {
			return idx, true
		}
		from = idx + 1
	}
}

func isFieldBoundary(b byte) bool {
	return b == '\n' || b == ' ' || b == '{'
}

// extractField returns the trimmed, quote-stripped value following
// fieldName+":" up to the next newline, comma, or '}'.
func extractField(s, fieldName string) (string, bool) {
	idx, ok := findFieldStart(s, fieldName)
	if !ok {
		return "", false
	}
	rest := s[idx+len(fieldName)+1:]
	end := len(rest)
	for i, c := range rest {
		if c == '\n' || c == ',' || c == '}' {
			end = i
			break
		}
	}
	return unquote(strings.TrimSpace(rest[:end])), true
}

func unquote(v string) string {
	if len(v) >= 2 && v[0] == '\'' && v[len(v)-1] == '\'' {
		return v[1 : len(v)-1]
	}
	return v
}

func extractDebugLoc(s string) support.SourceLocation {
	idx, ok := findFieldStart(s, "DebugLoc")
	if !ok {
		return support.SourceLocation{}
	}
	open := strings.IndexByte(s[idx:], '{')
	if open < 0 {
		return support.SourceLocation{}
	}
	closeIdx := strings.IndexByte(s[idx+open:], '}')
	if closeIdx < 0 {
		return support.SourceLocation{}
	}
	inner := s[idx+open : idx+open+closeIdx+1]
	file, _ := extractField(inner, "File")
	line := parseUintField(inner, "Line")
	col := parseUintField(inner, "Column")
	return support.SourceLocation{File: file, Line: line, Column: col}
}

func parseUintField(s, field string) uint32 {
	v, ok := extractField(s, field)
	if !ok {
		return 0
	}
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}

// extractArgs walks the Args sequence, where each item is a "- Key: Value"
// line optionally followed by continuation fields (most commonly a nested
// DebugLoc for that specific argument). It returns one RemarkArgument per
// item (in emission order) and the reconstructed human message: the
// pieces are concatenated with a single space inserted iff neither the
// accumulated text ends with a space nor the incoming piece starts with
// one.
func extractArgs(section string) ([]support.RemarkArgument, string) {
	if strings.TrimSpace(section) == "" {
		return nil, ""
	}
	items := splitArgItems(section)

	var args []support.RemarkArgument
	var message strings.Builder
	for _, item := range items {
		key, value, ok := firstKeyValue(item)
		if !ok {
			continue
		}
		loc := extractDebugLoc(item)
		args = append(args, support.RemarkArgument{Key: key, Value: value, Loc: loc})
		appendPiece(&message, value)
	}
	return args, message.String()
}

func appendPiece(b *strings.Builder, piece string) {
	if piece == "" {
		return
	}
	current := b.String()
	if current != "" && !strings.HasSuffix(current, " ") && !strings.HasPrefix(piece, " ") {
		b.WriteByte(' ')
	}
	b.WriteString(piece)
}

// splitArgItems splits an Args section into its "- ..." list items, each
// including any indented continuation lines that belong to it.
func splitArgItems(section string) []string {
	lines := strings.Split(section, "\n")
	var items []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			items = append(items, strings.Join(current, "\n"))
		}
	}
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if strings.HasPrefix(trimmed, "- ") || trimmed == "-" {
			flush()
			current = []string{strings.TrimPrefix(trimmed, "-")}
			continue
		}
		if current != nil && strings.TrimSpace(line) != "" {
			current = append(current, line)
		}
	}
	flush()
	return items
}

// firstKeyValue extracts the first "Key: Value" pair in item — the
// argument's primary field, as opposed to a nested DebugLoc continuation.
func firstKeyValue(item string) (key, value string, ok bool) {
	trimmed := strings.TrimLeft(item, " ")
	colon := strings.IndexByte(trimmed, ':')
	if colon < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(trimmed[:colon])
	if key == "" || key == "DebugLoc" {
		return "", "", false
	}
	rest := trimmed[colon+1:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	return key, unquote(strings.TrimSpace(rest)), true
}
