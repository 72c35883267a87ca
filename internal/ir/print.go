package ir

import (
	"fmt"
	"io"
	"strings"
)

// Print writes the canonical textual form of the module. This is the form
// fed back into AnalysisSession.before_ir / after_ir and the form
// ParseModule reads back.
func (m *Module) Print(w io.Writer) error {
	if m == nil {
		return nil
	}
	for i, f := range m.Functions {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := printFunction(w, f); err != nil {
			return err
		}
	}
	return nil
}

// String renders the module via Print into a string.
func (m *Module) String() string {
	var sb strings.Builder
	_ = m.Print(&sb)
	return sb.String()
}

func printFunction(w io.Writer, f *Function) error {
	header := functionHeader(f)
	if f.IsDeclaration {
		_, err := fmt.Fprintf(w, "declare %s\n", header)
		return err
	}
	if _, err := fmt.Fprintf(w, "define %s {\n", header); err != nil {
		return err
	}
	for i, b := range f.Blocks {
		if _, err := fmt.Fprintf(w, "%s:\n", b.DisplayName(i)); err != nil {
			return err
		}
		for _, instr := range b.Instrs {
			line := "  " + instr.Text
			if instr.DebugLoc != "" {
				line += " !dbg " + instr.DebugLoc
			}
			if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

func functionHeader(f *Function) string {
	parts := make([]string, 0, 4)
	if f.Linkage != "" {
		parts = append(parts, f.Linkage)
	}
	if f.Visibility != "" {
		parts = append(parts, f.Visibility)
	}
	if f.CallingConv != "" {
		parts = append(parts, f.CallingConv)
	}
	parts = append(parts, f.Signature, "@"+f.Name)
	header := strings.Join(parts, " ")
	if len(f.Attributes) > 0 {
		header += " #" + strings.Join(f.Attributes, " #")
	}
	return header
}
