package ir

import (
	"fmt"

	"aion/internal/support"
)

// Verify performs the structural checks the orchestrator runs before and
// optionally after the pass pipeline. It does
// not attempt anything as deep as a real IR verifier; it checks the
// invariants this package's differ and printer depend on: unique function
// names and unique named blocks per function.
func Verify(m *Module) error {
	if m == nil {
		return support.NewVerifyError("nil module")
	}
	seenFunc := make(map[string]bool, len(m.Functions))
	for _, f := range m.Functions {
		if f == nil {
			return support.NewVerifyError("nil function in module")
		}
		if f.Name == "" {
			return support.NewVerifyError("function with empty name")
		}
		if seenFunc[f.Name] {
			return support.NewVerifyError(fmt.Sprintf("duplicate function name %q", f.Name))
		}
		seenFunc[f.Name] = true

		if f.IsDeclaration && len(f.Blocks) > 0 {
			return support.NewVerifyError(fmt.Sprintf("function %q: declaration has a body", f.Name))
		}

		seenBlock := make(map[string]bool, len(f.Blocks))
		for _, b := range f.Blocks {
			if b.Name == "" {
				continue
			}
			if seenBlock[b.Name] {
				return support.NewVerifyError(fmt.Sprintf("function %q: duplicate block name %q", f.Name, b.Name))
			}
			seenBlock[b.Name] = true
		}
	}
	return nil
}
