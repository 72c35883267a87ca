// Package ir defines the textual intermediate-representation model the
// engine diffs and diagnoses. It is intentionally minimal: the engine treats
// modules opaquely apart from the printed form, function iteration, block
// iteration and naming, instruction iteration and printing, and
// attribute/signature comparison — that is exactly the surface
// this package exposes.
package ir

import "strconv"

// Module is an ordered collection of functions. Iteration order is
// preserved from parse/construction order so diffing is deterministic.
type Module struct {
	Functions []*Function
}

// FuncByName returns the function with the given name, or nil.
func (m *Module) FuncByName(name string) *Function {
	if m == nil {
		return nil
	}
	for _, f := range m.Functions {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Clone returns a deep copy of the module, suitable for the orchestrator's
// "clone the module into an after copy" step.
func (m *Module) Clone() *Module {
	if m == nil {
		return nil
	}
	out := &Module{Functions: make([]*Function, len(m.Functions))}
	for i, f := range m.Functions {
		out.Functions[i] = f.clone()
	}
	return out
}

// Function is one function definition or declaration in a Module.
type Function struct {
	Name          string
	Signature     string // printed function-type string, e.g. "i32 (i32, i32)"
	CallingConv   string
	Linkage       string
	Visibility    string
	Attributes    []string // printed attribute list, order-preserving
	IsDeclaration bool
	Blocks        []*Block
}

func (f *Function) clone() *Function {
	if f == nil {
		return nil
	}
	out := &Function{
		Name:          f.Name,
		Signature:     f.Signature,
		CallingConv:   f.CallingConv,
		Linkage:       f.Linkage,
		Visibility:    f.Visibility,
		IsDeclaration: f.IsDeclaration,
	}
	out.Attributes = append(out.Attributes, f.Attributes...)
	out.Blocks = make([]*Block, len(f.Blocks))
	for i, b := range f.Blocks {
		out.Blocks[i] = b.clone()
	}
	return out
}

// attributesEqual compares calling convention, linkage, visibility, and the
// printed attribute list.
func attributesEqual(a, b *Function) bool {
	if a.CallingConv != b.CallingConv || a.Linkage != b.Linkage || a.Visibility != b.Visibility {
		return false
	}
	if len(a.Attributes) != len(b.Attributes) {
		return false
	}
	for i := range a.Attributes {
		if a.Attributes[i] != b.Attributes[i] {
			return false
		}
	}
	return true
}

// BlockNames returns the display name of every block: the block's own name
// if set, otherwise the synthetic "<bb.INDEX>" identifier derived from its
// positional index.
func (f *Function) BlockNames() []string {
	names := make([]string, len(f.Blocks))
	for i, b := range f.Blocks {
		names[i] = b.DisplayName(i)
	}
	return names
}

// Block is one basic block: a label plus an ordered instruction list.
type Block struct {
	Name   string // empty when unnamed; synthesized identity comes from index
	Instrs []Instr
}

func (b *Block) clone() *Block {
	if b == nil {
		return nil
	}
	out := &Block{Name: b.Name, Instrs: make([]Instr, len(b.Instrs))}
	copy(out.Instrs, b.Instrs)
	return out
}

// DisplayName returns the block's IR name if present, otherwise the
// synthetic "<bb.INDEX>" identifier.
func (b *Block) DisplayName(index int) string {
	if b.Name != "" {
		return b.Name
	}
	return syntheticBlockName(index)
}

// Instr is one IR instruction: its stable printed text plus structured
// metadata extracted from that text.
type Instr struct {
	Text     string // printed form, one leading whitespace run stripped
	Opcode   string
	DebugLoc string // "file:line:col", or "" if absent
}

func syntheticBlockName(index int) string {
	return "<bb." + strconv.Itoa(index) + ">"
}
