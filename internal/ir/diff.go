package ir

import (
	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"
)

// DiffKind classifies how a function, block, or instruction changed between
// two module snapshots.
type DiffKind uint8

const (
	// Unchanged means the entity is identical before and after.
	Unchanged DiffKind = iota
	// Added means the entity exists only in the after snapshot.
	Added
	// Removed means the entity exists only in the before snapshot.
	Removed
	// Modified means the entity exists in both but differs.
	Modified
)

func (k DiffKind) String() string {
	switch k {
	case Unchanged:
		return "Unchanged"
	case Added:
		return "Added"
	case Removed:
		return "Removed"
	case Modified:
		return "Modified"
	default:
		return "Unchanged"
	}
}

// InstructionRecord is the stable printed form of one IR instruction,
// captured on one side of a diff.
type InstructionRecord struct {
	Text       string
	LineIndex  uint32 // 1-based position within the block
	OpcodeName string
	DebugLoc   string
}

// InstructionDiff pairs at most one before/after InstructionRecord.
// Added/Removed populate exactly one side; Unchanged/Modified populate
// both.
type InstructionDiff struct {
	Kind   DiffKind
	Before *InstructionRecord
	After  *InstructionRecord
}

// BlockDiff is the diff of one basic block. Identity is the block's own
// name, or the synthetic "<bb.INDEX>" fallback.
type BlockDiff struct {
	Kind        DiffKind
	BlockName   string
	Instrs      []InstructionDiff
	BeforeCount int
	AfterCount  int
}

// FunctionDiff is the diff of one function.
type FunctionDiff struct {
	Kind             DiffKind
	FunctionName     string
	BeforeSignature  string
	AfterSignature   string
	Blocks           []BlockDiff
	BeforeBlockCount int
	AfterBlockCount  int
	BeforeInstrCount int
	AfterInstrCount  int
	AttributesChanged bool
	SignatureChanged  bool
}

// WasOptimized reports whether the function shrank in instruction count.
func (fd FunctionDiff) WasOptimized() bool {
	return fd.Kind == Modified && fd.AfterInstrCount < fd.BeforeInstrCount
}

// WasSimplified reports whether the function lost basic blocks.
func (fd FunctionDiff) WasSimplified() bool {
	return fd.Kind == Modified && fd.AfterBlockCount < fd.BeforeBlockCount
}

// WasInlined reports whether the function was removed entirely (the usual
// signature of inlining its one call site away).
func (fd FunctionDiff) WasInlined() bool {
	return fd.Kind == Removed
}

// ModuleDiff is the diff of an entire module: every function, in a
// deterministic order (before-order first, then after-only additions).
type ModuleDiff struct {
	Functions              []FunctionDiff
	AddedFunctions         int
	RemovedFunctions       int
	ModifiedFunctions      int
	UnchangedFunctions     int
	TotalBeforeInstructions int
	TotalAfterInstructions  int
}

// FuncDiffByName builds a name -> FunctionDiff index, used by the
// classifier to attach a diff to each remark.
func (md *ModuleDiff) FuncDiffByName() map[string]*FunctionDiff {
	out := make(map[string]*FunctionDiff, len(md.Functions))
	for i := range md.Functions {
		out[md.Functions[i].FunctionName] = &md.Functions[i]
	}
	return out
}

// Diff aligns two IR modules and produces a ModuleDiff. It
// never fails: a nil module on either side is treated as an empty module.
func Diff(before, after *Module) *ModuleDiff {
	if before == nil {
		before = &Module{}
	}
	if after == nil {
		after = &Module{}
	}

	beforeByName := make(map[string]*Function, len(before.Functions))
	beforeOrder := make([]string, 0, len(before.Functions))
	for _, f := range before.Functions {
		if _, dup := beforeByName[f.Name]; !dup {
			beforeOrder = append(beforeOrder, f.Name)
		}
		beforeByName[f.Name] = f
	}
	afterByName := make(map[string]*Function, len(after.Functions))
	for _, f := range after.Functions {
		afterByName[f.Name] = f
	}

	md := &ModuleDiff{}

	order := append([]string(nil), beforeOrder...)
	seen := make(map[string]bool, len(beforeOrder))
	for _, name := range beforeOrder {
		seen[name] = true
	}
	for _, f := range after.Functions {
		if !seen[f.Name] {
			order = append(order, f.Name)
			seen[f.Name] = true
		}
	}

	for _, name := range order {
		bf, hasB := beforeByName[name]
		af, hasA := afterByName[name]

		switch {
		case hasB && !hasA:
			fd := FunctionDiff{
				Kind:             Removed,
				FunctionName:     name,
				BeforeSignature:  bf.Signature,
				BeforeBlockCount: len(bf.Blocks),
				BeforeInstrCount: countInstrs(bf),
			}
			md.RemovedFunctions++
			md.TotalBeforeInstructions += fd.BeforeInstrCount
			md.Functions = append(md.Functions, fd)

		case !hasB && hasA:
			fd := FunctionDiff{
				Kind:            Added,
				FunctionName:    name,
				AfterSignature:  af.Signature,
				AfterBlockCount: len(af.Blocks),
				AfterInstrCount: countInstrs(af),
			}
			md.AddedFunctions++
			md.TotalAfterInstructions += fd.AfterInstrCount
			md.Functions = append(md.Functions, fd)

		default:
			fd := diffFunction(bf, af)
			switch fd.Kind {
			case Modified:
				md.ModifiedFunctions++
			default:
				md.UnchangedFunctions++
			}
			md.TotalBeforeInstructions += fd.BeforeInstrCount
			md.TotalAfterInstructions += fd.AfterInstrCount
			md.Functions = append(md.Functions, fd)
		}
	}

	return md
}

func countInstrs(f *Function) int {
	n := 0
	for _, b := range f.Blocks {
		n += len(b.Instrs)
	}
	return n
}

func diffFunction(bf, af *Function) FunctionDiff {
	fd := FunctionDiff{
		FunctionName:     bf.Name,
		BeforeSignature:  bf.Signature,
		AfterSignature:   af.Signature,
		BeforeBlockCount: len(bf.Blocks),
		AfterBlockCount:  len(af.Blocks),
		BeforeInstrCount: countInstrs(bf),
		AfterInstrCount:  countInstrs(af),
	}
	fd.SignatureChanged = bf.Signature != af.Signature
	fd.AttributesChanged = !attributesEqual(bf, af)

	// Both declarations, or one declaration one definition: no block-level
	// diff is possible, but the latter still counts as Modified.
	if bf.IsDeclaration && af.IsDeclaration {
		fd.Kind = Unchanged
		if fd.SignatureChanged || fd.AttributesChanged {
			fd.Kind = Modified
		}
		return fd
	}
	if bf.IsDeclaration != af.IsDeclaration {
		fd.Kind = Modified
		return fd
	}

	fd.Blocks = diffBlocks(bf, af)
	anyBlockChanged := false
	for _, bd := range fd.Blocks {
		if bd.Kind != Unchanged {
			anyBlockChanged = true
			break
		}
	}
	if anyBlockChanged || fd.SignatureChanged || fd.AttributesChanged {
		fd.Kind = Modified
	} else {
		fd.Kind = Unchanged
	}
	return fd
}

func diffBlocks(bf, af *Function) []BlockDiff {
	beforeNames := bf.BlockNames()
	afterNames := af.BlockNames()
	pairs := align(beforeNames, afterNames)

	out := make([]BlockDiff, 0, len(pairs))
	for _, p := range pairs {
		switch {
		case p.AI >= 0 && p.BI < 0:
			b := bf.Blocks[p.AI]
			out = append(out, BlockDiff{
				Kind:        Removed,
				BlockName:   beforeNames[p.AI],
				BeforeCount: len(b.Instrs),
			})
		case p.AI < 0 && p.BI >= 0:
			b := af.Blocks[p.BI]
			out = append(out, BlockDiff{
				Kind:       Added,
				BlockName:  afterNames[p.BI],
				AfterCount: len(b.Instrs),
			})
		default:
			bb := bf.Blocks[p.AI]
			ab := af.Blocks[p.BI]
			instrs := diffInstrs(bb, ab)
			kind := Unchanged
			for _, id := range instrs {
				if id.Kind != Unchanged {
					kind = Modified
					break
				}
			}
			out = append(out, BlockDiff{
				Kind:        kind,
				BlockName:   beforeNames[p.AI],
				Instrs:      instrs,
				BeforeCount: len(bb.Instrs),
				AfterCount:  len(ab.Instrs),
			})
		}
	}
	return out
}

func diffInstrs(bb, ab *Block) []InstructionDiff {
	beforeText := make([]string, len(bb.Instrs))
	for i, ins := range bb.Instrs {
		beforeText[i] = normalizeText(ins.Text)
	}
	afterText := make([]string, len(ab.Instrs))
	for i, ins := range ab.Instrs {
		afterText[i] = normalizeText(ins.Text)
	}

	pairs := align(beforeText, afterText)
	out := make([]InstructionDiff, 0, len(pairs))
	for _, p := range pairs {
		switch {
		case p.AI >= 0 && p.BI < 0:
			rec := toRecord(bb.Instrs[p.AI], p.AI)
			out = append(out, InstructionDiff{Kind: Removed, Before: &rec})
		case p.AI < 0 && p.BI >= 0:
			rec := toRecord(ab.Instrs[p.BI], p.BI)
			out = append(out, InstructionDiff{Kind: Added, After: &rec})
		default:
			beforeRec := toRecord(bb.Instrs[p.AI], p.AI)
			afterRec := toRecord(ab.Instrs[p.BI], p.BI)
			kind := Unchanged
			if beforeText[p.AI] != afterText[p.BI] {
				kind = Modified
			}
			out = append(out, InstructionDiff{Kind: kind, Before: &beforeRec, After: &afterRec})
		}
	}
	return out
}

func toRecord(ins Instr, index int) InstructionRecord {
	line, err := safecast.Conv[uint32](index + 1)
	if err != nil {
		line = 0
	}
	return InstructionRecord{
		Text:       ins.Text,
		LineIndex:  line,
		OpcodeName: ins.Opcode,
		DebugLoc:   ins.DebugLoc,
	}
}

// normalizeText applies Unicode NFC normalization before comparison, so
// combining-mark differences in identifiers or debug-location paths across
// toolchains don't register as spurious instruction diffs.
func normalizeText(s string) string {
	return norm.NFC.String(s)
}
