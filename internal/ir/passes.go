package ir

import (
	"strconv"
	"strings"

	"aion/internal/support"
)

// pureOpcodes lists opcodes ADCE may remove when their result is unused.
// Instructions outside this set (calls, stores, branches, ...) may have
// side effects and are never removed by dead-code elimination alone.
var pureOpcodes = map[string]bool{
	"add": true, "sub": true, "mul": true, "udiv": true, "sdiv": true,
	"and": true, "or": true, "xor": true, "shl": true, "lshr": true, "ashr": true,
	"icmp": true, "fadd": true, "fsub": true, "fmul": true, "fdiv": true, "fcmp": true,
	"bitcast": true, "sext": true, "zext": true, "trunc": true, "getelementptr": true,
	"load": true,
}

// OptLevel is an optimization-level hint, the same shorthand a real
// compiler driver exposes on its command line. It selects a default pass
// list and iteration cap when the caller doesn't name passes explicitly.
type OptLevel uint8

const (
	// OptDefault is the zero value: the pipeline's own baseline (the same
	// pass list and cap as O2) is used when nothing else is requested.
	OptDefault OptLevel = iota
	// O0 disables the pipeline entirely; the module passes through
	// unmodified.
	O0
	// O1 runs a conservative subset: instruction combination and
	// dead-code elimination, skipping control-flow simplification.
	O1
	// O2 runs every bundled pass to a four-iteration fixpoint cap.
	O2
	// O3 runs the same passes as O2 with a higher iteration cap.
	O3
	// Os optimizes for size: the same passes as O2, capped to a single
	// iteration so the pipeline doesn't keep folding past the first
	// iteration.
	Os
	// Oz is Os's more aggressive sibling; this pipeline has no
	// size-specific passes to add, so it behaves identically to Os.
	Oz
)

func (l OptLevel) String() string {
	switch l {
	case O0:
		return "O0"
	case O1:
		return "O1"
	case O2:
		return "O2"
	case O3:
		return "O3"
	case Os:
		return "Os"
	case Oz:
		return "Oz"
	default:
		return "O2"
	}
}

// defaultPassesForLevel returns the pass list and default iteration cap an
// optimization-level hint selects.
func defaultPassesForLevel(level OptLevel) (passes []string, maxIterations int) {
	switch level {
	case O0:
		return nil, 1
	case O1:
		return []string{"instcombine", "adce"}, 4
	case O3:
		return []string{"instcombine", "simplifycfg", "adce"}, 8
	case Os, Oz:
		return []string{"instcombine", "simplifycfg", "adce"}, 1
	default: // O2, OptDefault
		return []string{"instcombine", "simplifycfg", "adce"}, 4
	}
}

// PipelineOptions configures a pipeline run: which passes to run and in
// what order, how many fixpoint iterations to allow, and whether to
// verify module structure after every iteration instead of only at the
// end.
type PipelineOptions struct {
	// OptLevel selects the default pass list and iteration cap when
	// Passes is empty.
	OptLevel OptLevel
	// Passes, when non-empty, names the exact pass sequence to run each
	// iteration, overriding OptLevel's default list.
	Passes []string
	// MaxIterations overrides the opt level's default cap when > 0.
	MaxIterations int
	// DisableVectorization drops any vectorizer pass name from the
	// selected list before running it. The three bundled passes
	// (instcombine, simplifycfg, adce) include no vectorizer, so this is
	// currently a no-op against the default pipeline; it takes effect
	// only against an explicit Passes list that names one.
	DisableVectorization bool
	// DisableUnrolling drops any loop-unroller pass name from the
	// selected list, for the same reason DisableVectorization is
	// currently a no-op against the default pipeline.
	DisableUnrolling bool
	// VerifyEachPass verifies module structure after every iteration
	// instead of only once at the end, stopping the pipeline at the
	// first iteration that breaks it.
	VerifyEachPass bool
}

// ResolvePasses applies opt.OptLevel, opt.Passes, and the feature toggles
// to produce the concrete pass list and iteration cap RunPipeline should
// use.
func ResolvePasses(opt PipelineOptions) (passes []string, maxIterations int) {
	passes, defaultCap := defaultPassesForLevel(opt.OptLevel)
	if len(opt.Passes) > 0 {
		passes = opt.Passes
	}
	passes = applyFeatureToggles(passes, opt.DisableVectorization, opt.DisableUnrolling)
	maxIterations = opt.MaxIterations
	if maxIterations <= 0 {
		maxIterations = defaultCap
	}
	return passes, maxIterations
}

func applyFeatureToggles(passes []string, disableVectorization, disableUnrolling bool) []string {
	if !disableVectorization && !disableUnrolling {
		return passes
	}
	out := make([]string, 0, len(passes))
	for _, p := range passes {
		if disableVectorization && (p == "loopvectorize" || p == "slpvectorize") {
			continue
		}
		if disableUnrolling && p == "unroll" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// RunPipeline runs the named passes, in order, once per iteration, until
// no pass in a full iteration reports progress or maxIterations is
// reached. When verifyEachPass is set, it verifies module structure
// after every iteration and stops immediately on the first failure,
// reporting which iteration broke verification.
func RunPipeline(m *Module, handler DiagnosticHandler, passes []string, maxIterations int, verifyEachPass bool) (iterationsRun int, verificationFailed bool) {
	if handler == nil {
		handler = NopHandler{}
	}
	if maxIterations <= 0 {
		maxIterations = 4
	}
	for i := 0; i < maxIterations; i++ {
		changed := false
		for _, name := range passes {
			switch name {
			case "instcombine":
				changed = InstCombine(m, handler) || changed
			case "simplifycfg":
				changed = SimplifyCFG(m, handler) || changed
			case "adce":
				changed = ADCE(m, handler) || changed
			}
		}
		iterationsRun = i + 1
		if verifyEachPass {
			if err := Verify(m); err != nil {
				return iterationsRun, true
			}
		}
		if !changed {
			break
		}
	}
	return iterationsRun, false
}

// RunDefaultPipeline runs the bundled pipeline's baseline pass list
// (instruction combination, control-flow simplification, aggressive
// dead-code elimination) to a fixpoint, each reporting through handler.
// It is equivalent to RunPipeline with PipelineOptions{}.
func RunDefaultPipeline(m *Module, handler DiagnosticHandler, maxIterations int) {
	passes, _ := defaultPassesForLevel(OptDefault)
	RunPipeline(m, handler, passes, maxIterations, false)
}

// InstCombine folds binary operations over two integer-literal operands
// into their literal result. It reports a Missed remark when a fold looks
// applicable but one operand is not a literal (the pass has no constant
// tracking, so it cannot see through an intervening call or load).
func InstCombine(m *Module, handler DiagnosticHandler) bool {
	changed := false
	for _, f := range m.Functions {
		for _, b := range f.Blocks {
			for i := range b.Instrs {
				ins := &b.Instrs[i]
				if folded, ok := foldBinaryLiteral(ins.Text); ok {
					ins.Text = folded
					ins.Opcode = opcodeOf(folded)
					changed = true
					continue
				}
				if isBinaryOpMissingFold(ins.Text) {
					handler.Handle(RawDiagnostic{
						Kind:         SourceRemarkMissed,
						PassName:     "instcombine",
						RemarkName:   "FoldBlocked",
						FunctionName: f.Name,
						Loc:          locFromDebugLoc(ins.DebugLoc),
						Header:       "instcombine: operand is not a literal constant",
						Args: []RawArg{
							{Key: "Instr", Value: ins.Text},
						},
					})
				}
			}
		}
	}
	return changed
}

// SimplifyCFG removes trivial blocks that contain only an unconditional
// branch, redirecting any predecessor that targeted them straight to the
// branch's destination. It reports a Missed remark when a block has more
// than one predecessor, since merging would require duplicating the block.
func SimplifyCFG(m *Module, handler DiagnosticHandler) bool {
	changed := false
	for _, f := range m.Functions {
		for {
			idx, target, ok := findTrivialForwardBlock(f)
			if !ok {
				break
			}
			name := f.Blocks[idx].Name
			preds := predecessorCount(f, name)
			if preds > 1 {
				handler.Handle(RawDiagnostic{
					Kind:         SourceRemarkMissed,
					PassName:     "simplifycfg",
					RemarkName:   "BlockNotMerged",
					FunctionName: f.Name,
					Header:       "simplifycfg: block has multiple predecessors",
					Args: []RawArg{
						{Key: "Block", Value: name},
					},
				})
				break
			}
			redirectBranches(f, name, target)
			f.Blocks = append(f.Blocks[:idx], f.Blocks[idx+1:]...)
			changed = true
		}
	}
	return changed
}

// ADCE removes pure instructions whose destination register is never
// referenced again in the function. It reports a Missed remark for
// unreferenced results it cannot remove because the opcode may have side
// effects (calls, stores, atomics).
func ADCE(m *Module, handler DiagnosticHandler) bool {
	changed := false
	for _, f := range m.Functions {
		uses := collectUses(f)
		for _, b := range f.Blocks {
			kept := b.Instrs[:0:0]
			for _, ins := range b.Instrs {
				dst, hasDst := assignedName(ins.Text)
				if hasDst && uses[dst] == 0 {
					if pureOpcodes[ins.Opcode] {
						changed = true
						continue
					}
					handler.Handle(RawDiagnostic{
						Kind:         SourceRemarkMissed,
						PassName:     "adce",
						RemarkName:   "NotDeleted",
						FunctionName: f.Name,
						Loc:          locFromDebugLoc(ins.DebugLoc),
						Header:       "adce: instruction has side effects",
						Args: []RawArg{
							{Key: "Instr", Value: ins.Text},
						},
					})
				}
				kept = append(kept, ins)
			}
			b.Instrs = kept
		}
	}
	return changed
}

func foldBinaryLiteral(text string) (string, bool) {
	dst, op, lhs, rhs, ok := parseBinary(text)
	if !ok {
		return "", false
	}
	l, lok := parseIntLiteral(lhs)
	r, rok := parseIntLiteral(rhs)
	if !lok || !rok {
		return "", false
	}
	var result int64
	switch op {
	case "add":
		result = l + r
	case "sub":
		result = l - r
	case "mul":
		result = l * r
	default:
		return "", false
	}
	return dst + " = " + op + " " + strconv.FormatInt(result, 10), true
}

func isBinaryOpMissingFold(text string) bool {
	_, op, lhs, rhs, ok := parseBinary(text)
	if !ok {
		return false
	}
	if op != "add" && op != "sub" && op != "mul" {
		return false
	}
	_, lok := parseIntLiteral(lhs)
	_, rok := parseIntLiteral(rhs)
	return !(lok && rok)
}

// parseBinary recognizes "%dst = op lhs, rhs" and returns its four parts.
func parseBinary(text string) (dst, op, lhs, rhs string, ok bool) {
	eq := strings.Index(text, " = ")
	if eq < 0 {
		return "", "", "", "", false
	}
	dst = strings.TrimSpace(text[:eq])
	rest := strings.TrimSpace(text[eq+3:])
	fields := strings.SplitN(rest, " ", 2)
	if len(fields) != 2 {
		return "", "", "", "", false
	}
	op = fields[0]
	operands := strings.SplitN(fields[1], ",", 2)
	if len(operands) != 2 {
		return "", "", "", "", false
	}
	lhs = strings.TrimSpace(operands[0])
	rhs = strings.TrimSpace(operands[1])
	return dst, op, lhs, rhs, true
}

func parseIntLiteral(operand string) (int64, bool) {
	fields := strings.Fields(operand)
	last := operand
	if len(fields) > 0 {
		last = fields[len(fields)-1]
	}
	var n int64
	neg := strings.HasPrefix(last, "-")
	digits := strings.TrimPrefix(last, "-")
	if digits == "" {
		return 0, false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int64(c-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}

// assignedName returns the "%name" a "%name = ..." instruction defines.
func assignedName(text string) (string, bool) {
	eq := strings.Index(text, " = ")
	if eq < 0 {
		return "", false
	}
	name := strings.TrimSpace(text[:eq])
	if !strings.HasPrefix(name, "%") {
		return "", false
	}
	return name, true
}

// collectUses counts occurrences of every "%name" token across a function's
// instructions and terminators, excluding the defining occurrence itself.
func collectUses(f *Function) map[string]int {
	uses := make(map[string]int)
	for _, b := range f.Blocks {
		for _, ins := range b.Instrs {
			text := ins.Text
			if _, hasDst := assignedName(ins.Text); hasDst {
				eq := strings.Index(text, " = ")
				text = text[eq+3:]
			}
			for _, tok := range tokenize(text) {
				if strings.HasPrefix(tok, "%") {
					uses[tok]++
				}
			}
		}
	}
	return uses
}

func tokenize(text string) []string {
	text = strings.NewReplacer(",", " ", "(", " ", ")", " ").Replace(text)
	return strings.Fields(text)
}

// findTrivialForwardBlock finds a block whose only instruction is an
// unconditional "br label %X" and is not the function's entry block.
func findTrivialForwardBlock(f *Function) (index int, target string, ok bool) {
	for i, b := range f.Blocks {
		if i == 0 || len(b.Instrs) != 1 {
			continue
		}
		if t, isBr := unconditionalBranchTarget(b.Instrs[0].Text); isBr {
			return i, t, true
		}
	}
	return 0, "", false
}

func unconditionalBranchTarget(text string) (string, bool) {
	const prefix = "br label %"
	if !strings.HasPrefix(text, prefix) {
		return "", false
	}
	return "%" + strings.TrimSpace(strings.TrimPrefix(text, prefix)), true
}

func predecessorCount(f *Function, blockName string) int {
	count := 0
	want := strings.TrimPrefix(blockName, "%")
	for _, b := range f.Blocks {
		for _, ins := range b.Instrs {
			if strings.Contains(ins.Text, "label %"+want) {
				count++
			}
		}
	}
	return count
}

func redirectBranches(f *Function, from, to string) {
	fromName := strings.TrimPrefix(from, "%")
	toName := strings.TrimPrefix(to, "%")
	for _, b := range f.Blocks {
		for i := range b.Instrs {
			b.Instrs[i].Text = strings.ReplaceAll(b.Instrs[i].Text, "label %"+fromName, "label %"+toName)
		}
	}
}

// locFromDebugLoc parses a "file:line:col" debug-location string into a
// SourceLocation, returning the zero value when s is empty or malformed.
func locFromDebugLoc(s string) support.SourceLocation {
	if s == "" {
		return support.SourceLocation{}
	}
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return support.SourceLocation{}
	}
	line, lerr := strconv.ParseUint(parts[1], 10, 32)
	col, cerr := strconv.ParseUint(parts[2], 10, 32)
	if lerr != nil || cerr != nil {
		return support.SourceLocation{}
	}
	return support.SourceLocation{File: parts[0], Line: uint32(line), Column: uint32(col)}
}
