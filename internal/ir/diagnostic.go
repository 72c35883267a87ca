package ir

import "aion/internal/support"

// SourceDiagKind mirrors the diagnostic-kind taxonomy a real pass manager
// emits, before it has been normalized into a support.Remark.
type SourceDiagKind uint8

const (
	SourceRemark SourceDiagKind = iota
	SourceMachineRemark
	SourceRemarkMissed
	SourceMachineRemarkMissed
	SourceRemarkAnalysis
	SourceMachineRemarkAnalysis
	SourceRemarkAnalysisAliasing
	SourceRemarkAnalysisFPCommute
	// SourceResourceLimit is a resource-limit notice (stack size, etc.),
	// not an optimization remark.
	SourceResourceLimit
)

// RawArg is one structured argument attached to a raw diagnostic, before
// normalization.
type RawArg struct {
	Key   string
	Value string
	Loc   support.SourceLocation
}

// RawDiagnostic is what the bundled pass pipeline (InstCombine, SimplifyCFG,
// ADCE) hands to a DiagnosticHandler. It is the engine's stand-in for the
// diagnostic object a real pass manager would construct.
type RawDiagnostic struct {
	Kind         SourceDiagKind
	PassName     string
	RemarkName   string
	FunctionName string
	Loc          support.SourceLocation
	// Header is the full printed diagnostic text including the
	// "<prefix>:" header the collector strips off to build Remark.Message
	//.
	Header string
	Args   []RawArg
	Hotness *float64

	// ResourceName/Size/Limit are populated only when Kind ==
	// SourceResourceLimit. Size/Limit are raw byte counts from the backend
	// and are not bounds-checked until the collector formats them.
	ResourceName string
	Size         int64
	Limit        int64
}

// DiagnosticHandler is the small capability interface a pass pipeline
// invokes for every diagnostic it produces. Implementations report whether
// they claimed the diagnostic; an unclaimed diagnostic falls through to the
// default handler unchanged.
type DiagnosticHandler interface {
	Handle(d RawDiagnostic) (claimed bool)
}

// NopHandler claims nothing. It is the default handler used when the
// orchestrator is not collecting remarks.
type NopHandler struct{}

func (NopHandler) Handle(RawDiagnostic) bool { return false }
