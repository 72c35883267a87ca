package classify

import (
	"aion/internal/ir"
	"aion/internal/support"
)

// OptimizationPattern is one rule in the classifier's database. The three
// substring selectors are independently wildcardable: an empty selector
// matches anything.
type OptimizationPattern struct {
	PassSubstr    string
	RemarkSubstr  string
	MessageSubstr string

	ShortReason         string
	DetailedExplanation string
	RootCause           string
	OptimizerIntent     string
	Suggestions         []FixSuggestion
	Severity            SeverityLevel
	EstimatedSpeedup    float64
}

// DiagnosticResult is the classifier's output for one non-Applied remark.
type DiagnosticResult struct {
	PassName            string
	FunctionName        string
	Location            support.SourceLocation
	ShortReason         string
	DetailedExplanation string
	RootCause           string
	OptimizerIntent     string
	Suggestions         []FixSuggestion
	Severity            SeverityLevel
	IrDiff              *ir.FunctionDiff
	EstimatedSpeedup    float64
	IsMachine           bool
}
