// Package session orchestrates the two supported analysis flows: a
// single-IR run through the bundled pass pipeline (Flow A), and a
// before/after IR pair paired with an externally produced record file
// (Flow B).
package session

import (
	"strings"

	"aion/internal/classify"
	"aion/internal/collector"
	"aion/internal/ir"
	"aion/internal/recordfile"
	"aion/internal/support"
)

// AnalysisSession is the complete result of one analysis run, independent
// of which flow produced it.
type AnalysisSession struct {
	BeforeIr           string
	AfterIr            string
	Remarks            []support.Remark
	Diff               *ir.ModuleDiff
	Diagnostics        []classify.DiagnosticResult
	PipelineUsed       string
	VerificationFailed bool
}

// Options is the complete documented input set for one analysis run.
// Exactly one of {IrText, a BeforeIr/AfterIr pair} must be supplied:
// IrText alone selects Flow A, BeforeIr and AfterIr together select Flow
// B. Supplying both, or only one half of the pair, is a configuration
// error.
type Options struct {
	// IrText, when non-empty, selects Flow A: a single IR module parsed,
	// cloned, and run through the pipeline described by Pipeline.
	IrText string

	// BeforeIr/AfterIr, when both non-empty, select Flow B: an
	// independently produced before/after pair diffed without running
	// any pass. Pipeline is ignored in this flow.
	BeforeIr string
	AfterIr  string
	// RecordPath, used only by Flow B, names an optional optimization
	// record file to parse and attach to the diff. Empty means no
	// remarks are attached.
	RecordPath string

	// Pipeline configures Flow A's pass pipeline: pass selection,
	// iteration cap, feature toggles, and per-iteration verification.
	Pipeline ir.PipelineOptions

	Classifier *classify.Classifier
}

// Run validates opts and dispatches to RunSingle or RunBeforeAfter. It is
// the single entry point that accepts the full documented input set and
// rejects a misconfigured combination with a ConfigError.
func Run(opts Options) (*AnalysisSession, error) {
	singleSet := opts.IrText != ""
	beforeSet := opts.BeforeIr != ""
	afterSet := opts.AfterIr != ""
	pairSet := beforeSet || afterSet

	switch {
	case singleSet && pairSet:
		return nil, support.NewConfigError("both a single IR input and a before/after pair were supplied; exactly one is required")
	case !singleSet && !pairSet:
		return nil, support.NewConfigError("no input supplied: provide either a single IR module or a before/after pair")
	case pairSet && (!beforeSet || !afterSet):
		return nil, support.NewConfigError("a before/after pair requires both BeforeIr and AfterIr")
	}

	if singleSet {
		return RunSingle(opts.IrText, opts.Classifier, opts.Pipeline)
	}
	return RunBeforeAfter(opts.BeforeIr, opts.AfterIr, opts.RecordPath, opts.Classifier)
}

// RunSingle implements Flow A: parse one IR module, clone it, run the
// pipeline described by pipeline on the clone while a Collector claims
// every diagnostic it emits, then diff and classify the result. A zero
// ir.PipelineOptions runs the bundled pipeline's baseline pass list to
// its default iteration cap.
func RunSingle(irText string, classifier *classify.Classifier, pipeline ir.PipelineOptions) (*AnalysisSession, error) {
	before, err := ir.ParseModule(irText)
	if err != nil {
		return nil, err
	}
	if err := ir.Verify(before); err != nil {
		return nil, err
	}
	ir.AssignSyntheticBlockNames(before)

	after := before.Clone()
	col := collector.New()
	passes, maxIterations := ir.ResolvePasses(pipeline)
	_, verifyFailedEarly := ir.RunPipeline(after, col, passes, maxIterations, pipeline.VerifyEachPass)

	verificationFailed := verifyFailedEarly
	if !verifyFailedEarly {
		if err := ir.Verify(after); err != nil {
			verificationFailed = true
		}
	}

	diff := ir.Diff(before, after)
	remarks := col.Snapshot()
	diagnostics := classifier.Classify(remarks, diff)

	var beforeText, afterText strings.Builder
	_ = before.Print(&beforeText)
	_ = after.Print(&afterText)

	pipelineUsed := strings.Join(passes, ",")
	if pipelineUsed == "" {
		pipelineUsed = "none"
	}

	return &AnalysisSession{
		BeforeIr:           beforeText.String(),
		AfterIr:            afterText.String(),
		Remarks:            remarks,
		Diff:               diff,
		Diagnostics:        diagnostics,
		PipelineUsed:       pipelineUsed,
		VerificationFailed: verificationFailed,
	}, nil
}

// RunBeforeAfter implements Flow B: parse an independently produced
// before/after IR pair and an optional record file, without running any
// pass. recordPath == "" means no remarks are attached, so Diagnostics
// will be empty — the caller gets the diff alone.
func RunBeforeAfter(beforeText, afterText, recordPath string, classifier *classify.Classifier) (*AnalysisSession, error) {
	before, err := ir.ParseModule(beforeText)
	if err != nil {
		return nil, err
	}
	after, err := ir.ParseModule(afterText)
	if err != nil {
		return nil, err
	}

	verificationFailed := false
	if err := ir.Verify(before); err != nil {
		verificationFailed = true
	}
	if err := ir.Verify(after); err != nil {
		verificationFailed = true
	}

	ir.AssignSyntheticBlockNames(before)
	ir.AssignSyntheticBlockNames(after)

	var remarks []support.Remark
	if recordPath != "" {
		remarks, err = recordfile.ParseFile(recordPath)
		if err != nil {
			return nil, err
		}
	}

	diff := ir.Diff(before, after)
	diagnostics := classifier.Classify(remarks, diff)

	var beforeOut, afterOut strings.Builder
	_ = before.Print(&beforeOut)
	_ = after.Print(&afterOut)

	return &AnalysisSession{
		BeforeIr:           beforeOut.String(),
		AfterIr:            afterOut.String(),
		Remarks:            remarks,
		Diff:               diff,
		Diagnostics:        diagnostics,
		VerificationFailed: verificationFailed,
	}, nil
}
