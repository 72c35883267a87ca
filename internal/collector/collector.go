// Package collector implements the live remark collector: it claims
// optimization diagnostics and resource-limit notices emitted by an
// in-process pass pipeline (internal/ir's DiagnosticHandler capability
// interface) and converts each into a support.Remark.
package collector

import (
	"strconv"
	"strings"
	"sync"

	"fortio.org/safecast"

	"aion/internal/ir"
	"aion/internal/support"
)

// Collector captures remarks emitted by a pass pipeline. It is
// multi-writer/single-reader: Handle may be called concurrently
// from several pass-manager goroutines, serialized under mu; Snapshot and
// the filtered views are meant to be called only after the pipeline has
// finished running.
type Collector struct {
	mu      sync.Mutex
	remarks []support.Remark
}

// New returns an installed, empty Collector.
func New() *Collector {
	return &Collector{}
}

// Handle implements ir.DiagnosticHandler. Every ir.SourceDiagKind is either
// an optimization remark or a resource-limit notice, so Handle claims every
// diagnostic it receives; a kind value outside the known remark set is
// converted as an Analysis remark.
func (c *Collector) Handle(d ir.RawDiagnostic) bool {
	remark, ok := convert(d)
	if !ok {
		return false
	}
	c.mu.Lock()
	c.remarks = append(c.remarks, remark)
	c.mu.Unlock()
	return true
}

// Snapshot returns an immutable ordered copy of every remark captured so
// far.
func (c *Collector) Snapshot() []support.Remark {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]support.Remark, len(c.remarks))
	copy(out, c.remarks)
	return out
}

// Missed returns the Missed-kind subset of the snapshot.
func (c *Collector) Missed() []support.Remark {
	return filterKind(c.Snapshot(), support.Missed)
}

// Applied returns the Applied-kind subset of the snapshot.
func (c *Collector) Applied() []support.Remark {
	return filterKind(c.Snapshot(), support.Applied)
}

// Analysis returns every Analysis-family remark (Analysis, AnalysisAliasing,
// AnalysisFpCommute) from the snapshot.
func (c *Collector) Analysis() []support.Remark {
	all := c.Snapshot()
	out := make([]support.Remark, 0, len(all))
	for _, r := range all {
		switch r.Kind {
		case support.Analysis, support.AnalysisAliasing, support.AnalysisFpCommute:
			out = append(out, r)
		}
	}
	return out
}

// ByFunction returns the subset of the snapshot whose FunctionName equals
// name.
func (c *Collector) ByFunction(name string) []support.Remark {
	all := c.Snapshot()
	out := make([]support.Remark, 0, len(all))
	for _, r := range all {
		if r.FunctionName == name {
			out = append(out, r)
		}
	}
	return out
}

// ByPass returns the subset of the snapshot whose PassName equals name.
func (c *Collector) ByPass(name string) []support.Remark {
	all := c.Snapshot()
	out := make([]support.Remark, 0, len(all))
	for _, r := range all {
		if r.PassName == name {
			out = append(out, r)
		}
	}
	return out
}

func filterKind(all []support.Remark, kind support.RemarkKind) []support.Remark {
	out := make([]support.Remark, 0, len(all))
	for _, r := range all {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

var sourceKindToRemarkKind = map[ir.SourceDiagKind]support.RemarkKind{
	ir.SourceRemark:                 support.Applied,
	ir.SourceMachineRemark:          support.Applied,
	ir.SourceRemarkMissed:           support.Missed,
	ir.SourceMachineRemarkMissed:    support.Missed,
	ir.SourceRemarkAnalysis:         support.Analysis,
	ir.SourceMachineRemarkAnalysis:  support.Analysis,
	ir.SourceRemarkAnalysisAliasing: support.AnalysisAliasing,
	ir.SourceRemarkAnalysisFPCommute: support.AnalysisFpCommute,
}

var machineSourceKinds = map[ir.SourceDiagKind]bool{
	ir.SourceMachineRemark:         true,
	ir.SourceMachineRemarkMissed:   true,
	ir.SourceMachineRemarkAnalysis: true,
}

func convert(d ir.RawDiagnostic) (support.Remark, bool) {
	if d.Kind == ir.SourceResourceLimit {
		return support.Remark{
			Kind:         support.Analysis,
			PassName:     "backend",
			RemarkName:   d.ResourceName,
			FunctionName: d.FunctionName,
			Loc:          d.Loc,
			Args: []support.RemarkArgument{
				{Key: "Size", Value: formatResourceCount(d.Size)},
				{Key: "Limit", Value: formatResourceCount(d.Limit)},
			},
		}, true
	}

	kind, known := sourceKindToRemarkKind[d.Kind]
	if !known {
		kind = support.Analysis
	}

	args := make([]support.RemarkArgument, len(d.Args))
	for i, a := range d.Args {
		args[i] = support.RemarkArgument{Key: a.Key, Value: a.Value, Loc: a.Loc}
	}

	return support.Remark{
		Kind:         kind,
		PassName:     d.PassName,
		RemarkName:   d.RemarkName,
		FunctionName: d.FunctionName,
		Loc:          d.Loc,
		Message:      stripHeader(d.Header),
		Args:         args,
		Hotness:      d.Hotness,
		IsMachine:    machineSourceKinds[d.Kind],
	}, true
}

// formatResourceCount renders a backend-reported byte count, checking it
// fits a uint32 the way the rest of the engine sizes its counters. A
// negative or oversized count (a malformed backend report) is rendered as
// "overflow" rather than silently truncated.
func formatResourceCount(n int64) string {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return "overflow"
	}
	return strconv.FormatUint(uint64(v), 10)
}

// stripHeader removes the leading "<prefix>:" the pass manager's printer
// prepends to a diagnostic's textual form.
func stripHeader(s string) string {
	if idx := strings.Index(s, ": "); idx >= 0 {
		return s[idx+2:]
	}
	return s
}
