package collector

import (
	"testing"

	"golang.org/x/sync/errgroup"

	"aion/internal/ir"
	"aion/internal/support"
)

func TestCollector_ConvertsOptimizationRemark(t *testing.T) {
	c := New()
	claimed := c.Handle(ir.RawDiagnostic{
		Kind:         ir.SourceRemarkMissed,
		PassName:     "inline",
		RemarkName:   "NotInlined",
		FunctionName: "f",
		Header:       "inline: noinline attribute present",
	})
	if !claimed {
		t.Fatalf("expected the collector to claim an optimization remark")
	}
	snap := c.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("expected 1 remark, got %d", len(snap))
	}
	if snap[0].Kind != support.Missed {
		t.Fatalf("expected Missed, got %v", snap[0].Kind)
	}
	if snap[0].Message != "noinline attribute present" {
		t.Fatalf("expected header stripped, got %q", snap[0].Message)
	}
}

func TestCollector_ConvertsResourceLimit(t *testing.T) {
	c := New()
	claimed := c.Handle(ir.RawDiagnostic{
		Kind:         ir.SourceResourceLimit,
		FunctionName: "f",
		ResourceName: "StackSize",
		Size:         2048,
		Limit:        1024,
	})
	if !claimed {
		t.Fatalf("expected the collector to claim a resource-limit notice")
	}
	snap := c.Snapshot()
	if snap[0].PassName != "backend" || snap[0].RemarkName != "StackSize" {
		t.Fatalf("unexpected synthesized remark: %+v", snap[0])
	}
	size, ok := snap[0].Arg("Size")
	if !ok || size != "2048" {
		t.Fatalf("expected Size arg 2048, got %q (ok=%v)", size, ok)
	}
}

func TestCollector_ResourceLimitOverflowIsReportedNotTruncated(t *testing.T) {
	c := New()
	c.Handle(ir.RawDiagnostic{
		Kind:         ir.SourceResourceLimit,
		FunctionName: "f",
		ResourceName: "StackSize",
		Size:         int64(1) << 40,
		Limit:        1024,
	})
	snap := c.Snapshot()
	size, ok := snap[0].Arg("Size")
	if !ok || size != "overflow" {
		t.Fatalf("expected Size arg \"overflow\" for an out-of-range count, got %q (ok=%v)", size, ok)
	}
}

func TestCollector_FilterHelpers(t *testing.T) {
	c := New()
	c.Handle(ir.RawDiagnostic{Kind: ir.SourceRemarkMissed, PassName: "inline", FunctionName: "f"})
	c.Handle(ir.RawDiagnostic{Kind: ir.SourceRemark, PassName: "inline", FunctionName: "f"})
	c.Handle(ir.RawDiagnostic{Kind: ir.SourceRemarkAnalysis, PassName: "loop-vectorize", FunctionName: "g"})

	if len(c.Missed()) != 1 {
		t.Fatalf("expected 1 missed remark, got %d", len(c.Missed()))
	}
	if len(c.Applied()) != 1 {
		t.Fatalf("expected 1 applied remark, got %d", len(c.Applied()))
	}
	if len(c.Analysis()) != 1 {
		t.Fatalf("expected 1 analysis remark, got %d", len(c.Analysis()))
	}
	if len(c.ByFunction("f")) != 2 {
		t.Fatalf("expected 2 remarks for function f, got %d", len(c.ByFunction("f")))
	}
	if len(c.ByPass("loop-vectorize")) != 1 {
		t.Fatalf("expected 1 remark for pass loop-vectorize, got %d", len(c.ByPass("loop-vectorize")))
	}
}

// TestCollector_ConcurrentHandle exercises the mutex-serialized append path
// from many goroutines at once, matching the multi-writer/single-reader
// model the collector is specified to support.
func TestCollector_ConcurrentHandle(t *testing.T) {
	c := New()
	var g errgroup.Group
	const writers = 64
	for i := 0; i < writers; i++ {
		g.Go(func() error {
			c.Handle(ir.RawDiagnostic{Kind: ir.SourceRemarkMissed, PassName: "adce", FunctionName: "f"})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("errgroup.Wait: %v", err)
	}
	if got := len(c.Snapshot()); got != writers {
		t.Fatalf("expected %d remarks, got %d", writers, got)
	}
}
