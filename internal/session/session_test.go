package session

import (
	"strings"
	"testing"

	"aion/internal/classify"
	"aion/internal/ir"
	"aion/internal/support"
)

func TestRunSingle_FoldsConstantAndEliminatesDeadAdd(t *testing.T) {
	src := "define i32 () @f {\n" +
		"entry:\n" +
		"  %0 = add 2, 3\n" +
		"  %1 = add 1, 1\n" +
		"  ret i32 %0\n" +
		"}\n"
	classifier := classify.NewClassifier()
	s, err := RunSingle(src, classifier, ir.PipelineOptions{})
	if err != nil {
		t.Fatalf("RunSingle: %v", err)
	}
	if s.VerificationFailed {
		t.Fatalf("expected verification to succeed")
	}
	if !strings.Contains(s.AfterIr, "%0 = add 5") {
		t.Fatalf("expected the literal fold to survive into after_ir, got:\n%s", s.AfterIr)
	}
	if strings.Contains(s.AfterIr, "%1") {
		t.Fatalf("expected the dead %%1 add to be eliminated, got:\n%s", s.AfterIr)
	}
	if s.Diff == nil {
		t.Fatalf("expected a non-nil diff")
	}
	fd := s.Diff.FuncDiffByName()["f"]
	if fd == nil || fd.Kind.String() != "Modified" {
		t.Fatalf("expected f to be Modified, got %+v", fd)
	}
	if s.PipelineUsed == "" {
		t.Fatalf("expected PipelineUsed to be set for Flow A")
	}
}

func TestRunSingle_RejectsMalformedIr(t *testing.T) {
	classifier := classify.NewClassifier()
	if _, err := RunSingle("not valid ir at all {\n", classifier, ir.PipelineOptions{}); err == nil {
		t.Fatalf("expected an error for malformed IR")
	}
}

func TestRunSingle_O0SkipsThePipeline(t *testing.T) {
	src := "define i32 () @f {\nentry:\n  %0 = add 2, 3\n  ret i32 %0\n}\n"
	classifier := classify.NewClassifier()
	s, err := RunSingle(src, classifier, ir.PipelineOptions{OptLevel: ir.O0})
	if err != nil {
		t.Fatalf("RunSingle: %v", err)
	}
	if !strings.Contains(s.AfterIr, "%0 = add 2, 3") {
		t.Fatalf("expected O0 to leave the fold untouched, got:\n%s", s.AfterIr)
	}
	if s.PipelineUsed != "none" {
		t.Fatalf("expected PipelineUsed %q, got %q", "none", s.PipelineUsed)
	}
}

func TestRunSingle_ExplicitPassesOverrideOptLevel(t *testing.T) {
	src := "define i32 () @f {\nentry:\n  %0 = add 2, 3\n  ret i32 %0\n}\n"
	classifier := classify.NewClassifier()
	s, err := RunSingle(src, classifier, ir.PipelineOptions{
		OptLevel: ir.O0,
		Passes:   []string{"instcombine"},
	})
	if err != nil {
		t.Fatalf("RunSingle: %v", err)
	}
	if !strings.Contains(s.AfterIr, "%0 = add 5") {
		t.Fatalf("expected an explicit Passes list to override O0, got:\n%s", s.AfterIr)
	}
	if s.PipelineUsed != "instcombine" {
		t.Fatalf("expected PipelineUsed %q, got %q", "instcombine", s.PipelineUsed)
	}
}

func TestRun_RejectsBothInputsSupplied(t *testing.T) {
	classifier := classify.NewClassifier()
	_, err := Run(Options{
		IrText:     "define void () @f {\nentry:\n  ret void\n}\n",
		BeforeIr:   "define void () @f {\nentry:\n  ret void\n}\n",
		AfterIr:    "define void () @f {\nentry:\n  ret void\n}\n",
		Classifier: classifier,
	})
	assertConfigError(t, err)
}

func TestRun_RejectsNoInputSupplied(t *testing.T) {
	classifier := classify.NewClassifier()
	_, err := Run(Options{Classifier: classifier})
	assertConfigError(t, err)
}

func TestRun_RejectsHalfOfPair(t *testing.T) {
	classifier := classify.NewClassifier()
	_, err := Run(Options{
		BeforeIr:   "define void () @f {\nentry:\n  ret void\n}\n",
		Classifier: classifier,
	})
	assertConfigError(t, err)
}

func TestRun_DispatchesToFlowA(t *testing.T) {
	classifier := classify.NewClassifier()
	s, err := Run(Options{
		IrText:     "define i32 () @f {\nentry:\n  %0 = add 2, 3\n  ret i32 %0\n}\n",
		Classifier: classifier,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.PipelineUsed == "" {
		t.Fatalf("expected Flow A's PipelineUsed to be set")
	}
}

func TestRun_DispatchesToFlowB(t *testing.T) {
	classifier := classify.NewClassifier()
	s, err := Run(Options{
		BeforeIr:   "define void () @bar {\nentry:\n  ret void\n}\ndefine void () @foo {\nentry:\n  ret void\n}\n",
		AfterIr:    "define void () @foo {\nentry:\n  ret void\n}\n",
		Classifier: classifier,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.PipelineUsed != "" {
		t.Fatalf("expected Flow B's PipelineUsed to stay empty, got %q", s.PipelineUsed)
	}
}

func assertConfigError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected a ConfigError")
	}
	se, ok := err.(*support.Error)
	if !ok {
		t.Fatalf("expected *support.Error, got %T", err)
	}
	if se.Kind != support.ConfigErrorKind {
		t.Fatalf("expected ConfigErrorKind, got %v", se.Kind)
	}
}

func TestRunBeforeAfter_NoRecordFileYieldsDiffOnly(t *testing.T) {
	before := "define void () @bar {\nentry:\n  ret void\n}\ndefine void () @foo {\nentry:\n  ret void\n}\n"
	after := "define void () @foo {\nentry:\n  ret void\n}\n"
	classifier := classify.NewClassifier()

	s, err := RunBeforeAfter(before, after, "", classifier)
	if err != nil {
		t.Fatalf("RunBeforeAfter: %v", err)
	}
	if len(s.Diagnostics) != 0 {
		t.Fatalf("expected no diagnostics without a record file, got %d", len(s.Diagnostics))
	}
	fd := s.Diff.FuncDiffByName()["bar"]
	if fd == nil || !fd.WasInlined() {
		t.Fatalf("expected bar to have been removed (inlined away), got %+v", fd)
	}
	if s.Diff.RemovedFunctions != 1 {
		t.Fatalf("expected 1 removed function, got %d", s.Diff.RemovedFunctions)
	}
}
