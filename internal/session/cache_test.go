package session

import (
	"testing"

	"aion/internal/classify"
	"aion/internal/ir"
)

func TestMarshalUnmarshalCache_RoundTrip(t *testing.T) {
	src := "define i32 () @f {\nentry:\n  %0 = add 2, 3\n  ret i32 %0\n}\n"
	classifier := classify.NewClassifier()
	s, err := RunSingle(src, classifier, ir.PipelineOptions{})
	if err != nil {
		t.Fatalf("RunSingle: %v", err)
	}

	data, err := MarshalCache(s)
	if err != nil {
		t.Fatalf("MarshalCache: %v", err)
	}
	got, err := UnmarshalCache(data)
	if err != nil {
		t.Fatalf("UnmarshalCache: %v", err)
	}
	if got.AfterIr != s.AfterIr {
		t.Fatalf("after_ir mismatch after round trip:\nwant:\n%s\ngot:\n%s", s.AfterIr, got.AfterIr)
	}
	if got.PipelineUsed != s.PipelineUsed {
		t.Fatalf("pipeline_used mismatch: want %q got %q", s.PipelineUsed, got.PipelineUsed)
	}
	if len(got.Diagnostics) != len(s.Diagnostics) {
		t.Fatalf("diagnostics length mismatch: want %d got %d", len(s.Diagnostics), len(got.Diagnostics))
	}
}
