package recordfile

import (
	"testing"

	"aion/internal/support"
)

// TestParse_LoopVectorizeMissed reconstructs the worked "loop not
// vectorized" record document: two Args pieces that must be joined into one
// message with exactly one space between them. The second piece already
// starts with a space, so the join inserts none of its own.
func TestParse_LoopVectorizeMissed(t *testing.T) {
	doc := "--- !Missed\n" +
		"Pass:            loop-vectorize\n" +
		"Name:            MissedDetails\n" +
		"Function:        f\n" +
		"Args:\n" +
		"  - String:          'loop not'\n" +
		"  - String:          ' vectorized'\n" +
		"...\n"

	remarks := Parse(doc)
	if len(remarks) != 1 {
		t.Fatalf("expected 1 remark, got %d", len(remarks))
	}
	r := remarks[0]
	if r.Kind != support.Missed {
		t.Fatalf("expected Missed, got %v", r.Kind)
	}
	if r.PassName != "loop-vectorize" {
		t.Fatalf("expected pass loop-vectorize, got %q", r.PassName)
	}
	if r.FunctionName != "f" {
		t.Fatalf("expected function f, got %q", r.FunctionName)
	}
	if r.Message != "loop not vectorized" {
		t.Fatalf("expected message %q, got %q", "loop not vectorized", r.Message)
	}
	if len(r.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(r.Args))
	}
}

func TestParse_DebugLocAttachesToArgAndRecord(t *testing.T) {
	doc := "--- !Analysis\n" +
		"Pass:            inline\n" +
		"Name:            Inlined\n" +
		"Function:        caller\n" +
		"DebugLoc:        { File: a.c, Line: 12, Column: 3 }\n" +
		"Args:\n" +
		"  - String:          'inlined call to '\n" +
		"  - Callee:          callee\n" +
		"    DebugLoc:        { File: a.c, Line: 5, Column: 1 }\n" +
		"...\n"

	remarks := Parse(doc)
	if len(remarks) != 1 {
		t.Fatalf("expected 1 remark, got %d", len(remarks))
	}
	r := remarks[0]
	if r.Loc.File != "a.c" || r.Loc.Line != 12 || r.Loc.Column != 3 {
		t.Fatalf("unexpected record DebugLoc: %+v", r.Loc)
	}
	if len(r.Args) != 2 {
		t.Fatalf("expected 2 args, got %d: %+v", len(r.Args), r.Args)
	}
	calleeLoc := r.Args[1].Loc
	if calleeLoc.File != "a.c" || calleeLoc.Line != 5 {
		t.Fatalf("expected the second arg's own DebugLoc, got %+v", calleeLoc)
	}
}

func TestParse_SkipsUnknownTag(t *testing.T) {
	doc := "--- !SomethingElse\n" +
		"Pass: x\n" +
		"...\n" +
		"--- !Passed\n" +
		"Pass:     inline\n" +
		"Name:     Inlined\n" +
		"Function: f\n" +
		"...\n"
	remarks := Parse(doc)
	if len(remarks) != 1 {
		t.Fatalf("expected the unknown-tag record to be skipped, got %d remarks", len(remarks))
	}
	if remarks[0].Kind != support.Applied {
		t.Fatalf("expected Applied, got %v", remarks[0].Kind)
	}
}

func TestParse_SkipsRecordWithoutPass(t *testing.T) {
	doc := "--- !Missed\n" +
		"Name: x\n" +
		"...\n"
	if remarks := Parse(doc); len(remarks) != 0 {
		t.Fatalf("expected 0 remarks for a record missing Pass, got %d", len(remarks))
	}
}
