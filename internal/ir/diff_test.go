package ir

import "testing"

func mustParse(t *testing.T, src string) *Module {
	t.Helper()
	m, err := ParseModule(src)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	return m
}

func TestDiff_SelfDiffIsAllUnchanged(t *testing.T) {
	src := "define i32 (i32 %x) @f {\n" +
		"entry:\n" +
		"  %0 = add i32 %x, 1\n" +
		"  ret i32 %0\n" +
		"}\n"
	m := mustParse(t, src)
	md := Diff(m, m)

	if md.ModifiedFunctions != 0 || md.AddedFunctions != 0 || md.RemovedFunctions != 0 {
		t.Fatalf("expected no changes, got %+v", md)
	}
	if md.UnchangedFunctions != 1 {
		t.Fatalf("expected 1 unchanged function, got %d", md.UnchangedFunctions)
	}
	if md.TotalBeforeInstructions != md.TotalAfterInstructions {
		t.Fatalf("instruction totals should match: %d vs %d", md.TotalBeforeInstructions, md.TotalAfterInstructions)
	}
}

func TestDiff_AddedAndRemovedFunctions(t *testing.T) {
	before := mustParse(t, "define void () @old {\nentry:\n  ret void\n}\n")
	after := mustParse(t, "define void () @new {\nentry:\n  ret void\n}\n")

	md := Diff(before, after)
	if md.AddedFunctions != 1 || md.RemovedFunctions != 1 {
		t.Fatalf("expected one add and one remove, got %+v", md)
	}
	byName := md.FuncDiffByName()
	if byName["old"].Kind != Removed {
		t.Fatalf("expected old to be Removed, got %v", byName["old"].Kind)
	}
	if byName["new"].Kind != Added {
		t.Fatalf("expected new to be Added, got %v", byName["new"].Kind)
	}
	if !byName["old"].WasInlined() {
		t.Fatalf("WasInlined should be true for a removed function")
	}
}

func TestDiff_ModifiedInstructionSubstitution(t *testing.T) {
	before := mustParse(t, "define i32 (i32 %x) @f {\nentry:\n  %0 = add i32 %x, 1\n  ret i32 %0\n}\n")
	after := mustParse(t, "define i32 (i32 %x) @f {\nentry:\n  %0 = add i32 %x, 2\n  ret i32 %0\n}\n")

	md := Diff(before, after)
	fd := md.FuncDiffByName()["f"]
	if fd.Kind != Modified {
		t.Fatalf("expected Modified, got %v", fd.Kind)
	}
	if len(fd.Blocks) != 1 {
		t.Fatalf("expected 1 block diff, got %d", len(fd.Blocks))
	}
	instrs := fd.Blocks[0].Instrs
	if len(instrs) != 2 {
		t.Fatalf("expected 2 instruction diffs (one modified, one unchanged), got %d", len(instrs))
	}
	if instrs[0].Kind != Modified {
		t.Fatalf("expected the changed add to report Modified, not Added+Removed, got %v", instrs[0].Kind)
	}
	if instrs[0].Before == nil || instrs[0].After == nil {
		t.Fatalf("a Modified instruction diff must carry both sides")
	}
	if instrs[1].Kind != Unchanged {
		t.Fatalf("expected ret to be unchanged, got %v", instrs[1].Kind)
	}
}

func TestDiff_DeclarationVsDefinitionIsModified(t *testing.T) {
	before := mustParse(t, "declare void () @f\n")
	after := mustParse(t, "define void () @f {\nentry:\n  ret void\n}\n")
	md := Diff(before, after)
	fd := md.FuncDiffByName()["f"]
	if fd.Kind != Modified {
		t.Fatalf("expected Modified for declaration-vs-definition, got %v", fd.Kind)
	}
}

func TestDiff_BothDeclarationsUnchanged(t *testing.T) {
	before := mustParse(t, "declare void () @f\n")
	after := mustParse(t, "declare void () @f\n")
	md := Diff(before, after)
	fd := md.FuncDiffByName()["f"]
	if fd.Kind != Unchanged {
		t.Fatalf("expected Unchanged for two identical declarations, got %v", fd.Kind)
	}
}
