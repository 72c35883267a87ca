package ir

import "testing"

func TestAssignSyntheticBlockNames(t *testing.T) {
	m := &Module{Functions: []*Function{
		{Name: "f", Blocks: []*Block{{Name: ""}, {Name: "labeled"}, {Name: ""}}},
	}}
	AssignSyntheticBlockNames(m)
	f := m.Functions[0]
	if f.Blocks[0].Name != "aion.bb.0" {
		t.Fatalf("expected synthetic name for block 0, got %q", f.Blocks[0].Name)
	}
	if f.Blocks[1].Name != "labeled" {
		t.Fatalf("expected existing name to survive, got %q", f.Blocks[1].Name)
	}
	if f.Blocks[2].Name != "aion.bb.2" {
		t.Fatalf("expected synthetic name for block 2, got %q", f.Blocks[2].Name)
	}
}
