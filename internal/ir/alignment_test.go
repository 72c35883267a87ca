package ir

import "testing"

func TestAlign_IdenticalSequences(t *testing.T) {
	a := []string{"a", "b", "c"}
	pairs := align(a, a)
	if len(pairs) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(pairs))
	}
	for i, p := range pairs {
		if p.AI != i || p.BI != i {
			t.Fatalf("pair %d: expected (%d,%d), got (%d,%d)", i, i, i, p.AI, p.BI)
		}
	}
}

func TestAlign_InsertionAppearsAsGapInA(t *testing.T) {
	a := []string{"x", "y"}
	b := []string{"x", "new", "y"}
	pairs := align(a, b)

	var gaps int
	for _, p := range pairs {
		if p.AI < 0 {
			gaps++
		}
	}
	if gaps != 1 {
		t.Fatalf("expected exactly 1 insertion gap, got %d (%+v)", gaps, pairs)
	}
}

func TestAlign_SubstitutionPairsDiagonally(t *testing.T) {
	a := []string{"p", "q"}
	b := []string{"p", "r"}
	pairs := align(a, b)
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs for equal-length substitution, got %d: %+v", len(pairs), pairs)
	}
	if pairs[1].AI != 1 || pairs[1].BI != 1 {
		t.Fatalf("expected the substituted element to pair diagonally, got %+v", pairs[1])
	}
}

func TestAlign_EmptySequences(t *testing.T) {
	if pairs := align(nil, nil); len(pairs) != 0 {
		t.Fatalf("expected no pairs for two empty sequences, got %+v", pairs)
	}
	pairs := align(nil, []string{"a"})
	if len(pairs) != 1 || pairs[0].AI != -1 || pairs[0].BI != 0 {
		t.Fatalf("expected a single insertion, got %+v", pairs)
	}
}
