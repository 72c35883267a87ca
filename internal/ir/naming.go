package ir

import "strconv"

// AssignSyntheticBlockNames gives every unnamed block in the module a
// stable "aion.bb.<index>" name, so later diffs have stable identities even
// when the IR printer omitted block labels.
func AssignSyntheticBlockNames(m *Module) {
	if m == nil {
		return
	}
	for _, f := range m.Functions {
		for i, b := range f.Blocks {
			if b.Name == "" {
				b.Name = "aion.bb." + strconv.Itoa(i)
			}
		}
	}
}
