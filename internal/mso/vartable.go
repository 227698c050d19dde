package mso

// VarTable tracks the mapping from quantified variable names to track
// indices during a bottom-up compile. Per the convention resolved in
// SPEC_FULL.md's Open Questions: the innermost-quantified variable always
// occupies the last (highest-index) track of the current extended
// alphabet, and the table is re-packed down by one track every time a
// projection eliminates that track. This mirrors a de Bruijn-style stack
// rather than a flat name->index map, since names can shadow across nested
// quantifiers.
type VarTable struct {
	stack []trackEntry
}

type trackEntry struct {
	name string
	kind VarKind
}

// NewVarTable returns an empty table (0 tracks in use).
func NewVarTable() *VarTable {
	return &VarTable{}
}

// Depth returns the number of tracks currently allocated, i.e. the current k.
func (t *VarTable) Depth() int {
	return len(t.stack)
}

// Push allocates a new last track for name and returns its 1-based track
// index (matching spec.md's track numbering).
func (t *VarTable) Push(name string, kind VarKind) int {
	t.stack = append(t.stack, trackEntry{name: name, kind: kind})
	return len(t.stack)
}

// Pop removes the last track, which must belong to name; it panics if the
// table is empty or the top entry does not match, since that indicates a
// compiler bug in the bottom-up walk rather than a user-facing error.
func (t *VarTable) Pop(name string) {
	if len(t.stack) == 0 {
		panic("mso: VarTable.Pop on empty table")
	}
	top := t.stack[len(t.stack)-1]
	if top.name != name {
		panic("mso: VarTable.Pop(" + name + ") but top track holds " + top.name)
	}
	t.stack = t.stack[:len(t.stack)-1]
}

// TrackOf returns the 1-based track index bound to name and whether it was
// found. When a name shadows an outer one, the innermost (top-of-stack)
// binding wins.
func (t *VarTable) TrackOf(name string) (int, bool) {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if t.stack[i].name == name {
			return i + 1, true
		}
	}
	return 0, false
}

// KindOf returns the VarKind bound to name.
func (t *VarTable) KindOf(name string) (VarKind, bool) {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if t.stack[i].name == name {
			return t.stack[i].kind, true
		}
	}
	return 0, false
}
