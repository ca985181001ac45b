package vm

// SymKey identifies a symbol table entry: a name paired with whether it
// names a label or a function (spec.md §3 — "keys unique per file").
type SymKey struct {
	Ident string
	Kind  SymKind
}

// SymVal is what a symbol resolves to: the instruction address to jump to
// and, for functions, the number of locals the callee needs allocated.
type SymVal struct {
	InstAddr int
	NLocals  int
}

// SymbolTable maps (ident, kind) to (inst_addr, nlocals) within one File.
// The loader is responsible for keeping keys unique per file; SymbolTable
// itself assumes that invariant (spec.md §9).
type SymbolTable map[SymKey]SymVal

// NewSymbolTable returns an empty table ready for a loader to populate.
func NewSymbolTable() SymbolTable {
	return make(SymbolTable)
}

// Define records ident:kind -> val, following the loader's unique-key
// contract (last write wins; the loader is expected to reject duplicates
// itself before execution starts).
func (st SymbolTable) Define(ident string, kind SymKind, val SymVal) {
	st[SymKey{Ident: ident, Kind: kind}] = val
}

// Lookup resolves ident:kind within this table only.
func (st SymbolTable) Lookup(ident string, kind SymKind) (SymVal, bool) {
	val, ok := st[SymKey{Ident: ident, Kind: kind}]
	return val, ok
}
