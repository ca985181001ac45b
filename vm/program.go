package vm

import (
	"bufio"
	"io"
)

// File is one translation unit: its parsed instructions, its symbol
// table, and the per-file static/temp Memory it owns. EI is the cursor —
// the index of the next instruction the dispatch loop will fetch.
type File struct {
	Name    string
	Insts   []Instruction
	Symbols SymbolTable
	Mem     *Memory
	EI      int
}

// NewFile wraps a parsed instruction vector and symbol table as a File
// with freshly zeroed per-file Memory.
func NewFile(name string, insts []Instruction, symbols SymbolTable) *File {
	return &File{Name: name, Insts: insts, Symbols: symbols, Mem: NewMemory()}
}

// Program is the fully-parsed unit the execution engine consumes: an
// ordered sequence of Files, a cursor FI naming the active file, and the
// program-global Stack and Heap (spec.md §6).
type Program struct {
	Files []*File
	FI    int

	Stack *Stack
	Heap  *Heap

	Stdin  *bufio.Reader
	Stdout *bufio.Writer

	// Trace, when non-nil, receives one line per instruction before it
	// dispatches — the "simple single-step mode" spec.md §1 carves out
	// as still in scope (unlike a full interactive debugger).
	Trace io.Writer
}

// NewProgram builds a Program ready to run. fi must index the file whose
// Sys.init is the entry point; positioning it is the loader's job
// (spec.md §6), not this constructor's.
func NewProgram(files []*File, fi int, stdin io.Reader, stdout io.Writer) *Program {
	return &Program{
		Files:  files,
		FI:     fi,
		Stack:  NewStack(),
		Heap:   NewHeap(),
		Stdin:  bufio.NewReader(stdin),
		Stdout: bufio.NewWriter(stdout),
	}
}

// activeFile is the file at the current cursor.
func (p *Program) activeFile() *File {
	return p.Files[p.FI]
}

// FindEntry locates the file defining ident as a function, for loaders
// that need to position Program.FI before execution starts. It does not
// itself report CTRL_FLOW_ERROR / DEF_ERR — those are execution-time
// failures triggered by `call`; a loader failing to find Sys.init at
// load time is a distinct, load-time condition.
func FindEntry(files []*File, ident string) (fi int, ok bool) {
	for i, f := range files {
		if _, found := f.Symbols.Lookup(ident, SymFunc); found {
			return i, true
		}
	}
	return 0, false
}
