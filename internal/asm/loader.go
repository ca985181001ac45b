package asm

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"hvm/vm"
)

// startupSource is the bootstrap unit WithStartup appends: call Sys.init
// with a valid caller frame to return into. gen_startup's C equivalent
// spins forever if Sys.init ever returns; here the program simply ends
// (the dispatch loop's own fall-off-the-end termination) once the call
// instruction is the last one in the file, which is simpler to reason
// about and just as final for a Sys.init that was never meant to return.
const startupSource = `function Sys.__boot 0
call Sys.init 0
`

// Source is one named translation unit's text, as read from disk (or
// supplied directly by a test).
type Source struct {
	Name string
	Text string
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	heapSize, statSize, tempSize int
	maxIdent                     int
	stdin                        io.Reader
	stdout                       io.Writer
	startup                      bool
}

// WithMaxIdentLen overrides DefaultMaxIdentLen, matching cmd/hvm's
// --max-ident flag.
func WithMaxIdentLen(n int) Option {
	return func(o *loadOptions) { o.maxIdent = n }
}

// WithStartup synthesizes a tiny bootstrap translation unit that calls
// Sys.init and halts when it returns, and positions the entry point
// there instead of directly inside Sys.init. original_source/src/utils.h's
// gen_startup does this unconditionally; here it is opt-in, so hand-written
// single-file test programs can start at Sys.init directly without needing
// to embed an infinite loop of their own. Without it, a Sys.init that
// itself executes `return` underflows the (empty) caller frame.
func WithStartup() Option {
	return func(o *loadOptions) { o.startup = true }
}

// WithMemorySizes overrides the default heap/static/temp capacities
// (spec.md §6's "sizes the core assumes but does not itself enforce"),
// matching cmd/hvm's --heap-size/--static-size/--temp-size flags.
func WithMemorySizes(heap, static, temp int) Option {
	return func(o *loadOptions) { o.heapSize, o.statSize, o.tempSize = heap, static, temp }
}

// WithIO overrides the Program's stdin/stdout, used by tests that want to
// feed Sys.read_* from a buffer and capture Sys.print_* output.
func WithIO(stdin io.Reader, stdout io.Writer) Option {
	return func(o *loadOptions) { o.stdin, o.stdout = stdin, stdout }
}

// Load parses every source, resolves the file defining Sys.init as the
// entry point, and returns a Program ready for Run. It fails closed: any
// parse error or a missing/duplicate Sys.init aborts the whole load
// rather than running a partially-built program.
func Load(sources []Source, opts ...Option) (*vm.Program, error) {
	o := loadOptions{
		heapSize: vm.MemHeapSize,
		statSize: vm.MemStatSize,
		tempSize: vm.MemTempSize,
		maxIdent: DefaultMaxIdentLen,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	files := make([]*vm.File, 0, len(sources))
	for _, src := range sources {
		logrus.WithField("file", src.Name).Debug("parsing source")
		f, err := ParseFileWithLimit(src.Name, src.Text, o.maxIdent)
		if err != nil {
			return nil, errors.Wrapf(err, "loading %s", src.Name)
		}
		if o.statSize != vm.MemStatSize || o.tempSize != vm.MemTempSize {
			f.Mem = vm.NewMemorySized(o.statSize, o.tempSize)
		}
		files = append(files, f)
	}

	// The lexer truncates every identifier to maxIdent, Sys.init included.
	entryName := "Sys.init"
	if len(entryName) > o.maxIdent {
		entryName = entryName[:o.maxIdent]
	}
	entry, nEntries := -1, 0
	for i, f := range files {
		if _, ok := f.Symbols.Lookup(entryName, vm.SymFunc); ok {
			entry, nEntries = i, nEntries+1
		}
	}
	switch {
	case nEntries == 0:
		return nil, errors.New("no file defines `Sys.init`; Write it!")
	case nEntries > 1:
		return nil, errors.New("`Sys.init` is defined in more than one file")
	}

	if o.startup {
		boot, err := ParseFile("<startup>", startupSource)
		if err != nil {
			return nil, errors.Wrap(err, "generating startup code")
		}
		files = append(files, boot)
		entry = len(files) - 1
	}

	logrus.WithFields(logrus.Fields{
		"files": len(files),
		"entry": files[entry].Name,
	}).Info("program loaded")

	p := vm.NewProgram(files, entry, o.stdin, o.stdout)
	p.Heap = vm.NewHeapSized(o.heapSize)
	return p, nil
}

// LoadFiles reads each named path from disk and Loads the result.
func LoadFiles(paths []string, opts ...Option) (*vm.Program, error) {
	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		sources = append(sources, Source{Name: path, Text: string(data)})
	}
	return Load(sources, opts...)
}
