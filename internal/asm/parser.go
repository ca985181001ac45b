package asm

import (
	"github.com/pkg/errors"

	"hvm/vm"
)

// builtins maps the Sys.* names the loader never resolves through the
// symbol table to the opcode exec.go dispatches directly. A `call
// Sys.print_char 1` in source (the argument count is optional for
// built-ins) never becomes a real OpCall: the built-ins
// have no body to jump into (spec.md §4.J), so the loader recognizes the
// name at parse time and emits the built-in opcode in its place.
var builtins = map[string]vm.Opcode{
	"Sys.print_char": vm.OpPrintChar,
	"Sys.print_num":  vm.OpPrintNum,
	"Sys.print_str":  vm.OpPrintStr,
	"Sys.read_char":  vm.OpReadChar,
	"Sys.read_num":   vm.OpReadNum,
	"Sys.read_str":   vm.OpReadStr,
}

var segmentTokens = map[tokenKind]vm.Segment{
	tkArg:   vm.SegArg,
	tkLoc:   vm.SegLoc,
	tkStat:  vm.SegStat,
	tkConst: vm.SegConst,
	tkThis:  vm.SegThis,
	tkThat:  vm.SegThat,
	tkPtr:   vm.SegPtr,
	tkTmp:   vm.SegTmp,
}

var nullaryTokens = map[tokenKind]vm.Opcode{
	tkAdd:    vm.OpAdd,
	tkSub:    vm.OpSub,
	tkNeg:    vm.OpNeg,
	tkAnd:    vm.OpAnd,
	tkOr:     vm.OpOr,
	tkNot:    vm.OpNot,
	tkEq:     vm.OpEq,
	tkLt:     vm.OpLt,
	tkGt:     vm.OpGt,
	tkReturn: vm.OpReturn,
}

// fileParser accumulates one File's instructions and symbol table as its
// source lines are parsed in order.
type fileParser struct {
	name    string
	insts   []vm.Instruction
	symbols vm.SymbolTable
}

func newFileParser(name string) *fileParser {
	return &fileParser{name: name, symbols: vm.NewSymbolTable()}
}

func (fp *fileParser) pos(line, col int) vm.Pos {
	return vm.Pos{File: fp.name, Line: line, Col: col + 1}
}

// parseLine parses one lexed, non-empty line and either appends an
// Instruction or records a label/function definition.
func (fp *fileParser) parseLine(toks []token, line int) error {
	head := toks[0]
	pos := fp.pos(line, head.col)

	switch head.kind {
	case tkPush, tkPop:
		if len(toks) != 3 {
			return errors.Errorf("%s: %q takes a segment and an offset", pos, head.text)
		}
		seg, ok := segmentTokens[toks[1].kind]
		if !ok {
			return errors.Errorf("%s: %q is not a memory segment", pos, toks[1].text)
		}
		if toks[2].kind != tkUint {
			return errors.Errorf("%s: expected an integer offset, got %q", pos, toks[2].text)
		}
		op := vm.OpPush
		if head.kind == tkPop {
			op = vm.OpPop
		}
		fp.insts = append(fp.insts, vm.Instruction{Op: op, Pos: pos, Segment: seg, Offset: toks[2].num})
		return nil

	case tkAdd, tkSub, tkNeg, tkAnd, tkOr, tkNot, tkEq, tkLt, tkGt, tkReturn:
		if len(toks) != 1 {
			return errors.Errorf("%s: %q takes no operands", pos, head.text)
		}
		fp.insts = append(fp.insts, vm.Instruction{Op: nullaryTokens[head.kind], Pos: pos})
		return nil

	case tkGoto, tkIfGoto:
		if len(toks) != 2 || toks[1].kind != tkIdent {
			return errors.Errorf("%s: %q takes a single label name", pos, head.text)
		}
		op := vm.OpGoto
		if head.kind == tkIfGoto {
			op = vm.OpIfGoto
		}
		fp.insts = append(fp.insts, vm.Instruction{Op: op, Pos: pos, Ident: toks[1].text})
		return nil

	case tkCall:
		if len(toks) >= 2 && toks[1].kind == tkIdent {
			if bop, ok := builtins[toks[1].text]; ok && (len(toks) == 2 || (len(toks) == 3 && toks[2].kind == tkUint)) {
				fp.insts = append(fp.insts, vm.Instruction{Op: bop, Pos: pos})
				return nil
			}
		}
		if len(toks) != 3 || toks[1].kind != tkIdent || toks[2].kind != tkUint {
			return errors.Errorf("%s: %q takes a function name and an argument count", pos, head.text)
		}
		fp.insts = append(fp.insts, vm.Instruction{
			Op: vm.OpCall, Pos: pos, Ident: toks[1].text, Nargs: toks[2].num,
		})
		return nil

	case tkLabel:
		if len(toks) != 2 || toks[1].kind != tkIdent {
			return errors.Errorf("%s: %q takes a single name", pos, head.text)
		}
		return fp.define(toks[1].text, vm.SymLabel, vm.SymVal{InstAddr: len(fp.insts)}, pos)

	case tkFunc:
		if len(toks) != 3 || toks[1].kind != tkIdent || toks[2].kind != tkUint {
			return errors.Errorf("%s: %q takes a function name and a local count", pos, head.text)
		}
		return fp.define(toks[1].text, vm.SymFunc,
			vm.SymVal{InstAddr: len(fp.insts), NLocals: toks[2].num}, pos)

	default:
		return errors.Errorf("%s: unexpected token %q", pos, head.text)
	}
}

func (fp *fileParser) define(ident string, kind vm.SymKind, val vm.SymVal, pos vm.Pos) error {
	if _, exists := fp.symbols.Lookup(ident, kind); exists {
		return errors.Errorf("%s: %s %q is already defined in %s", pos, kind, ident, fp.name)
	}
	fp.symbols.Define(ident, kind, val)
	return nil
}

// ParseFile lexes and parses one named source's full text into a vm.File,
// using DefaultMaxIdentLen.
func ParseFile(name, src string) (*vm.File, error) {
	return ParseFileWithLimit(name, src, DefaultMaxIdentLen)
}

// ParseFileWithLimit is ParseFile with an overridden identifier length
// limit, matching cmd/hvm's --max-ident flag.
func ParseFileWithLimit(name, src string, maxIdent int) (*vm.File, error) {
	fp := newFileParser(name)

	for lineNo, raw := range splitLines(src) {
		stripped := stripComment(raw)
		toks := lexLine(stripped, maxIdent, func(col int) string { return fp.pos(lineNo+1, col).String() })
		if len(toks) == 0 {
			continue
		}
		if err := fp.parseLine(toks, lineNo+1); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", name)
		}
	}

	return vm.NewFile(fp.name, fp.insts, fp.symbols), nil
}

func splitLines(src string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, src[start:i])
			start = i + 1
		}
	}
	if start < len(src) {
		lines = append(lines, src[start:])
	}
	return lines
}
