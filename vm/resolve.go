package vm

// resolveSymbol implements the cross-file lookup order of spec.md §4.E:
// prefer the active file; on a miss, scan every other file in file order
// and classify by how many of them define the symbol.
func (p *Program) resolveSymbol(ident string, kind SymKind, pos Pos) (fi int, val SymVal, err *ExecError) {
	if v, ok := p.activeFile().Symbols.Lookup(ident, kind); ok {
		return p.FI, v, nil
	}

	var (
		ndefs    int
		foundFI  int
		foundVal SymVal
	)
	for i, f := range p.Files {
		if i == p.FI {
			continue
		}
		if v, ok := f.Symbols.Lookup(ident, kind); ok {
			foundFI, foundVal = i, v
			ndefs++
			if ndefs > 1 {
				break
			}
		}
	}

	switch ndefs {
	case 0:
		return 0, SymVal{}, errCtrlFlow(ident, pos)
	case 1:
		return foundFI, foundVal, nil
	default:
		return 0, SymVal{}, errMultiDef(kind, ident, pos)
	}
}

// jumpTo resolves ident:kind and, on success, repositions (fi, ei) with
// ei pre-decremented by one so the dispatch loop's post-increment lands
// exactly on the target (spec.md §9's pre-decrement convention).
func (p *Program) jumpTo(ident string, kind SymKind, pos Pos) (SymVal, *ExecError) {
	fi, val, err := p.resolveSymbol(ident, kind, pos)
	if err != nil {
		return SymVal{}, err
	}
	p.FI = fi
	p.activeFile().EI = val.InstAddr - 1
	return val, nil
}

// execGoto implements `goto ident` (spec.md §4.E).
func execGoto(p *Program, inst Instruction) *ExecError {
	_, err := p.jumpTo(inst.Ident, SymLabel, inst.Pos)
	return err
}

// execIfGoto implements `if-goto ident`: pop one word, jump only if it is
// non-zero (any non-FALSE value is truthy). On resolution failure after
// the pop, the stack is restored before the error is reported.
func execIfGoto(p *Program, inst Instruction) *ExecError {
	val, ok := p.Stack.Pop()
	if !ok {
		return errStackUnderflow(inst.Pos)
	}

	if val == FalseWord {
		return nil
	}

	if _, err := p.jumpTo(inst.Ident, SymLabel, inst.Pos); err != nil {
		p.Stack.Restore(1)
		return err
	}
	return nil
}
