package vm

// execAdd implements `add`, widening to 32 bits to detect overflow. On
// overflow both operands are restored to the stack before the error is
// returned (spec.md §4.A, §9).
func execAdd(p *Program, pos Pos) *ExecError {
	s := p.Stack
	y, ok := s.Pop()
	if !ok {
		return errStackUnderflow(pos)
	}
	x, ok := s.Pop()
	if !ok {
		return errStackUnderflow(pos)
	}

	sum, ok := addWords(x, y)
	if !ok {
		s.Restore(2)
		return errAddOverflow(x, y, Wordbuf(x)+Wordbuf(y), pos)
	}
	s.Push(sum)
	return nil
}

// execSub implements `sub`; underflow (x < y) restores both operands.
func execSub(p *Program, pos Pos) *ExecError {
	s := p.Stack
	y, ok := s.Pop()
	if !ok {
		return errStackUnderflow(pos)
	}
	x, ok := s.Pop()
	if !ok {
		return errStackUnderflow(pos)
	}

	diff, ok := subWords(x, y)
	if !ok {
		s.Restore(2)
		return errSubUnderflow(x, y, pos)
	}
	s.Push(diff)
	return nil
}

func execNeg(p *Program, pos Pos) *ExecError {
	y, ok := p.Stack.Pop()
	if !ok {
		return errStackUnderflow(pos)
	}
	p.Stack.Push(negWord(y))
	return nil
}

func execAnd(p *Program, pos Pos) *ExecError {
	s := p.Stack
	y, ok := s.Pop()
	if !ok {
		return errStackUnderflow(pos)
	}
	x, ok := s.Pop()
	if !ok {
		return errStackUnderflow(pos)
	}
	s.Push(x & y)
	return nil
}

func execOr(p *Program, pos Pos) *ExecError {
	s := p.Stack
	y, ok := s.Pop()
	if !ok {
		return errStackUnderflow(pos)
	}
	x, ok := s.Pop()
	if !ok {
		return errStackUnderflow(pos)
	}
	s.Push(x | y)
	return nil
}

func execNot(p *Program, pos Pos) *ExecError {
	y, ok := p.Stack.Pop()
	if !ok {
		return errStackUnderflow(pos)
	}
	p.Stack.Push(^y)
	return nil
}

// execEq, execLt, execGt are unsigned Word comparisons producing TrueWord
// (0xFFFF) or FalseWord (0x0000) exactly (spec.md §4.A, §8).
func execEq(p *Program, pos Pos) *ExecError {
	return execCompare(p, pos, func(x, y Word) bool { return x == y })
}

func execLt(p *Program, pos Pos) *ExecError {
	return execCompare(p, pos, func(x, y Word) bool { return x < y })
}

func execGt(p *Program, pos Pos) *ExecError {
	return execCompare(p, pos, func(x, y Word) bool { return x > y })
}

func execCompare(p *Program, pos Pos, cmp func(x, y Word) bool) *ExecError {
	s := p.Stack
	y, ok := s.Pop()
	if !ok {
		return errStackUnderflow(pos)
	}
	x, ok := s.Pop()
	if !ok {
		return errStackUnderflow(pos)
	}
	s.Push(boolWord(cmp(x, y)))
	return nil
}
