package vm

// frameWords is the fixed number of caller-saved registers `call` pushes
// and `return` consumes (spec.md §4.F, Glossary "Frame").
const frameWords = 8

// execCall implements the call protocol of spec.md §4.F. The caller has
// already pushed inst.Nargs argument words.
func execCall(p *Program, inst Instruction) *ExecError {
	stack := p.Stack

	// Captured before jumpTo mutates (FI, EI).
	retEI := p.activeFile().EI
	retFI := p.FI

	if inst.Nargs > stack.SP() {
		return errNargs(inst.Nargs, stack.SP(), inst.Pos)
	}

	val, err := p.jumpTo(inst.Ident, SymFunc, inst.Pos)
	if err != nil {
		return err
	}

	stack.Push(Word(retEI))
	stack.Push(Word(retFI))
	stack.Push(Word(stack.lcl))
	stack.Push(Word(stack.lclLen))
	stack.Push(Word(stack.arg))
	stack.Push(Word(stack.argLen))
	stack.Push(Word(p.Heap.This()))
	stack.Push(Word(p.Heap.That()))

	stack.arg = stack.SP() - frameWords - inst.Nargs
	stack.argLen = inst.Nargs

	stack.lcl = stack.SP()
	stack.lclLen = val.NLocals
	for i := 0; i < val.NLocals; i++ {
		stack.Push(0)
	}

	return nil
}

// execReturn implements the return protocol of spec.md §4.F. It assumes
// exactly one word on top of the callee's work area as the return value.
func execReturn(p *Program, pos Pos) *ExecError {
	stack, heap := p.Stack, p.Heap

	frame := stack.lcl
	retEI := int(stack.At(frame - 8))
	retFI := int(stack.At(frame - 7))

	retVal, ok := stack.Pop()
	if !ok {
		return errStackUnderflow(pos)
	}

	stack.SetAt(stack.arg, retVal)
	stack.sp = stack.arg + 1

	heap.SetThat(Addr(stack.At(frame - 1)))
	heap.SetThis(Addr(stack.At(frame - 2)))
	stack.argLen = int(stack.At(frame - 3))
	stack.arg = int(stack.At(frame - 4))
	stack.lclLen = int(stack.At(frame - 5))
	stack.lcl = int(stack.At(frame - 6))

	// No pre-decrement here (unlike goto/call): the dispatch loop's
	// post-increment must advance past the call site, not re-execute it.
	p.FI = retFI
	p.Files[retFI].EI = retEI
	return nil
}
