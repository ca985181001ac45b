package vm

// execPush implements `push segment offset` (spec.md §4.D). Every branch
// validates bounds before touching the stack; on failure nothing has been
// mutated.
func execPush(p *Program, inst Instruction) *ExecError {
	stack, heap, mem := p.Stack, p.Heap, p.activeFile().Mem
	offset := inst.Offset

	switch inst.Segment {
	case SegArg:
		if offset < stack.ArgLen() && stack.Arg()+offset < stack.SP() {
			stack.Push(stack.At(stack.Arg() + offset))
			return nil
		}
		if offset >= stack.ArgLen() {
			return errSegmentOverflow(inst, stack.ArgLen())
		}
		return errStackAddrOverflow(inst, stack.Arg()+offset, stack.SP())

	case SegLoc:
		if offset < stack.LclLen() && stack.Lcl()+offset < stack.SP() {
			stack.Push(stack.At(stack.Lcl() + offset))
			return nil
		}
		if offset >= stack.LclLen() {
			return errSegmentOverflow(inst, stack.LclLen())
		}
		return errStackAddrOverflow(inst, stack.Lcl()+offset, stack.SP())

	case SegStat:
		if offset >= mem.StaticSize() {
			return errSegmentOverflow(inst, mem.StaticSize())
		}
		stack.Push(mem.Static(offset))
		return nil

	case SegConst:
		stack.Push(Word(inst.Offset))
		return nil

	case SegThis:
		addr := offset + int(heap.This())
		if addr >= heap.Size() {
			return errHeapAddrOverflow(inst, addr)
		}
		stack.Push(heap.Get(Addr(addr)))
		return nil

	case SegThat:
		addr := offset + int(heap.That())
		if addr >= heap.Size() {
			return errHeapAddrOverflow(inst, addr)
		}
		stack.Push(heap.Get(Addr(addr)))
		return nil

	case SegPtr:
		switch offset {
		case 0:
			stack.Push(Word(heap.This()))
		case 1:
			stack.Push(Word(heap.That()))
		default:
			return errPointerSegment(offset, inst.Pos)
		}
		return nil

	case SegTmp:
		if offset >= mem.TempSize() {
			return errSegmentOverflow(inst, mem.TempSize())
		}
		stack.Push(mem.Temp(offset))
		return nil
	}

	return errProgrammer(inst)
}

// execPop implements `pop segment offset` (spec.md §4.D). Bounds are
// checked before the stack is popped in every branch.
func execPop(p *Program, inst Instruction) *ExecError {
	stack, heap, mem := p.Stack, p.Heap, p.activeFile().Mem
	offset := inst.Offset

	switch inst.Segment {
	case SegArg:
		if offset < stack.ArgLen() && stack.Arg()+offset < stack.SP() {
			val, ok := stack.Pop()
			if !ok {
				return errStackUnderflow(inst.Pos)
			}
			stack.SetAt(stack.Arg()+offset, val)
			return nil
		}
		if offset >= stack.ArgLen() {
			return errSegmentOverflow(inst, stack.ArgLen())
		}
		return errStackAddrOverflow(inst, stack.Arg()+offset, stack.SP())

	case SegLoc:
		if offset < stack.LclLen() && stack.Lcl()+offset < stack.SP() {
			val, ok := stack.Pop()
			if !ok {
				return errStackUnderflow(inst.Pos)
			}
			stack.SetAt(stack.Lcl()+offset, val)
			return nil
		}
		if offset >= stack.LclLen() {
			return errSegmentOverflow(inst, stack.LclLen())
		}
		return errStackAddrOverflow(inst, stack.Lcl()+offset, stack.SP())

	case SegStat:
		if offset >= mem.StaticSize() {
			return errSegmentOverflow(inst, mem.StaticSize())
		}
		val, ok := stack.Pop()
		if !ok {
			return errStackUnderflow(inst.Pos)
		}
		mem.SetStatic(offset, val)
		return nil

	case SegConst:
		// Popping to constant discards the value.
		if _, ok := stack.Pop(); !ok {
			return errStackUnderflow(inst.Pos)
		}
		return nil

	case SegThis:
		addr := offset + int(heap.This())
		if addr >= heap.Size() {
			return errHeapAddrOverflow(inst, addr)
		}
		val, ok := stack.Pop()
		if !ok {
			return errStackUnderflow(inst.Pos)
		}
		heap.Set(Addr(addr), val)
		return nil

	case SegThat:
		addr := offset + int(heap.That())
		if addr >= heap.Size() {
			return errHeapAddrOverflow(inst, addr)
		}
		val, ok := stack.Pop()
		if !ok {
			return errStackUnderflow(inst.Pos)
		}
		heap.Set(Addr(addr), val)
		return nil

	case SegPtr:
		switch offset {
		case 0:
			val, ok := stack.Pop()
			if !ok {
				return errStackUnderflow(inst.Pos)
			}
			heap.SetThis(Addr(val))
		case 1:
			val, ok := stack.Pop()
			if !ok {
				return errStackUnderflow(inst.Pos)
			}
			heap.SetThat(Addr(val))
		default:
			return errPointerSegment(offset, inst.Pos)
		}
		return nil

	case SegTmp:
		if offset >= mem.TempSize() {
			return errSegmentOverflow(inst, mem.TempSize())
		}
		val, ok := stack.Pop()
		if !ok {
			return errStackUnderflow(inst.Pos)
		}
		mem.SetTemp(offset, val)
		return nil
	}

	return errProgrammer(inst)
}
