// Copyright (c) 2024 The Ember Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package pxir

import "ember/internal/ember"

// homeAssigner replaces Var operands with frame-pointer-relative memory
// references, one stack slot per distinct symbol, first-use-allocates.
type homeAssigner struct {
	stackSpace int64
	symToHome  map[Symbol]int64
}

// AssignHomes replaces every Var operand in prog with a Deref(%rbp, off)
// and records the stack space each block's locals consume.
func AssignHomes(prog *Program) *Program {
	blocks := make(map[Label]*Block, len(prog.Blocks))
	for label, block := range prog.Blocks {
		blocks[label] = foldBlock(block)
	}
	return &Program{Blocks: blocks}
}

func foldBlock(block *Block) *Block {
	ctx := &homeAssigner{symToHome: make(map[Symbol]int64)}
	instrs := make([]Instr, len(block.Instrs))
	for i, instr := range block.Instrs {
		instrs[i] = ctx.foldInstr(instr)
	}
	assertNoVarsRemain(instrs)
	return &Block{
		Info:   BlockInfo{StackSpace: ctx.stackSpace},
		Instrs: instrs,
	}
}

func (c *homeAssigner) getHome(sym Symbol) Arg {
	if off, ok := c.symToHome[sym]; ok {
		return &DerefArg{Reg: Rbp, Offset: off}
	}
	c.stackSpace += 8
	off := -c.stackSpace
	ember.Assert(off%8 == 0, "stack offset %d is not 8-byte aligned", off)
	c.symToHome[sym] = off
	return &DerefArg{Reg: Rbp, Offset: off}
}

// assertNoVarsRemain checks assign-homes' own postcondition: every Var
// operand has been replaced with a stack home, so none should survive into
// the instructions this pass returns.
func assertNoVarsRemain(instrs []Instr) {
	for _, instr := range instrs {
		switch n := instr.(type) {
		case *Addq:
			ember.Assert(!isVar(n.Src) && !isVar(n.Dst), "assign-homes left a Var operand in %s", n)
		case *Subq:
			ember.Assert(!isVar(n.Src) && !isVar(n.Dst), "assign-homes left a Var operand in %s", n)
		case *Movq:
			ember.Assert(!isVar(n.Src) && !isVar(n.Dst), "assign-homes left a Var operand in %s", n)
		case *Negq:
			ember.Assert(!isVar(n.Dst), "assign-homes left a Var operand in %s", n)
		case *Pushq:
			ember.Assert(!isVar(n.Src), "assign-homes left a Var operand in %s", n)
		case *Popq:
			ember.Assert(!isVar(n.Dst), "assign-homes left a Var operand in %s", n)
		}
	}
}

func isVar(a Arg) bool {
	_, ok := a.(*VarArg)
	return ok
}

func (c *homeAssigner) foldArg(a Arg) Arg {
	if v, ok := a.(*VarArg); ok {
		return c.getHome(v.Name)
	}
	return a
}

func (c *homeAssigner) foldInstr(instr Instr) Instr {
	switch n := instr.(type) {
	case *Addq:
		return &Addq{Src: c.foldArg(n.Src), Dst: c.foldArg(n.Dst)}
	case *Subq:
		return &Subq{Src: c.foldArg(n.Src), Dst: c.foldArg(n.Dst)}
	case *Movq:
		return &Movq{Src: c.foldArg(n.Src), Dst: c.foldArg(n.Dst)}
	case *Negq:
		return &Negq{Dst: c.foldArg(n.Dst)}
	case *Pushq:
		return &Pushq{Src: c.foldArg(n.Src)}
	case *Popq:
		return &Popq{Dst: c.foldArg(n.Dst)}
	case *Callq, *Jumpq, *Retq:
		return instr
	default:
		ember.ShouldNotReachHere()
		return nil
	}
}
