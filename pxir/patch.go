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

// PatchInstructions rewrites any Movq/Addq/Subq whose src and dst are
// both memory operands into a pair routed through %rax, since x86-64
// forbids a two-memory-operand encoding.
func PatchInstructions(prog *Program) *Program {
	blocks := make(map[Label]*Block, len(prog.Blocks))
	for label, block := range prog.Blocks {
		patched := patchBlock(block.Instrs)
		assertNoTwoMemOperands(patched)
		blocks[label] = &Block{Info: block.Info, Instrs: patched}
	}
	return &Program{Blocks: blocks}
}

// assertNoTwoMemOperands checks this pass' own postcondition: no
// Movq/Addq/Subq in the patched output may have both operands in memory.
func assertNoTwoMemOperands(instrs []Instr) {
	for _, instr := range instrs {
		switch n := instr.(type) {
		case *Movq:
			ember.Assert(!(IsDeref(n.Src) && IsDeref(n.Dst)), "patch left a two-memory-operand movq: %s", n)
		case *Addq:
			ember.Assert(!(IsDeref(n.Src) && IsDeref(n.Dst)), "patch left a two-memory-operand addq: %s", n)
		case *Subq:
			ember.Assert(!(IsDeref(n.Src) && IsDeref(n.Dst)), "patch left a two-memory-operand subq: %s", n)
		}
	}
}

func patchBlock(instrs []Instr) []Instr {
	out := make([]Instr, 0, len(instrs))
	for _, instr := range instrs {
		out = append(out, patchInstr(instr)...)
	}
	return out
}

func patchInstr(instr Instr) []Instr {
	scratch := Arg(&RegArg{Reg: Rax})
	switch n := instr.(type) {
	case *Movq:
		if IsDeref(n.Src) && IsDeref(n.Dst) {
			return []Instr{&Movq{Src: n.Src, Dst: scratch}, &Movq{Src: scratch, Dst: n.Dst}}
		}
	case *Addq:
		if IsDeref(n.Src) && IsDeref(n.Dst) {
			return []Instr{&Movq{Src: n.Src, Dst: scratch}, &Addq{Src: scratch, Dst: n.Dst}}
		}
	case *Subq:
		if IsDeref(n.Src) && IsDeref(n.Dst) {
			return []Instr{&Movq{Src: n.Src, Dst: scratch}, &Subq{Src: scratch, Dst: n.Dst}}
		}
	}
	return []Instr{instr}
}
