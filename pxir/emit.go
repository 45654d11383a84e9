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

import (
	"bytes"
	"fmt"

	"ember/internal/ember"
)

// Assembler accumulates AT&T-syntax assembly text for a compilation
// unit's labeled blocks, framed by a generated main prologue and
// conclusion epilogue.
type Assembler struct {
	buf bytes.Buffer
}

// Emit produces the final x86-64 text for prog: the start block verbatim,
// followed by a generated main block (prologue + jump to start) and a
// generated conclusion block (epilogue), using the start block's
// stack_space rounded up to 16-byte alignment.
func Emit(prog *Program) string {
	startBlock, ok := prog.Blocks[StartLabel]
	if !ok {
		ember.Fatalf("program has no %s block", StartLabel.Name)
	}

	stackSize := ember.Align16(startBlock.Info.StackSpace)

	a := &Assembler{}
	a.block(StartLabel, startBlock)
	a.buf.WriteString("\n")
	a.buf.WriteString("\t.globl main\n")
	a.block(MainLabel, buildMainBlock(stackSize, StartLabel))
	a.block(ConclusionLabel, buildConclusionBlock(stackSize))
	return a.buf.String()
}

func buildMainBlock(stackSize int64, jumpTo Label) *Block {
	return &Block{Instrs: []Instr{
		&Pushq{Src: &RegArg{Reg: Rbp}},
		&Movq{Src: &RegArg{Reg: Rsp}, Dst: &RegArg{Reg: Rbp}},
		&Subq{Src: &IntArg{Value: stackSize}, Dst: &RegArg{Reg: Rsp}},
		&Jumpq{Target: jumpTo},
	}}
}

func buildConclusionBlock(stackSize int64) *Block {
	return &Block{Instrs: []Instr{
		&Addq{Src: &IntArg{Value: stackSize}, Dst: &RegArg{Reg: Rsp}},
		&Popq{Dst: &RegArg{Reg: Rbp}},
		&Retq{},
	}}
}

func (a *Assembler) block(label Label, block *Block) {
	fmt.Fprintf(&a.buf, "%s:\n", label.Name)
	for _, instr := range block.Instrs {
		fmt.Fprintf(&a.buf, "\t%s\n", instr)
	}
}
