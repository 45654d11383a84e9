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
	"strings"
	"testing"
)

func TestEmitConstantFoldEndToEnd(t *testing.T) {
	start := &Block{
		Info: BlockInfo{StackSpace: 8},
		Instrs: []Instr{
			&Movq{Src: &IntArg{Value: 10}, Dst: &DerefArg{Reg: Rbp, Offset: -8}},
			&Negq{Dst: &DerefArg{Reg: Rbp, Offset: -8}},
			&Movq{Src: &IntArg{Value: 52}, Dst: &RegArg{Reg: Rax}},
			&Addq{Src: &DerefArg{Reg: Rbp, Offset: -8}, Dst: &RegArg{Reg: Rax}},
			&Jumpq{Target: ConclusionLabel},
		},
	}

	prog := &Program{Blocks: map[Label]*Block{StartLabel: start}}
	out := Emit(prog)

	for _, want := range []string{
		"start:",
		"movq $10, -8(%rbp)",
		"negq -8(%rbp)",
		"movq $52, %rax",
		"addq -8(%rbp), %rax",
		"jmp conclusion",
		".globl main",
		"main:",
		"pushq %rbp",
		"movq %rsp, %rbp",
		"subq $16, %rsp",
		"jmp start",
		"conclusion:",
		"addq $16, %rsp",
		"popq %rbp",
		"retq",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("emitted text missing %q; got:\n%s", want, out)
		}
	}
}
