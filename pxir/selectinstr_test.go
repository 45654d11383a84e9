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
	"testing"

	"github.com/google/go-cmp/cmp"

	"ember/cir"
	"ember/rir"
)

func TestSelectInstructionsInPlaceAddRewrite(t *testing.T) {
	x := rir.NewSymbol("x")
	tail := &cir.Seq{
		Stmt: &cir.Stmt{Name: x, Expr: &cir.ArgExpr{Arg: &cir.IntArg{Value: 20}}},
		Next: &cir.Seq{
			Stmt: &cir.Stmt{Name: x, Expr: &cir.AddExpr{Left: &cir.VarArg{Name: x}, Right: &cir.IntArg{Value: 22}}},
			Next: &cir.Ret{Expr: &cir.ArgExpr{Arg: &cir.VarArg{Name: x}}},
		},
	}

	expected := []Instr{
		&Movq{Src: &IntArg{Value: 20}, Dst: &VarArg{Name: x}},
		&Addq{Src: &IntArg{Value: 22}, Dst: &VarArg{Name: x}},
		&Movq{Src: &VarArg{Name: x}, Dst: &RegArg{Reg: Rax}},
		&Jumpq{Target: ConclusionLabel},
	}

	actual := foldTail(tail)

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Fatalf("select-instr mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectInstructionsBothOperandSwap(t *testing.T) {
	x := rir.NewSymbol("x")
	stmt := &cir.Stmt{Name: x, Expr: &cir.AddExpr{Left: &cir.IntArg{Value: 22}, Right: &cir.VarArg{Name: x}}}

	expected := []Instr{&Addq{Src: &IntArg{Value: 22}, Dst: &VarArg{Name: x}}}

	actual := foldAssign(stmt.Name, stmt.Expr)

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Fatalf("select-instr mismatch (-want +got):\n%s", diff)
	}
}
