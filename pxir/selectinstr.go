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
	"ember/cir"
	"ember/internal/ember"
)

// SelectInstructions lowers every CIR tail into a PXIR block, translating
// Ret into "assign to %rax, then jump to conclusion" and applying
// destination-reuse rewrites for Neg/Add.
func SelectInstructions(prog *cir.Program) *Program {
	blocks := make(map[Label]*Block)
	for label, tail := range prog.Tails {
		blocks[Label{Name: label.Name}] = &Block{Instrs: foldTail(tail)}
	}
	return &Program{Blocks: blocks}
}

func foldArg(a cir.Arg) Arg {
	switch n := a.(type) {
	case *cir.IntArg:
		return &IntArg{Value: n.Value}
	case *cir.VarArg:
		return &VarArg{Name: n.Name}
	default:
		ember.ShouldNotReachHere()
		return nil
	}
}

func foldReadExpr(dst cir.Symbol) []Instr {
	return []Instr{
		&Callq{Target: ReadIntLabel()},
		&Movq{Src: &RegArg{Reg: Rax}, Dst: &VarArg{Name: dst}},
	}
}

func foldArgExpr(dst cir.Symbol, a cir.Arg) Instr {
	return &Movq{Src: foldArg(a), Dst: &VarArg{Name: dst}}
}

func foldNegExpr(dst cir.Symbol, a cir.Arg) []Instr {
	dstArg := &VarArg{Name: dst}
	arg := foldArg(a)

	if v, ok := arg.(*VarArg); ok && v.Name == dst {
		return []Instr{&Negq{Dst: dstArg}}
	}
	return []Instr{&Movq{Src: arg, Dst: dstArg}, &Negq{Dst: dstArg}}
}

func foldAddExpr(dst cir.Symbol, a1, a2 cir.Arg) []Instr {
	dstArg := &VarArg{Name: dst}
	arg1 := foldArg(a1)
	arg2 := foldArg(a2)

	if v, ok := arg1.(*VarArg); ok && v.Name == dst {
		return []Instr{&Addq{Src: arg2, Dst: dstArg}}
	}
	if v, ok := arg2.(*VarArg); ok && v.Name == dst {
		return []Instr{&Addq{Src: arg1, Dst: dstArg}}
	}
	return []Instr{&Movq{Src: arg1, Dst: dstArg}, &Addq{Src: arg2, Dst: dstArg}}
}

func foldAssign(dst cir.Symbol, e cir.Expr) []Instr {
	switch n := e.(type) {
	case *cir.ReadExpr:
		return foldReadExpr(dst)
	case *cir.ArgExpr:
		return []Instr{foldArgExpr(dst, n.Arg)}
	case *cir.NegExpr:
		return foldNegExpr(dst, n.Arg)
	case *cir.AddExpr:
		return foldAddExpr(dst, n.Left, n.Right)
	default:
		ember.ShouldNotReachHere()
		return nil
	}
}

// foldRet lowers the expression held by a Ret tail: assign it to %rax,
// using the same dst-reuse rules as foldAssign, then jump to conclusion.
func foldRet(e cir.Expr) []Instr {
	var instrs []Instr
	dstArg := Arg(&RegArg{Reg: Rax})

	switch n := e.(type) {
	case *cir.ReadExpr:
		// read_int already returns its value in %rax.
		instrs = []Instr{&Callq{Target: ReadIntLabel()}}
	case *cir.ArgExpr:
		instrs = []Instr{&Movq{Src: foldArg(n.Arg), Dst: dstArg}}
	case *cir.NegExpr:
		instrs = []Instr{&Movq{Src: foldArg(n.Arg), Dst: dstArg}, &Negq{Dst: dstArg}}
	case *cir.AddExpr:
		instrs = []Instr{&Movq{Src: foldArg(n.Left), Dst: dstArg}, &Addq{Src: foldArg(n.Right), Dst: dstArg}}
	default:
		ember.ShouldNotReachHere()
	}

	return append(instrs, &Jumpq{Target: ConclusionLabel})
}

func foldTail(t cir.Tail) []Instr {
	switch n := t.(type) {
	case *cir.Seq:
		instrs := foldAssign(n.Stmt.Name, n.Stmt.Expr)
		return append(instrs, foldTail(n.Next)...)
	case *cir.Ret:
		return foldRet(n.Expr)
	default:
		ember.ShouldNotReachHere()
		return nil
	}
}
