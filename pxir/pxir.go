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

// Package pxir defines the pseudo-x86 intermediate representation: x86-64
// instructions whose operands may still be symbolic variables, grouped
// into labeled blocks, on the way to final AT&T-syntax assembly text.
package pxir

import (
	"fmt"

	"ember/rir"
)

// Register names one of the 16 x86-64 general-purpose registers.
type Register int

const (
	Rax Register = iota
	Rbx
	Rcx
	Rdx
	Rsi
	Rdi
	Rbp
	Rsp
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
)

var registerNames = map[Register]string{
	Rax: "rax", Rbx: "rbx", Rcx: "rcx", Rdx: "rdx",
	Rsi: "rsi", Rdi: "rdi", Rbp: "rbp", Rsp: "rsp",
	R8: "r8", R9: "r9", R10: "r10", R11: "r11",
	R12: "r12", R13: "r13", R14: "r14", R15: "r15",
}

func (r Register) String() string { return "%" + registerNames[r] }

// Symbol is a PXIR placeholder variable, carried over unchanged from
// rir.Symbol until assign-homes eliminates it.
type Symbol = rir.Symbol

// Arg is a PXIR operand.
type Arg interface {
	isPArg()
	String() string
	// Equal reports structural equality; go-cmp uses it when tests
	// compare instruction lists.
	Equal(Arg) bool
}

type IntArg struct{ Value int64 }
type RegArg struct{ Reg Register }
type DerefArg struct {
	Reg    Register
	Offset int64
}
type VarArg struct{ Name Symbol }

func (*IntArg) isPArg()   {}
func (*RegArg) isPArg()   {}
func (*DerefArg) isPArg() {}
func (*VarArg) isPArg()   {}

func (a *IntArg) String() string   { return fmt.Sprintf("$%d", a.Value) }
func (a *RegArg) String() string   { return a.Reg.String() }
func (a *DerefArg) String() string { return fmt.Sprintf("%d(%s)", a.Offset, a.Reg) }
func (a *VarArg) String() string   { return a.Name.Name }

func (a *IntArg) Equal(o Arg) bool {
	b, ok := o.(*IntArg)
	return ok && a.Value == b.Value
}
func (a *RegArg) Equal(o Arg) bool {
	b, ok := o.(*RegArg)
	return ok && a.Reg == b.Reg
}
func (a *DerefArg) Equal(o Arg) bool {
	b, ok := o.(*DerefArg)
	return ok && a.Reg == b.Reg && a.Offset == b.Offset
}
func (a *VarArg) Equal(o Arg) bool {
	b, ok := o.(*VarArg)
	return ok && a.Name == b.Name
}

// IsDeref reports whether a is a memory operand.
func IsDeref(a Arg) bool {
	_, ok := a.(*DerefArg)
	return ok
}

// Label names a PXIR block. The three reserved labels produced by the
// driver are Start, Main, and Conclusion.
type Label struct{ Name string }

var (
	StartLabel      = Label{Name: "start"}
	MainLabel       = Label{Name: "main"}
	ConclusionLabel = Label{Name: "conclusion"}
)

func ReadIntLabel() Label { return Label{Name: "read_int"} }

// Instr is a single pseudo-x86 instruction.
type Instr interface {
	isInstr()
	String() string
}

type Addq struct{ Src, Dst Arg }
type Subq struct{ Src, Dst Arg }
type Movq struct{ Src, Dst Arg }
type Negq struct{ Dst Arg }
type Pushq struct{ Src Arg }
type Popq struct{ Dst Arg }
type Callq struct{ Target Label }
type Jumpq struct{ Target Label }
type Retq struct{}

func (*Addq) isInstr()  {}
func (*Subq) isInstr()  {}
func (*Movq) isInstr()  {}
func (*Negq) isInstr()  {}
func (*Pushq) isInstr() {}
func (*Popq) isInstr()  {}
func (*Callq) isInstr() {}
func (*Jumpq) isInstr() {}
func (*Retq) isInstr()  {}

func (i *Addq) String() string  { return fmt.Sprintf("addq %s, %s", i.Src, i.Dst) }
func (i *Subq) String() string  { return fmt.Sprintf("subq %s, %s", i.Src, i.Dst) }
func (i *Movq) String() string  { return fmt.Sprintf("movq %s, %s", i.Src, i.Dst) }
func (i *Negq) String() string  { return fmt.Sprintf("negq %s", i.Dst) }
func (i *Pushq) String() string { return fmt.Sprintf("pushq %s", i.Src) }
func (i *Popq) String() string  { return fmt.Sprintf("popq %s", i.Dst) }
func (i *Callq) String() string { return fmt.Sprintf("callq %s", i.Target.Name) }
func (i *Jumpq) String() string { return fmt.Sprintf("jmp %s", i.Target.Name) }
func (i *Retq) String() string  { return "retq" }

// BlockInfo carries per-block facts computed by assign-homes: the total
// bytes of stack space consumed by that block's local variables.
type BlockInfo struct {
	StackSpace int64
}

// Block is a labeled straight-line sequence of instructions.
type Block struct {
	Info   BlockInfo
	Instrs []Instr
}

// Program is a full PXIR compilation unit: one block per label.
type Program struct {
	Blocks map[Label]*Block
}
