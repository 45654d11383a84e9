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

package compile

import (
	"ember/pxir"
	"ember/rir"
)

// evalRIR is a tiny tree-walking reference interpreter, duplicated here
// (rather than imported) since it exists purely as a test-only sanity
// check and is never part of either package's public surface.
func evalRIR(e rir.Expr, env map[rir.Symbol]int64) int64 {
	switch n := e.(type) {
	case *rir.IntLit:
		return n.Value
	case *rir.Neg:
		return -evalRIR(n.Operand, env)
	case *rir.Add:
		return evalRIR(n.Left, env) + evalRIR(n.Right, env)
	case *rir.Var:
		v, ok := env[n.Name]
		if !ok {
			panic("undefined variable: " + n.Name.Name)
		}
		return v
	case *rir.Let:
		env[n.Name] = evalRIR(n.Value, env)
		return evalRIR(n.Body, env)
	case *rir.Read:
		panic("evalRIR does not support Read; equivalence is only checked on Read-free programs")
	default:
		panic("unreachable rir expr kind")
	}
}

// pxirMachine is a minimal register/stack simulator for the final PXIR
// program, used only to check that compilation preserves the behavior of
// Read-free programs. It never executes main's prologue/epilogue or
// conclusion's epilogue, since neither touches %rax.
type pxirMachine struct {
	regs  map[pxir.Register]int64
	stack map[int64]int64
}

func newPxirMachine() *pxirMachine {
	return &pxirMachine{regs: make(map[pxir.Register]int64), stack: make(map[int64]int64)}
}

func (m *pxirMachine) read(a pxir.Arg) int64 {
	switch v := a.(type) {
	case *pxir.IntArg:
		return v.Value
	case *pxir.RegArg:
		return m.regs[v.Reg]
	case *pxir.DerefArg:
		return m.stack[v.Offset]
	default:
		panic("pxirMachine: unresolved operand")
	}
}

func (m *pxirMachine) write(a pxir.Arg, val int64) {
	switch v := a.(type) {
	case *pxir.RegArg:
		m.regs[v.Reg] = val
	case *pxir.DerefArg:
		m.stack[v.Offset] = val
	default:
		panic("pxirMachine: cannot write to this operand kind")
	}
}

// run executes prog's start block, stopping at the jump to conclusion
// (which never touches %rax), and returns the final %rax value.
func (m *pxirMachine) run(prog *pxir.Program) int64 {
	block := prog.Blocks[pxir.StartLabel]
	for _, instr := range block.Instrs {
		switch n := instr.(type) {
		case *pxir.Movq:
			m.write(n.Dst, m.read(n.Src))
		case *pxir.Addq:
			m.write(n.Dst, m.read(n.Dst)+m.read(n.Src))
		case *pxir.Subq:
			m.write(n.Dst, m.read(n.Dst)-m.read(n.Src))
		case *pxir.Negq:
			m.write(n.Dst, -m.read(n.Dst))
		case *pxir.Jumpq:
			return m.regs[pxir.Rax]
		case *pxir.Callq:
			panic("pxirMachine: unsupported call to " + n.Target.Name)
		default:
			panic("pxirMachine: unsupported instruction in start block")
		}
	}
	return m.regs[pxir.Rax]
}
