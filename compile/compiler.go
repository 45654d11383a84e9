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

// Package compile threads the eight lowering passes together, turning a
// source-level rir.Program into final x86-64 assembly text.
package compile

import (
	"os"

	log "github.com/sirupsen/logrus"

	"ember/cir"
	"ember/pxir"
	"ember/rir"
)

// DebugLogPasses gates per-pass tracing. Unlike the teacher's compile-time
// Debug... consts, this is a var so a compilation can be traced without
// recompiling: it defaults to on (mirroring the teacher's own
// DebugPrintTypedAst default) and can be turned off by setting
// EMBER_DEBUG_PASSES=0 before the process starts, or flipped directly by
// callers (tests included) that hold a reference to the package.
var DebugLogPasses = os.Getenv("EMBER_DEBUG_PASSES") != "0"

// Compile lowers prog through uniquify, arg-simplify, explicate,
// uncover-locals, select-instructions, assign-homes, patch, and emit, in
// that order, returning the final assembly text.
func Compile(prog *rir.Program) string {
	pxirProg := lowerToPXIR(prog)
	text := pxir.Emit(pxirProg)
	logPass("emit", nil)
	return text
}

// lowerToPXIR runs every pass up to (but not including) emit, returning
// the final PXIR program. Split out from Compile so tests can inspect
// the pre-emit program directly, e.g. to run it on a test-only
// interpreter for end-to-end equivalence checks.
func lowerToPXIR(prog *rir.Program) *pxir.Program {
	counter := rir.NewCounter(rir.DefaultCounterSeed)

	prog = rir.Uniquify(prog, counter)
	logPass("uniquify", counter)

	prog = rir.SimplifyArgs(prog, counter)
	logPass("arg_simplify", counter)

	cirProg := cir.Explicate(prog)
	logPass("explicate", nil)

	cirProg = cir.UncoverLocals(cirProg)
	logPass("uncover_locals", nil)

	pxirProg := pxir.SelectInstructions(cirProg)
	logPass("select_instr", nil)

	pxirProg = pxir.AssignHomes(pxirProg)
	logPass("assign_homes", nil)

	pxirProg = pxir.PatchInstructions(pxirProg)
	logPass("patch", nil)

	return pxirProg
}

func logPass(name string, counter *rir.Counter) {
	if !DebugLogPasses {
		return
	}
	entry := log.WithField("pass", name)
	if counter != nil {
		entry = entry.WithField("counter", counter.Value())
	}
	entry.Debug("pass complete")
}
