// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import "strconv"

// Opcode is the two low decimal digits of an instruction word.
type Opcode Cell

// Intcode opcodes.
const (
	OpAdd        Opcode = 1
	OpMul        Opcode = 2
	OpIn         Opcode = 3
	OpOut        Opcode = 4
	OpJumpTrue   Opcode = 5
	OpJumpFalse  Opcode = 6
	OpLess       Opcode = 7
	OpEqual      Opcode = 8
	OpAdjustBase Opcode = 9
	OpHalt       Opcode = 99
)

// Mode is a parameter mode.
type Mode Cell

// Parameter modes.
const (
	Position  Mode = 0
	Immediate Mode = 1
	Relative  Mode = 2
)

var modes = [...]string{"position", "immediate", "relative"}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modes) {
		return modes[m]
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

var opcodes = [...]struct {
	name  string
	arity int
}{
	OpAdd:        {"add", 3},
	OpMul:        {"mul", 3},
	OpIn:         {"in", 1},
	OpOut:        {"out", 1},
	OpJumpTrue:   {"jnz", 2},
	OpJumpFalse:  {"jz", 2},
	OpLess:       {"lt", 3},
	OpEqual:      {"eq", 3},
	OpAdjustBase: {"arb", 1},
	OpHalt:       {"halt", 0},
}

func (op Opcode) valid() bool {
	return op > 0 && int(op) < len(opcodes) && opcodes[op].name != ""
}

func (op Opcode) String() string {
	if op.valid() {
		return opcodes[op].name
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// Arity returns the number of parameters of the instruction, or -1 if op is
// not a valid opcode.
func (op Opcode) Arity() int {
	if !op.valid() {
		return -1
	}
	return opcodes[op].arity
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Op    Opcode
	Modes [3]Mode
}

// Decode splits an instruction word into its opcode and parameter modes.
//
// It fails with ErrInvalidInstruction if the opcode is unknown, if a mode is
// not one of Position, Immediate or Relative, or if the word carries a non
// zero mode for a parameter the opcode does not take.
func Decode(w Cell) (ins Instruction, err error) {
	bad := func(msg string) (Instruction, error) {
		return Instruction{}, &Error{Err: ErrInvalidInstruction, PC: -1, Word: w, Msg: msg}
	}
	if w < 0 {
		return bad("negative instruction word")
	}
	ins.Op = Opcode(w % 100)
	if !ins.Op.valid() {
		return bad("unknown opcode " + strconv.Itoa(int(ins.Op)))
	}
	arity := opcodes[ins.Op].arity
	m := w / 100
	for k := range ins.Modes {
		mode := Mode(m % 10)
		m /= 10
		if k >= arity {
			if mode != 0 {
				return bad("mode set on missing parameter " + strconv.Itoa(k+1))
			}
			continue
		}
		if mode > Relative {
			return bad("bad mode " + strconv.Itoa(int(mode)) + " for parameter " + strconv.Itoa(k+1))
		}
		ins.Modes[k] = mode
	}
	if m != 0 {
		return bad("too many mode digits")
	}
	return ins, nil
}
