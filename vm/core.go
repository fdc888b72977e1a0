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

// Status tells why Run returned.
type Status int

// Run return statuses.
const (
	Halted Status = iota + 1
	NeedsInput
	Output
)

var statuses = [...]string{
	Halted:     "halted",
	NeedsInput: "needs input",
	Output:     "output",
}

func (s Status) String() string {
	if s > 0 && int(s) < len(statuses) {
		return statuses[s]
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// Signal is the result of a successful call to Run. Value is the content of
// address 0 for Halted and the produced value for Output.
type Signal struct {
	Status Status
	Value  Cell
}

func (s Signal) String() string {
	switch s.Status {
	case Halted, Output:
		return s.Status.String() + " " + strconv.FormatInt(int64(s.Value), 10)
	}
	return s.Status.String()
}

func (i *Instance) load(addr Cell) Cell {
	if addr < 0 {
		panic(addrError(addr))
	}
	return i.mem.get(addr)
}

func (i *Instance) store(addr, v Cell) {
	if addr < 0 {
		panic(addrError(addr))
	}
	i.mem.set(addr, v)
}

// arg returns the value of parameter n (0 based) of the current instruction.
func (i *Instance) arg(ins *Instruction, n int) Cell {
	v := i.load(i.PC + 1 + Cell(n))
	switch ins.Modes[n] {
	case Immediate:
		return v
	case Relative:
		v += i.RB
	}
	return i.load(v)
}

// dst returns the address designated by parameter n of the current
// instruction.
func (i *Instance) dst(ins *Instruction, n int) Cell {
	v := i.load(i.PC + 1 + Cell(n))
	switch ins.Modes[n] {
	case Immediate:
		panic(&Error{Err: ErrInvalidWriteTarget, Msg: "immediate mode for parameter " + strconv.Itoa(n+1)})
	case Relative:
		v += i.RB
	}
	if v < 0 {
		panic(addrError(v))
	}
	return v
}

func b2c(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

// Run executes the program until it halts, needs input or produces an
// output value. See the package documentation for the meaning of the
// returned Signal.
//
// If an error occurs, the PC will point to the instruction that triggered the
// error, the returned error will be a *Error and the instance must not be used
// anymore: further calls to Run or SetInput fail with ErrProtocol. Calling Run
// after the instance has halted fails with ErrProtocol as well.
func (i *Instance) Run() (sig Signal, err error) {
	if err = i.runnable(); err != nil {
		return sig, err
	}
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case *Error:
				e.PC, e.run = i.PC, true
				if i.PC >= 0 {
					e.Word = i.mem.get(i.PC)
				}
				i.err = e
				err = e
			default:
				panic(e)
			}
		}
	}()
	for {
		ins, e := Decode(i.load(i.PC))
		if e != nil {
			panic(e)
		}
		switch ins.Op {
		case OpAdd:
			i.store(i.dst(&ins, 2), i.arg(&ins, 0)+i.arg(&ins, 1))
			i.PC += 4
		case OpMul:
			i.store(i.dst(&ins, 2), i.arg(&ins, 0)*i.arg(&ins, 1))
			i.PC += 4
		case OpIn:
			if !i.hasInput {
				return Signal{Status: NeedsInput}, nil
			}
			i.store(i.dst(&ins, 0), i.input)
			i.input, i.hasInput = 0, false
			i.PC += 2
		case OpOut:
			v := i.arg(&ins, 0)
			i.PC += 2
			i.insCount++
			return Signal{Status: Output, Value: v}, nil
		case OpJumpTrue:
			if i.arg(&ins, 0) != 0 {
				i.PC = i.arg(&ins, 1)
			} else {
				i.PC += 3
			}
		case OpJumpFalse:
			if i.arg(&ins, 0) == 0 {
				i.PC = i.arg(&ins, 1)
			} else {
				i.PC += 3
			}
		case OpLess:
			i.store(i.dst(&ins, 2), b2c(i.arg(&ins, 0) < i.arg(&ins, 1)))
			i.PC += 4
		case OpEqual:
			i.store(i.dst(&ins, 2), b2c(i.arg(&ins, 0) == i.arg(&ins, 1)))
			i.PC += 4
		case OpAdjustBase:
			i.RB += i.arg(&ins, 0)
			i.PC += 2
		case OpHalt:
			i.halted = true
			i.insCount++
			return Signal{Status: Halted, Value: i.mem.get(0)}, nil
		}
		i.insCount++
	}
}
