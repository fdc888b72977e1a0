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

import (
	"strconv"

	"github.com/pkg/errors"
)

// Instance represents an Intcode VM instance.
type Instance struct {
	PC       Cell // Program Counter (aka. Instruction Pointer)
	RB       Cell // Relative base
	mem      *Memory
	input    Cell
	hasInput bool
	halted   bool
	err      error
	insCount int64
}

// Option interface
type Option func(*Instance) error

// Input sets the initial pending input, usually consumed by the first input
// instruction of the program (e.g. a phase setting).
func Input(v Cell) Option {
	return func(i *Instance) error {
		return i.SetInput(v)
	}
}

// Patch writes v at address addr before the program starts. This is commonly
// used to flip behavior flags in puzzle programs (e.g. writing 2 at address 0
// to enable "free play").
func Patch(addr, v Cell) Option {
	return func(i *Instance) error {
		return errors.Wrap(i.Poke(addr, v), "Patch")
	}
}

// DenseSlack sets how far past the end of contiguous memory a write can land
// and still extend it. Writes beyond that go to sparse storage. The default is
// DefaultDenseSlack cells.
func DenseSlack(n int) Option {
	return func(i *Instance) error {
		if n < 0 {
			return errors.Errorf("DenseSlack: negative size %d", n)
		}
		i.mem.slack = Cell(n)
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode VM instance.
//
// The program is copied into a fresh memory, so any number of instances can
// be created from the same Program. Options will be set by calling
// SetOptions.
func New(prog Program, opts ...Option) (*Instance, error) {
	i := &Instance{
		mem: NewMemory(prog),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// SetInput sets the pending input value, to be consumed by the next input
// instruction. It fails with ErrProtocol if a value is already pending or if
// the instance can no longer run.
func (i *Instance) SetInput(v Cell) error {
	if err := i.runnable(); err != nil {
		return err
	}
	if i.hasInput {
		return protocolError("input " + strconv.FormatInt(int64(i.input), 10) + " still pending")
	}
	i.input, i.hasInput = v, true
	return nil
}

// InputPending returns true if a value set by SetInput has not been consumed
// yet.
func (i *Instance) InputPending() bool {
	return i.hasInput
}

// Peek returns the value at address addr.
func (i *Instance) Peek(addr Cell) (Cell, error) {
	return i.mem.Read(addr)
}

// Poke sets the value at address addr.
func (i *Instance) Poke(addr, v Cell) error {
	return i.mem.Write(addr, v)
}

// Mem returns the instance memory. Changes made through it are seen by the
// running program.
func (i *Instance) Mem() *Memory {
	return i.mem
}

// Halted returns true if the instance has executed a halt instruction.
func (i *Instance) Halted() bool {
	return i.halted
}

// Err returns the fault that stopped the instance, if any.
func (i *Instance) Err() error {
	return i.err
}

// InstructionCount returns the number of instructions executed so far, over
// all calls to Run.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Clone returns an independent copy of the instance: memory, registers and
// pending input. A clone of a suspended machine resumes at the same point.
func (i *Instance) Clone() *Instance {
	c := *i
	c.mem = i.mem.clone()
	return &c
}

func (i *Instance) runnable() error {
	switch {
	case i.err != nil:
		return protocolError("instance faulted: " + i.err.Error())
	case i.halted:
		return protocolError("instance halted")
	}
	return nil
}
