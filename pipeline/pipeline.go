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

// Package pipeline chains Intcode instances together: the output of an
// instance is fed as input to the next one.
//
// Every instance of a chain runs its own copy of the same program and is
// seeded with a phase setting, consumed by its first input instruction. In a
// linear pipeline, the first instance also receives the chain's input value
// and the last output of the last instance is the result. A feedback loop
// additionally wires the output of the last instance back into the first one
// and runs until every instance has halted.
//
// Drive, Run and Feedback round-robin all instances on the caller's
// goroutine. RunConcurrent runs each instance in its own goroutine and yields
// the same results.
package pipeline

import (
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

var (
	// ErrNoStages is returned when a chain is built without any phase setting.
	ErrNoStages = errors.New("no stages")
	// ErrDeadlock is returned by Drive when every running instance waits for
	// input that will never come.
	ErrDeadlock = errors.New("deadlock")
	// ErrNoOutput is returned when the last instance halted without producing
	// any value.
	ErrNoOutput = errors.New("no output")
)

// New returns one fresh instance of prog per phase setting. Each instance has
// its phase as pending input. Options are applied to every instance, after the
// phase.
func New(prog vm.Program, phases []vm.Cell, opts ...vm.Option) ([]*vm.Instance, error) {
	if len(phases) == 0 {
		return nil, ErrNoStages
	}
	insts := make([]*vm.Instance, len(phases))
	for k, p := range phases {
		i, err := vm.New(prog, append([]vm.Option{vm.Input(p)}, opts...)...)
		if err != nil {
			return nil, errors.Wrapf(err, "stage %d", k)
		}
		insts[k] = i
	}
	return insts, nil
}

type stage struct {
	*vm.Instance
	queue   []vm.Cell
	waiting bool
	halted  bool
}

// Drive feeds input to the first instance and runs the chain until every
// instance has halted. If feedback is true, the values output by the last
// instance are also fed back to the first one. It returns the last value
// output by the last instance.
//
// Instances are resumed in turn, each one until it halts or needs input that
// is not yet available. The first error from any instance aborts the whole
// chain and is returned wrapped with the index of the failing stage.
func Drive(insts []*vm.Instance, input vm.Cell, feedback bool) (vm.Cell, error) {
	if len(insts) == 0 {
		return 0, ErrNoStages
	}
	stages := make([]stage, len(insts))
	for k, i := range insts {
		stages[k].Instance = i
	}
	stages[0].queue = append(stages[0].queue, input)

	var (
		result  vm.Cell
		hasOut  bool
		running = len(stages)
		last    = len(stages) - 1
	)
	for running > 0 {
		progress := false
		for k := range stages {
			s := &stages[k]
			if s.halted || s.waiting && len(s.queue) == 0 {
				continue
			}
			for !s.halted {
				if s.waiting {
					if len(s.queue) == 0 {
						break
					}
					if err := s.SetInput(s.queue[0]); err != nil {
						return 0, errors.Wrapf(err, "stage %d", k)
					}
					s.queue = s.queue[1:]
					s.waiting = false
					progress = true
				}
				sig, err := s.Run()
				if err != nil {
					return 0, errors.Wrapf(err, "stage %d", k)
				}
				switch sig.Status {
				case vm.NeedsInput:
					s.waiting = true
				case vm.Output:
					progress = true
					if k < last {
						stages[k+1].queue = append(stages[k+1].queue, sig.Value)
						break
					}
					result, hasOut = sig.Value, true
					if feedback {
						stages[0].queue = append(stages[0].queue, sig.Value)
					}
				case vm.Halted:
					s.halted = true
					running--
					progress = true
				}
			}
		}
		if running > 0 && !progress {
			return 0, ErrDeadlock
		}
	}
	if !hasOut {
		return 0, ErrNoOutput
	}
	return result, nil
}

// Run runs a linear pipeline of instances of prog, one per phase setting, and
// returns the last output of the last instance.
func Run(prog vm.Program, input vm.Cell, phases ...vm.Cell) (vm.Cell, error) {
	insts, err := New(prog, phases)
	if err != nil {
		return 0, err
	}
	return Drive(insts, input, false)
}

// Feedback is like Run but wires the output of the last instance back into the
// first one.
func Feedback(prog vm.Program, input vm.Cell, phases ...vm.Cell) (vm.Cell, error) {
	insts, err := New(prog, phases)
	if err != nil {
		return 0, err
	}
	return Drive(insts, input, true)
}
