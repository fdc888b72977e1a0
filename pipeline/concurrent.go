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

package pipeline

import (
	"context"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// RunConcurrent runs a chain of instances of prog, one per phase setting, each
// in its own goroutine. It returns the same result as Run, or Feedback if
// feedback is true.
func RunConcurrent(ctx context.Context, prog vm.Program, input vm.Cell, feedback bool, phases ...vm.Cell) (vm.Cell, error) {
	insts, err := New(prog, phases)
	if err != nil {
		return 0, err
	}
	return DriveConcurrent(ctx, insts, input, feedback)
}

// DriveConcurrent is the concurrent counterpart of Drive: every instance runs
// in its own goroutine. Values travel between instances through unbounded
// queues, so an instance never blocks on output.
//
// The first error cancels all instances. Note that an instance is only
// stopped at its next input or output: cancelling ctx does not interrupt a
// program that neither reads nor writes. A chain where all instances wait for
// each other runs until ctx is cancelled.
func DriveConcurrent(ctx context.Context, insts []*vm.Instance, input vm.Cell, feedback bool) (vm.Cell, error) {
	n := len(insts)
	if n == 0 {
		return 0, ErrNoStages
	}
	// outs[k] carries the output of stage k, inboxes[k] its input.
	outs := make([]chan vm.Cell, n)
	inboxes := make([]chan vm.Cell, n)
	for k := range outs {
		outs[k] = make(chan vm.Cell)
		inboxes[k] = make(chan vm.Cell)
	}

	var (
		result vm.Cell
		hasOut bool
	)
	g, ctx := errgroup.WithContext(ctx)
	for k, i := range insts {
		k, i := k, i
		var (
			src   <-chan vm.Cell
			queue []vm.Cell
		)
		switch {
		case k > 0:
			src = outs[k-1]
		case feedback:
			src = outs[n-1]
			queue = []vm.Cell{input}
		default:
			closed := make(chan vm.Cell)
			close(closed)
			src = closed
			queue = []vm.Cell{input}
		}
		g.Go(func() error {
			return forward(ctx, queue, src, inboxes[k])
		})

		var out chan vm.Cell
		if k < n-1 || feedback {
			out = outs[k]
		}
		var onOut func(vm.Cell)
		if k == n-1 {
			onOut = func(v vm.Cell) { result, hasOut = v, true }
		}
		g.Go(func() error {
			return runStage(ctx, k, i, inboxes[k], out, onOut)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	if !hasOut {
		return 0, ErrNoOutput
	}
	return result, nil
}

// forward relays values from in to out through a queue that grows as needed.
// It closes out once in is closed and the queue is empty.
func forward(ctx context.Context, queue []vm.Cell, in <-chan vm.Cell, out chan<- vm.Cell) error {
	for in != nil || len(queue) > 0 {
		var (
			send chan<- vm.Cell
			next vm.Cell
		)
		if len(queue) > 0 {
			send, next = out, queue[0]
		}
		select {
		case v, ok := <-in:
			if !ok {
				in = nil
				break
			}
			queue = append(queue, v)
		case send <- next:
			queue = queue[1:]
			if len(queue) == 0 {
				queue = nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	close(out)
	return nil
}

// runStage drives i, reading input from in and sending output to out. Once
// halted, it closes out and drains in until closed.
func runStage(ctx context.Context, k int, i *vm.Instance, in <-chan vm.Cell, out chan<- vm.Cell, onOut func(vm.Cell)) error {
	for {
		sig, err := i.Run()
		if err != nil {
			return errors.Wrapf(err, "stage %d", k)
		}
		switch sig.Status {
		case vm.NeedsInput:
			select {
			case v, ok := <-in:
				if !ok {
					return errors.Wrapf(vm.ErrInputExhausted, "stage %d @pc=%d", k, i.PC)
				}
				if err = i.SetInput(v); err != nil {
					return errors.Wrapf(err, "stage %d", k)
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		case vm.Output:
			if onOut != nil {
				onOut(sig.Value)
			}
			if out == nil {
				continue
			}
			select {
			case out <- sig.Value:
			case <-ctx.Done():
				return ctx.Err()
			}
		case vm.Halted:
			if out != nil {
				close(out)
			}
			for {
				select {
				case _, ok := <-in:
					if !ok {
						return nil
					}
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
	}
}
