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

// Package vm implements an Intcode virtual machine.
//
// An Instance is created from a Program and driven by repeated calls to its
// Run method. Run executes instructions until one of three things happens:
//
//	- the machine executes a halt instruction: Run returns a Halted signal
//	  whose value is the content of memory address 0.
//	- the machine executes an input instruction and no input is pending: Run
//	  returns a NeedsInput signal. The instruction pointer is left on the
//	  input instruction so that it is executed again on the next call to Run,
//	  after the caller has supplied a value with SetInput.
//	- the machine executes an output instruction: Run returns an Output
//	  signal with the produced value. The instruction pointer has already
//	  moved past the output instruction.
//
// This makes an Instance usable as a pull based generator of output values
// interleaved with pushed input values. The Drive function wraps this loop
// around a pair of handler functions for callers that prefer callbacks.
//
// Memory is unbounded and zero initialized. Any fault (negative address,
// unknown opcode or parameter mode, write through an immediate parameter) is
// fatal: Run returns a *Error and the instance must not be used again.
//
// An Instance must be driven by a single goroutine. Distinct instances share
// nothing and can run concurrently, see package pipeline.
package vm
