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

// Error kinds. Errors returned by Run and the memory accessors have one of
// these as their cause:
//
//	errors.Cause(err) == vm.ErrInvalidAddress
//
// The standard library errors.Is works as well.
var (
	ErrInvalidAddress     = errors.New("invalid address")
	ErrInvalidInstruction = errors.New("invalid instruction")
	ErrInvalidWriteTarget = errors.New("invalid write target")
	ErrProtocol           = errors.New("caller protocol violation")
)

// Error describes a VM fault.
//
// PC is the address of the faulting instruction and Word the instruction word
// found there. PC is -1 when the fault did not happen while executing an
// instruction (e.g. a direct memory access by the caller). Addr is the
// offending address for ErrInvalidAddress.
//
// A jump to a negative address faults with PC set to that address. Word is
// then 0.
type Error struct {
	Err  error
	PC   Cell
	Word Cell
	Addr Cell
	Msg  string

	run bool // raised by Run
}

func (e *Error) Error() string {
	b := make([]byte, 0, 64)
	b = append(b, e.Err.Error()...)
	if e.Msg != "" {
		b = append(b, ": "...)
		b = append(b, e.Msg...)
	}
	if e.Err == ErrInvalidAddress {
		b = append(b, ' ')
		b = strconv.AppendInt(b, int64(e.Addr), 10)
	}
	if e.run || e.PC >= 0 {
		b = append(b, " @pc="...)
		b = strconv.AppendInt(b, int64(e.PC), 10)
		if e.PC >= 0 {
			b = append(b, " (word "...)
			b = strconv.AppendInt(b, int64(e.Word), 10)
			b = append(b, ')')
		}
	}
	return string(b)
}

// Cause returns the error kind. It implements the causer interface of
// github.com/pkg/errors.
func (e *Error) Cause() error { return e.Err }

// Unwrap returns the error kind.
func (e *Error) Unwrap() error { return e.Err }

func addrError(addr Cell) *Error {
	return &Error{Err: ErrInvalidAddress, PC: -1, Addr: addr}
}

func protocolError(msg string) *Error {
	return &Error{Err: ErrProtocol, PC: -1, Msg: msg}
}
