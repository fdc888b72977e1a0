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

// Package program reads and writes Intcode programs in their usual text form:
// a comma separated list of signed decimal integers.
//
// Whitespace, including newlines, is allowed around values and commas. Values
// may also be written in hexadecimal (0x), octal (0o) or binary (0b) and Go
// style comments are skipped, which comes in handy for hand written test
// programs:
//
//	3,9,        // in  [9]
//	8,9,10,9,   // eq  [9] [10] -> [9]
//	4,9,        // out [9]
//	99,         /* halt */
//	-1,8
//
// Values without a prefix are decimal: leading zeros do not denote octal.
// A trailing comma is not allowed.
package program
