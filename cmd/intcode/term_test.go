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

//go:build !windows

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestRawMode(t *testing.T) {
	var in unix.Termios
	in.Iflag = unix.IGNBRK | unix.ISTRIP | unix.IXON | unix.ICRNL
	in.Lflag = unix.ICANON | unix.ECHO | unix.ISIG
	in.Cc[unix.VMIN] = 0
	in.Cc[unix.VTIME] = 5

	out := rawMode(in)
	require.Zero(t, out.Iflag&(unix.IGNBRK|unix.ISTRIP|unix.IXON|unix.IXOFF))
	require.Equal(t, unix.BRKINT|unix.IGNPAR|unix.ICRNL, int(out.Iflag))
	require.Zero(t, out.Lflag&(unix.ICANON|unix.IEXTEN|unix.ECHO))
	require.NotZero(t, out.Lflag&unix.ISIG)
	require.EqualValues(t, 1, out.Cc[unix.VMIN])
	require.EqualValues(t, 0, out.Cc[unix.VTIME])
	// the original is left untouched
	require.NotZero(t, in.Iflag&unix.IGNBRK)
}
