// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build linux

package sequence

import (
	"os"

	"golang.org/x/sys/unix"
)

// flush file data, metadata is only flushed when needed to read the data back
func syncData(f *os.File) error {
	for {
		err := unix.Fdatasync(int(f.Fd()))
		if unix.EINTR != err {
			return err
		}
	}
}
