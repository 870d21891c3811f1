// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !linux

package sequence

import (
	"os"
)

func syncData(f *os.File) error {
	return f.Sync()
}
