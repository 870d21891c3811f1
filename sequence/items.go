// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sequence

import (
	"io"
	"os"

	"github.com/bitmark-inc/ledgerd/fault"
)

// concatenated record bytes
type itemsFile struct {
	path string
	file *os.File
	size uint64 // physical length, may exceed the logical end
}

// open for random read and positioned write, created if absent
//
// second result is true when the file did not exist
func openItemsFile(path string) (*itemsFile, bool, error) {
	created := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		created = true
	} else if nil != err {
		return nil, false, fault.NewIOError("stat", path, err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if nil != err {
		return nil, false, fault.NewIOError("open", path, err)
	}

	info, err := f.Stat()
	if nil != err {
		f.Close()
		return nil, false, fault.NewIOError("stat", path, err)
	}

	t := &itemsFile{
		path: path,
		file: f,
		size: uint64(info.Size()),
	}
	return t, created, nil
}

func (t *itemsFile) close() error {
	if nil == t.file {
		return nil
	}
	err := t.file.Close()
	t.file = nil
	return fault.NewIOError("close", t.path, err)
}

// readAt - exactly size bytes, a short file is an error
func (t *itemsFile) readAt(offset uint64, size uint64) ([]byte, error) {
	buffer := make([]byte, size)
	n, err := t.file.ReadAt(buffer, int64(offset))
	if uint64(n) == size {
		return buffer, nil
	}
	if nil == err || io.EOF == err {
		err = io.ErrUnexpectedEOF
	}
	return nil, fault.NewIOError("read", t.path, err)
}

// appendAt - write at the logical end, which may be before the
// physical end after a torn write, returns the new logical end
func (t *itemsFile) appendAt(offset uint64, data []byte) (uint64, error) {
	if _, err := t.file.WriteAt(data, int64(offset)); nil != err {
		return offset, fault.NewIOError("write", t.path, err)
	}
	if err := syncData(t.file); nil != err {
		return offset, fault.NewIOError("sync", t.path, err)
	}
	end := offset + uint64(len(data))
	if end > t.size {
		t.size = end
	}
	return end, nil
}
