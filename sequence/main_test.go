// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sequence

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/util"
)

const (
	logDirectory = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(logDirectory)
	_ = os.Mkdir(logDirectory, 0700)

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(logDirectory)
	os.Exit(rc)
}

// StringCodec - length prefixed strings, a string of n < 128 bytes
// packs to n+1 bytes
type StringCodec struct{}

func (StringCodec) Pack(record string) ([]byte, error) {
	return util.PackBuffer(nil).AppendBytes([]byte(record)), nil
}

func (StringCodec) Unpack(buffer []byte) (string, int, error) {
	u := util.NewUnpackBuffer(buffer)
	b, err := u.Bytes("string")
	if nil != err {
		return "", 0, err
	}
	return string(b), u.Consumed(), nil
}
