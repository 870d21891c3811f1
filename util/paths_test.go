// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/ledger/blocks.items", util.EnsureAbsolute("/data", "ledger/blocks.items"))
	assert.Equal(t, "/var/blocks.items", util.EnsureAbsolute("/data", "/var/./blocks.items"))
	assert.Equal(t, "/blocks.index", util.EnsureAbsolute("/data", "../blocks.index"))
}

func TestEnsureFileExists(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "blocks.index")

	assert.True(t, util.EnsureFileExists(dir))
	assert.False(t, util.EnsureFileExists(name))

	assert.NoError(t, os.WriteFile(name, nil, 0600))
	assert.True(t, util.EnsureFileExists(name))
}
