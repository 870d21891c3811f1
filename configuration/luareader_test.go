// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ledgerd/configuration"
	"github.com/bitmark-inc/ledgerd/fault"
)

type ledgerType struct {
	Directory string `gluamapper:"directory"`
	CacheSize int    `gluamapper:"cache_size"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Chain         string            `gluamapper:"chain"`
	Interval      int               `gluamapper:"stats_interval"`
	Ledger        ledgerType        `gluamapper:"ledger"`
	Levels        map[string]string `gluamapper:"levels"`
}

const testConfig = `
local M = {}

M.data_directory = arg[0]:match("(.*/)")
M.chain = "local"
M.stats_interval = 30

M.ledger = {
    directory = "blocks",
    cache_size = 2 * 512,
}

M.levels = {
    DEFAULT = "info",
    storage = "debug",
}

return M
`

func writeConfig(t *testing.T, text string) string {
	fileName := filepath.Join(t.TempDir(), "ledgerd.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(text), 0600))
	return fileName
}

func TestParse(t *testing.T) {
	fileName := writeConfig(t, testConfig)

	config := testConfiguration{
		Chain: "bitmark",
		Ledger: ledgerType{
			Directory: "default",
		},
	}
	err := configuration.ParseConfigurationFile(fileName, &config)
	require.NoError(t, err)

	assert.Equal(t, filepath.Dir(fileName)+"/", config.DataDirectory, "arg[0] not set")
	assert.Equal(t, "local", config.Chain)
	assert.Equal(t, 30, config.Interval)
	assert.Equal(t, "blocks", config.Ledger.Directory)
	assert.Equal(t, 1024, config.Ledger.CacheSize)
	assert.Equal(t, map[string]string{"DEFAULT": "info", "storage": "debug"}, config.Levels)
}

func TestDefaultsRetained(t *testing.T) {
	fileName := writeConfig(t, "return { chain = \"testing\" }\n")

	config := testConfiguration{
		Interval: 60,
		Ledger: ledgerType{
			Directory: "default",
			CacheSize: 100,
		},
	}
	require.NoError(t, configuration.ParseConfigurationFile(fileName, &config))

	assert.Equal(t, "testing", config.Chain)
	assert.Equal(t, 60, config.Interval)
	assert.Equal(t, "default", config.Ledger.Directory)
	assert.Equal(t, 100, config.Ledger.CacheSize)
}

func TestParseErrors(t *testing.T) {
	config := testConfiguration{}

	err := configuration.ParseConfigurationFile(writeConfig(t, "return 42\n"), &config)
	assert.Error(t, err, "non table result")

	err = configuration.ParseConfigurationFile(writeConfig(t, "return {\n"), &config)
	assert.Error(t, err, "syntax error")

	err = configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "missing.conf"), &config)
	assert.Error(t, err, "missing file")

	err = configuration.ParseConfigurationFile(writeConfig(t, testConfig), config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)
}
