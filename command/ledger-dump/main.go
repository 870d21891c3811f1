// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerd/blockrecord"
	"github.com/bitmark-inc/ledgerd/sequence"
	"github.com/bitmark-inc/ledgerd/util"
)

// decoded blocks kept while dumping
const dumpCacheSize = 16

type metadata struct {
	store   *sequence.Store[*blockrecord.Entry]
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "ledger-dump"
	app.Usage = "inspect the block sequence files of a stopped ledgerd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "index, x",
			Value: "blocks.index",
			Usage: " block index `FILE`",
		},
		cli.StringFlag{
			Name:  "items, i",
			Value: "blocks.items",
			Usage: " block items `FILE`",
		},
		cli.StringFlag{
			Name:  "log, l",
			Value: os.TempDir(),
			Usage: " log `DIRECTORY`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "stats",
			Usage:  "display record count and file offsets",
			Action: runStats,
		},
		{
			Name:      "blocks",
			Usage:     "dump a range of blocks as JSON",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first block `HEIGHT`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 10,
					Usage: " maximum number of blocks `COUNT`",
				},
				cli.BoolFlag{
					Name:  "reverse, r",
					Usage: " walk down towards the genesis block",
				},
			},
			Action: runBlocks,
		},
		{
			Name:      "block",
			Usage:     "dump a single block as JSON",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "height, n",
					Value: 0,
					Usage: "*block `HEIGHT`",
				},
			},
			Action: runBlock,
		},
		{
			Name:   "version",
			Usage:  "display ledger-dump version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command {
			return nil
		}

		indexFile := c.GlobalString("index")
		itemsFile := c.GlobalString("items")

		// never create files for a dump
		for _, f := range []string{indexFile, itemsFile} {
			if !util.EnsureFileExists(f) {
				return fmt.Errorf("file: %q does not exist", f)
			}
		}

		logging := logger.Configuration{
			Directory: c.GlobalString("log"),
			File:      "ledger-dump.log",
			Size:      1048576,
			Count:     10,
			Console:   verbose,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		}
		if verbose {
			logging.Levels[logger.DefaultTag] = "info"
		}
		if err := logger.Initialise(logging); nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "index: %q\n", indexFile)
			fmt.Fprintf(e, "items: %q\n", itemsFile)
		}

		store, err := sequence.Open[*blockrecord.Entry](indexFile, itemsFile, blockrecord.EntryCodec{}, dumpCacheSize)
		if nil != err {
			logger.Finalise()
			return err
		}

		c.App.Metadata["config"] = &metadata{
			store:   store,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		err := m.store.Close()
		logger.Finalise()
		return err
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
