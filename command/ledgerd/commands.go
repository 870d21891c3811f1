// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/blockchain"
)

// setup command handler
//
// commands that cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "height", "h", "verify", "pop", "reset":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (?)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  height                     (h)      - display the block height and last digest\n")
		fmt.Printf("\n")

		fmt.Printf("  verify                              - check the digest chain of every block\n")
		fmt.Printf("\n")

		fmt.Printf("  pop [COUNT]                         - remove the highest COUNT blocks (default 1)\n")
		fmt.Printf("\n")

		fmt.Printf("  reset                               - remove all blocks and clear the index\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		_ = json.Indent(&out, b, "", "  ")
		_, _ = out.WriteTo(os.Stdout)
		_, _ = os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the ledger and its index are open so these commands can
// access and/or change them
func processDataCommand(log *logger.L, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "height", "h":
		fmt.Printf("height: %d\n", blockchain.Height())
		fmt.Printf("last block: %v\n", blockchain.LastDigest())

	case "verify":
		n, err := blockchain.Verify()
		if nil != err {
			log.Errorf("verify failed at block: %d  error: %s", n, err)
			exitwithstatus.Message("verify failed at block: %d  error: %s", n, err)
		}
		fmt.Printf("verified: %d blocks\n", n)

	case "pop":
		count := uint64(1)
		if len(arguments) > 0 {
			n, err := strconv.ParseUint(arguments[0], 10, 64)
			if nil != err {
				exitwithstatus.Message("error in block count: %s", err)
			}
			count = n
		}
		for i := uint64(0); i < count; i += 1 {
			entry, err := blockchain.PopBlock()
			if nil != err {
				exitwithstatus.Message("pop block error: %s", err)
			}
			log.Warnf("removed block: %d", entry.Height)
		}
		fmt.Printf("reduced height to: %d\n", blockchain.Height())

	case "reset":
		err := blockchain.Reset()
		if nil != err {
			exitwithstatus.Message("reset error: %s", err)
		}
		log.Warn("ledger cleared")
		fmt.Printf("ledger cleared\n")

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}
