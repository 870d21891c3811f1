// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/background"
	"github.com/bitmark-inc/ledgerd/blockchain"
)

const (
	memoryStatsDelay = 60 * time.Second
	mega             = 1048576
)

// periodic ledger and memory reporting
func statsProcesses(interval int, memory bool) background.Processes {
	processes := background.Processes{}

	if interval > 0 {
		log := logger.New("stats")
		processes = append(processes, background.NewTicker(time.Duration(interval)*time.Second, func(interface{}) {
			ledgerStats(log)
		}))
	}

	if memory {
		log := logger.New("memory")
		processes = append(processes, background.NewTicker(memoryStatsDelay, func(interface{}) {
			memoryStats(log)
		}))
	}
	return processes
}

func ledgerStats(log *logger.L) {
	s := blockchain.Stats()
	log.Infof("height: %d  last block: %v", blockchain.Height(), blockchain.LastDigest())
	log.Infof("hits: %d  misses: %d  hit ratio: %.2f%%", s.Hits, s.Misses, s.Ratio())
}

func memoryStats(log *logger.L) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	text, err := json.Marshal(m)
	if nil != err {
		log.Errorf("marshal error: %s", err)
	} else {
		log.Debugf("stats: %s", text)
	}
	a := m.Alloc / mega
	t := m.TotalAlloc / mega
	s := m.Sys / mega
	log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, s)
}
