// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// Cache - writes pending in the current batch, so that reads inside a
// transaction observe them
type Cache interface {
	Get(string) (cacheData, bool)
	Set(dbOperation, string, []byte)
	Clear()
	Len() int
}

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

// entries never expire, the whole cache is flushed at the end of each batch
func newCache() Cache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get - the pending operation for a key, if any
func (c *dbCache) Get(key string) (cacheData, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return cacheData{}, false
	}
	return obj.(cacheData), true
}

// Set - record a pending put or delete
func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.NoExpiration)
}

// Clear - forget all pending operations
func (c *dbCache) Clear() {
	c.cache.Flush()
}

// Len - number of pending keys
func (c *dbCache) Len() int {
	return c.cache.ItemCount()
}
