// Copyright © 2025 Wolf Edge Labs, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cache provides the client-side query result cache. Entries expire
// on a per-entry TTL and there is no size bound - the entry count is bounded
// by the number of distinct query shapes the UI issues, not by data volume.
// Do not reuse this for high-cardinality keys.
package cache

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/wolfedge-labs/canton-ledger-gateway/pkg/canton"
)

type cacheEntry struct {
	value     []*canton.ContractRecord
	expiresAt time.Time
}

// QueryCache is a TTL-expiring store of query results. Construct instances
// explicitly with NewQueryCache - there is deliberately no package-level
// singleton, so tests and embedded uses get isolated state. The gateway's
// composition root holds the single process-wide instance.
type QueryCache struct {
	mux        sync.Mutex
	entries    map[string]*cacheEntry
	defaultTTL time.Duration

	// injectable for expiry tests
	now func() time.Time
}

// DefaultTTL balances near-real-time read freshness against redundant
// network calls.
const DefaultTTL = 1 * time.Minute

func NewQueryCache(defaultTTL time.Duration) *QueryCache {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &QueryCache{
		entries:    make(map[string]*cacheEntry),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Get returns the cached value for key, or (nil, false) if the key is absent
// or expired. Expired entries are evicted on read.
func (c *QueryCache) Get(key string) ([]*canton.ContractRecord, bool) {
	c.mux.Lock()
	defer c.mux.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

// Set stores value against key, overwriting any existing entry. A zero or
// negative ttl selects the cache's default TTL.
func (c *QueryCache) Set(key string, value []*canton.ContractRecord, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	c.mux.Lock()
	defer c.mux.Unlock()
	c.entries[key] = &cacheEntry{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
}

// Delete removes a single entry.
func (c *QueryCache) Delete(key string) {
	c.mux.Lock()
	defer c.mux.Unlock()
	delete(c.entries, key)
}

// Clear drops every entry. Called after any successful command submission -
// command effects are not locally predictable, so we trade extra re-fetches
// for guaranteed freshness.
func (c *QueryCache) Clear() {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// Len returns the current entry count, including not-yet-evicted expired
// entries.
func (c *QueryCache) Len() int {
	c.mux.Lock()
	defer c.mux.Unlock()
	return len(c.entries)
}

// QueryKey derives the cache key for a ledger query. The key is a pure
// function of the inputs: template IDs are joined in caller order (callers
// treat the order as significant, matching the wire request they issue), and
// the filter is JSON-serialized - encoding/json writes map keys sorted, so
// two deep-equal filters always produce the same key regardless of how they
// were built.
func QueryKey(templateIDs []string, query fftypes.JSONObject) string {
	queryJSON, err := json.Marshal(query)
	if err != nil {
		// JSONObject values originate from JSON, so this only fires on
		// programmatic misuse. Degrade to an uncacheable-looking key.
		queryJSON = []byte(fmt.Sprintf("%+v", query))
	}
	return fmt.Sprintf("query:%s:%s", strings.Join(templateIDs, ","), queryJSON)
}
