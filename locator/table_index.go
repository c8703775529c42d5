// Copyright 2023 StreamNative, Inc.
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

package locator

import (
	"bytes"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/btree"
)

const btreeDegree = 16

type cacheEntry struct {
	start     []byte
	location  *TabletLocation
	fetchedAt time.Time
}

func lessEntry(a, b *cacheEntry) bool {
	return bytes.Compare(a.start, b.start) < 0
}

// CacheEntry is a cached tablet location together with the time it was
// fetched from the master.
type CacheEntry struct {
	Location  *TabletLocation
	FetchedAt time.Time
}

// tableIndex holds the cached tablets of one table, ordered by start key.
//
// Readers never lock: they load the last published tree. Writers serialize on
// the mutex, change the private tree and publish a copy-on-write clone of it,
// so a write costs O(log n) and never blocks lookups.
type tableIndex struct {
	sync.Mutex
	tree *btree.BTreeG[*cacheEntry]
	byID map[string]*cacheEntry

	published atomic.Pointer[btree.BTreeG[*cacheEntry]]

	flights *flightGroup[[]*TabletLocation]
}

func newTableIndex(flights *flightGroup[[]*TabletLocation]) *tableIndex {
	t := &tableIndex{
		tree:    btree.NewG[*cacheEntry](btreeDegree, lessEntry),
		byID:    make(map[string]*cacheEntry),
		flights: flights,
	}
	t.publish()
	return t
}

func (t *tableIndex) publish() {
	t.published.Store(t.tree.Clone())
}

// lookup returns the cached tablet covering key. On a miss it returns the
// start of the uncached gap the key falls in: the end of the closest tablet
// before the key, or the beginning of the table.
func (t *tableIndex) lookup(key []byte) (loc *TabletLocation, gapStart []byte, ok bool) {
	var floor *cacheEntry
	t.published.Load().DescendLessOrEqual(&cacheEntry{start: key}, func(e *cacheEntry) bool {
		floor = e
		return false
	})

	if floor == nil {
		return nil, nil, false
	}
	if floor.location.Contains(key) {
		return floor.location, nil, true
	}
	return nil, floor.location.keyRange.End, false
}

// install adds the fetched tablets, replacing every cached entry that
// overlaps one of them or carries the same tablet id. It returns the change
// in the number of cached tablets.
func (t *tableIndex) install(locations []*TabletLocation, fetchedAt time.Time) (delta int) {
	t.Lock()
	defer t.Unlock()

	for _, loc := range locations {
		if loc.keyRange.IsEmpty() {
			continue
		}

		var victims []*cacheEntry
		if old, ok := t.byID[string(loc.tabletID)]; ok {
			victims = append(victims, old)
		}

		pivot := &cacheEntry{start: loc.keyRange.Start}
		t.tree.DescendLessOrEqual(pivot, func(e *cacheEntry) bool {
			if !bytes.Equal(e.start, pivot.start) && e.location.keyRange.Overlaps(loc.keyRange) {
				victims = append(victims, e)
			}
			return false
		})
		t.tree.AscendGreaterOrEqual(pivot, func(e *cacheEntry) bool {
			if !loc.keyRange.Unbounded() && bytes.Compare(e.start, loc.keyRange.End) >= 0 {
				return false
			}
			victims = append(victims, e)
			return true
		})

		for _, e := range victims {
			if t.remove(e) {
				delta--
			}
		}

		e := &cacheEntry{
			start:     loc.keyRange.Start,
			location:  loc,
			fetchedAt: fetchedAt,
		}
		t.tree.ReplaceOrInsert(e)
		t.byID[string(loc.tabletID)] = e
		delta++
	}

	t.publish()
	return delta
}

func (t *tableIndex) remove(e *cacheEntry) bool {
	current, ok := t.tree.Get(e)
	if !ok || current != e {
		return false
	}
	t.tree.Delete(e)
	if t.byID[string(e.location.tabletID)] == e {
		delete(t.byID, string(e.location.tabletID))
	}
	return true
}

// invalidate drops the tablet with the given id. When expected is set, the
// tablet is only dropped if the cached snapshot is still that one.
func (t *tableIndex) invalidate(tabletID []byte, expected *TabletLocation) bool {
	t.Lock()
	defer t.Unlock()

	e, ok := t.byID[string(tabletID)]
	if !ok || (expected != nil && e.location != expected) {
		return false
	}
	t.remove(e)
	t.publish()
	return true
}

func (t *tableIndex) entries() []CacheEntry {
	tree := t.published.Load()
	entries := make([]CacheEntry, 0, tree.Len())
	tree.Ascend(func(e *cacheEntry) bool {
		entries = append(entries, CacheEntry{Location: e.location, FetchedAt: e.fetchedAt})
		return true
	})
	return entries
}

func (t *tableIndex) size() int {
	return t.published.Load().Len()
}
