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
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tabletdb/tabletdb/locator/internal/metrics"
	"github.com/tabletdb/tabletdb/proto"
)

// Flights are keyed either by the start of the uncached gap, so that misses
// anywhere in one gap share a fetch, or by the requested key itself, for a
// caller the shared fetch did not cover.
func gapFlightKey(gapStart []byte) string {
	return "g" + string(gapStart)
}

func keyFlightKey(key []byte) string {
	return "k" + string(key)
}

// MetadataFetcher asks the masters for the tablets of a table.
type MetadataFetcher interface {
	GetTableLocations(ctx context.Context, req *proto.GetTableLocationsRequest) (*proto.GetTableLocationsResponse, error)
}

// MetadataFetcherFunc adapts a function to the MetadataFetcher interface.
type MetadataFetcherFunc func(ctx context.Context, req *proto.GetTableLocationsRequest) (*proto.GetTableLocationsResponse, error)

func (f MetadataFetcherFunc) GetTableLocations(ctx context.Context,
	req *proto.GetTableLocationsRequest) (*proto.GetTableLocationsResponse, error) {
	return f(ctx, req)
}

// LocationCache resolves the tablet owning a key, fetching tablet locations
// from the masters on a miss.
//
// Entries never expire. They are dropped when a tablet server rejects a
// request routed with them, see Invalidate and InvalidateLocation.
type LocationCache struct {
	sync.RWMutex
	tables map[string]*tableIndex

	fetcher MetadataFetcher
	config  ClientConfig
	metrics *metrics.Metrics
	clock   func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	log    *slog.Logger
}

var _ io.Closer = (*LocationCache)(nil)

func NewLocationCache(fetcher MetadataFetcher, config ClientConfig) *LocationCache {
	c := &LocationCache{
		tables:  make(map[string]*tableIndex),
		fetcher: fetcher,
		config:  config,
		metrics: metrics.NewMetrics(config.MeterProvider()),
		clock:   time.Now,
		log: slog.With(
			slog.String("component", "location-cache"),
		),
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())
	return c
}

// Locate returns the tablet of table whose range covers key.
//
// The returned location is a snapshot: it stays valid and unchanged even
// after the cache replaces or drops it.
func (c *LocationCache) Locate(ctx context.Context, table string, key []byte) (*TabletLocation, error) {
	if c.ctx.Err() != nil {
		return nil, ErrClosed
	}

	idx := c.table(table)
	loc, gapStart, ok := idx.lookup(key)
	c.metrics.Lookup(ok)
	if ok {
		return loc, nil
	}

	// The gap flight asks the master about the key of whoever started it. A
	// caller left uncovered by it fetches its own key: only an answer for
	// that key proves the tablet does not exist.
	flightKey := gapFlightKey(gapStart)
	for {
		locations, started, err := idx.flights.do(ctx, flightKey,
			func() ([]*TabletLocation, bool) {
				if loc, _, ok := idx.lookup(key); ok {
					return []*TabletLocation{loc}, true
				}
				return nil, false
			},
			func(fctx context.Context) ([]*TabletLocation, error) {
				return c.fetch(fctx, idx, table, key)
			})

		if err != nil {
			if c.ctx.Err() != nil && isCanceled(err) {
				return nil, ErrClosed
			}
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				return nil, withKind(ErrMetadataUnavailable, err)
			}
			return nil, err
		}

		if loc := covering(locations, key); loc != nil {
			return loc, nil
		}
		if started || flightKey == keyFlightKey(key) {
			return nil, errors.Wrapf(ErrTabletNotFound, "table '%s' key %s", table, PrettyBytes(key))
		}
		flightKey = keyFlightKey(key)
	}
}

// isCanceled reports errors caused by a cancelled context, whether raised
// locally or carried back as a grpc status.
func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || status.Code(err) == codes.Canceled
}

func covering(locations []*TabletLocation, key []byte) *TabletLocation {
	for _, loc := range locations {
		if loc.Contains(key) {
			return loc
		}
	}
	return nil
}

func (c *LocationCache) fetch(ctx context.Context, idx *tableIndex, table string, key []byte) ([]*TabletLocation, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.OperationTimeout())
	defer cancel()

	done := c.metrics.FetchStarted()
	locations, err := c.doFetch(ctx, table, key)
	done(err)
	if err != nil {
		return nil, err
	}

	delta := idx.install(locations, c.clock())
	c.metrics.CachedTablets(delta)

	for _, loc := range locations {
		if loc.leaderCount() > 1 {
			c.log.Debug(
				"Tablet reports more than one leader, using the first",
				slog.String("table", table),
				slog.Any("tablet", loc),
			)
		}
	}
	c.log.Debug(
		"Installed tablet locations",
		slog.String("table", table),
		slog.String("key", PrettyBytes(key)),
		slog.Int("tablets", len(locations)),
	)
	return locations, nil
}

func (c *LocationCache) doFetch(ctx context.Context, table string, key []byte) ([]*TabletLocation, error) {
	res, err := c.fetcher.GetTableLocations(ctx, &proto.GetTableLocationsRequest{
		TableName:            table,
		PartitionKeyStart:    key,
		MaxReturnedLocations: uint32(c.config.MaxReturnedLocations()),
		ClientId:             c.config.Identity(),
	})
	if err != nil {
		if errors.Is(err, ErrTableNotFound) || errors.Is(err, ErrMalformedLocation) {
			return nil, err
		}
		return nil, withKind(ErrMetadataUnavailable, err)
	}

	locations, err := newTabletLocations(table, res)
	if err != nil {
		c.log.Warn(
			"Rejected malformed tablet locations",
			slog.String("table", table),
			slog.String("key", PrettyBytes(key)),
			slog.Any("error", err),
		)
		return nil, err
	}
	return locations, nil
}

func (c *LocationCache) table(table string) *tableIndex {
	c.RLock()
	idx, ok := c.tables[table]
	c.RUnlock()
	if ok {
		return idx
	}

	c.Lock()
	defer c.Unlock()
	if idx, ok = c.tables[table]; !ok {
		idx = newTableIndex(newFlightGroup[[]*TabletLocation](c.ctx))
		c.tables[table] = idx
	}
	return idx
}

// prefill installs locations fetched outside of Locate.
func (c *LocationCache) prefill(table string, locations []*TabletLocation) {
	if c.ctx.Err() != nil {
		return
	}
	delta := c.table(table).install(locations, c.clock())
	c.metrics.CachedTablets(delta)
}

func (c *LocationCache) indexes() []*tableIndex {
	c.RLock()
	defer c.RUnlock()
	indexes := make([]*tableIndex, 0, len(c.tables))
	for _, idx := range c.tables {
		indexes = append(indexes, idx)
	}
	return indexes
}

// Invalidate drops the cached location of the tablet, whatever table it
// belongs to. The next Locate for its range goes to the master.
func (c *LocationCache) Invalidate(tabletID []byte) bool {
	return c.invalidate(tabletID, nil)
}

// InvalidateLocation drops loc, unless the cache already replaced it with a
// fresher location of the same tablet.
func (c *LocationCache) InvalidateLocation(loc *TabletLocation) bool {
	if loc == nil {
		return false
	}
	return c.invalidate(loc.tabletID, loc)
}

func (c *LocationCache) invalidate(tabletID []byte, expected *TabletLocation) bool {
	for _, idx := range c.indexes() {
		if idx.invalidate(tabletID, expected) {
			c.metrics.Invalidated()
			c.metrics.CachedTablets(-1)
			c.log.Debug(
				"Invalidated tablet location",
				slog.String("tablet", PrettyBytes(tabletID)),
			)
			return true
		}
	}
	return false
}

// Entries lists the cached tablets of the table, ordered by start key.
func (c *LocationCache) Entries(table string) []CacheEntry {
	c.RLock()
	idx, ok := c.tables[table]
	c.RUnlock()
	if !ok {
		return nil
	}
	return idx.entries()
}

// Size is the number of cached tablets, across all tables.
func (c *LocationCache) Size() int {
	n := 0
	for _, idx := range c.indexes() {
		n += idx.size()
	}
	return n
}

// Close cancels the pending fetches. Later lookups fail with ErrClosed.
func (c *LocationCache) Close() error {
	c.cancel()
	return nil
}
