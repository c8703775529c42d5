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
	"context"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/tabletdb/tabletdb/common"
	"github.com/tabletdb/tabletdb/proto"
)

// Client is the entry point of the locator: it owns the connections to the
// masters and the location cache built on top of them.
type Client struct {
	config ClientConfig
	pool   common.ClientPool
	master *masterFetcher
	cache  *LocationCache
	log    *slog.Logger
}

var _ io.Closer = (*Client)(nil)

func NewClient(config ClientConfig) (*Client, error) {
	if len(config.masterAddresses) == 0 {
		return nil, ErrInvalidOptionMasterAddresses
	}

	pool := common.NewClientPool()
	master := newMasterFetcher(pool, config)
	c := &Client{
		config: config,
		pool:   pool,
		master: master,
		cache:  NewLocationCache(master, config),
		log: slog.With(
			slog.String("component", "locator-client"),
			slog.String("client-id", config.Identity()),
		),
	}

	c.log.Debug(
		"Created locator client",
		slog.Any("masters", config.MasterAddresses()),
	)
	return c, nil
}

func (c *Client) Config() ClientConfig {
	return c.config
}

func (c *Client) Cache() *LocationCache {
	return c.cache
}

func (c *Client) Locate(ctx context.Context, table string, key []byte) (*TabletLocation, error) {
	return c.cache.Locate(ctx, table, key)
}

func (c *Client) Route(ctx context.Context, table string, key []byte) (Route, error) {
	return c.cache.Route(ctx, table, key)
}

func (c *Client) NewDispatcher(sender Sender) *Dispatcher {
	return NewDispatcher(c.cache, sender)
}

// CreateTable creates a table with one tablet per interval between the
// split keys, and returns the table id.
func (c *Client) CreateTable(ctx context.Context, name string, splitKeys ...[]byte) (string, error) {
	for i, key := range splitKeys {
		if len(key) == 0 || (i > 0 && bytes.Compare(splitKeys[i-1], key) >= 0) {
			return "", errors.Wrap(ErrInvalidTableSplit, "split keys must be non-empty and strictly increasing")
		}
	}
	return c.master.CreateTable(ctx, name, splitKeys)
}

// TabletLocations lists all the tablets of the table, walking the master
// metadata from the start of the key space. The tablets are cached on the
// way. The walk is bounded by the admin operation timeout.
func (c *Client) TabletLocations(ctx context.Context, table string) ([]*TabletLocation, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.AdminOperationTimeout())
	defer cancel()

	var all []*TabletLocation
	var key []byte
	for {
		res, err := c.master.GetTableLocations(ctx, &proto.GetTableLocationsRequest{
			TableName:            table,
			PartitionKeyStart:    key,
			MaxReturnedLocations: uint32(c.config.MaxReturnedLocations()),
			ClientId:             c.config.Identity(),
		})
		if err != nil {
			return nil, err
		}

		locations, err := newTabletLocations(table, res)
		if err != nil {
			return nil, err
		}
		if len(locations) == 0 {
			return all, nil
		}
		c.cache.prefill(table, locations)
		all = append(all, locations...)

		last := locations[len(locations)-1].keyRange
		if last.Unbounded() {
			return all, nil
		}
		if bytes.Compare(last.End, key) <= 0 {
			return nil, malformed("table %s listing does not advance past key %s", table, PrettyBytes(key))
		}
		key = last.End
	}
}

func (c *Client) Close() error {
	return multierr.Combine(
		c.cache.Close(),
		c.pool.Close(),
	)
}
