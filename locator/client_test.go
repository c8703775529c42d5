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
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabletdb/tabletdb/common"
	"github.com/tabletdb/tabletdb/standalone"
)

func clusterLayout(leader string) standalone.Layout {
	return standalone.Layout{
		TabletServers: []standalone.TabletServer{
			{UUID: "ts-1", Host: "host-1", Port: 7050},
			{UUID: "ts-2", Host: "host-2", Port: 7050},
		},
		Tables: []standalone.Table{{
			Name: "users",
			Tablets: []standalone.Tablet{
				{ID: "T0", End: "m", Replicas: []standalone.Replica{
					{UUID: "ts-1", Role: roleOf("ts-1", leader)},
					{UUID: "ts-2", Role: roleOf("ts-2", leader)},
				}},
				{ID: "T1", Start: "m", Replicas: []standalone.Replica{
					{UUID: "ts-2", Role: "LEADER"},
				}},
			},
		}},
	}
}

func roleOf(uuid, leader string) string {
	if uuid == leader {
		return "LEADER"
	}
	return "FOLLOWER"
}

func newTestMaster(t *testing.T, layout standalone.Layout) *standalone.Master {
	t.Helper()
	config := standalone.NewTestConfig()
	config.Layout = layout
	master, err := standalone.NewMaster(config)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, master.Close())
	})
	return master
}

func newTestClient(t *testing.T, addresses string, opts ...ClientOption) *Client {
	t.Helper()
	config, err := NewClientConfig(append([]ClientOption{WithMasterAddresses(addresses)}, opts...)...)
	require.NoError(t, err)
	client, err := NewClient(config)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, client.Close())
	})
	return client
}

func TestClient_Locate(t *testing.T) {
	master := newTestMaster(t, clusterLayout("ts-2"))
	client := newTestClient(t, master.Address())

	loc, err := client.Locate(context.Background(), "users", []byte("c"))
	require.NoError(t, err)
	assert.Equal(t, []byte("T0"), loc.TabletID())
	assert.Equal(t, KeyRange{End: []byte("m")}, loc.KeyRange())

	route, err := client.Route(context.Background(), "users", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, []byte("T1"), route.Tablet.TabletID())
	assert.Equal(t, "host-2:7050", route.LeaderAddress().MustGet().String())

	// Both tablets came with the first lookup.
	assert.EqualValues(t, 1, master.Requests())
	assert.Same(t, client.Cache(), client.Cache())
	assert.Equal(t, 2, client.Cache().Size())

	_, err = client.Locate(context.Background(), "missing", []byte("c"))
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestClient_MasterFailover(t *testing.T) {
	follower := newTestMaster(t, clusterLayout("ts-2"))
	follower.SetIsLeader(false)
	leader := newTestMaster(t, clusterLayout("ts-2"))

	client := newTestClient(t, follower.Address()+","+leader.Address())
	_, err := client.Locate(context.Background(), "users", []byte("c"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, follower.Requests())
	assert.EqualValues(t, 1, leader.Requests())

	client.Cache().Invalidate([]byte("T0"))
	_, err = client.Locate(context.Background(), "users", []byte("c"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, follower.Requests())
	assert.EqualValues(t, 2, leader.Requests())
}

func TestClient_MasterUnavailable(t *testing.T) {
	master := newTestMaster(t, clusterLayout("ts-2"))
	address := master.Address()
	require.NoError(t, master.Close())

	client := newTestClient(t, address, WithOperationTimeout(time.Second))
	_, err := client.Locate(context.Background(), "users", []byte("c"))
	assert.ErrorIs(t, err, ErrMetadataUnavailable)
	assert.Equal(t, 0, client.Cache().Size())
}

func TestClient_DispatchStaleLeader(t *testing.T) {
	master := newTestMaster(t, clusterLayout("ts-1"))
	client := newTestClient(t, master.Address())

	var attempts atomic.Int32
	dispatcher := client.NewDispatcher(SenderFunc(func(_ context.Context, route Route, op Operation) error {
		attempts.Add(1)
		if route.Leader.MustGet().UUID() == "ts-1" {
			// Leadership moved while the client had the tablet cached.
			assert.NoError(t, master.SetLayout(clusterLayout("ts-2")))
			return common.ErrorNotTabletLeader
		}
		return nil
	}))

	require.NoError(t, dispatcher.Dispatch(context.Background(), NewInsert("users", []byte("c"), nil)))
	assert.EqualValues(t, 2, attempts.Load())
	assert.EqualValues(t, 2, master.Requests())

	loc, err := client.Locate(context.Background(), "users", []byte("c"))
	require.NoError(t, err)
	assert.Equal(t, "ts-2", loc.Leader().MustGet().UUID())
}

func TestClient_CreateTable(t *testing.T) {
	master := newTestMaster(t, clusterLayout("ts-1"))
	client := newTestClient(t, master.Address(), WithNumReplicas(2), WithMaxReturnedLocations(1))

	id, err := client.CreateTable(context.Background(), "orders", []byte("g"), []byte("p"))
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = client.CreateTable(context.Background(), "orders")
	assert.ErrorIs(t, err, ErrTableExists)

	requests := master.Requests()
	_, err = client.CreateTable(context.Background(), "bad", []byte("p"), []byte("g"))
	assert.ErrorIs(t, err, ErrInvalidTableSplit)
	assert.Equal(t, requests, master.Requests())

	tablets, err := client.TabletLocations(context.Background(), "orders")
	require.NoError(t, err)
	require.Len(t, tablets, 3)
	var ranges []string
	for _, tablet := range tablets {
		ranges = append(ranges, tablet.KeyRange().String())
		assert.Len(t, tablet.Replicas(), 2)
		assert.True(t, tablet.Leader().Present())
	}
	assert.Equal(t, `["", "g") ["g", "p") ["p", <end>)`, strings.Join(ranges, " "))
	assert.Len(t, client.Cache().Entries("orders"), 3)

	_, err = client.TabletLocations(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(ClientConfig{})
	assert.ErrorIs(t, err, ErrInvalidOptionMasterAddresses)
}
