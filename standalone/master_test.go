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

package standalone

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gopkg.in/yaml.v3"

	"github.com/tabletdb/tabletdb/common"
	"github.com/tabletdb/tabletdb/proto"
)

func testLayout() Layout {
	return Layout{
		TabletServers: []TabletServer{
			{UUID: "ts-1", Host: "host-1", Port: 7050},
			{UUID: "ts-2", Host: "host-2", Port: 7050},
			{UUID: "ts-3", Host: "host-3", Port: 7050},
		},
		Tables: []Table{{
			Name: "users",
			Tablets: []Tablet{
				{ID: "T1", Start: "m", End: "", Replicas: []Replica{{UUID: "ts-2", Role: "LEADER"}}},
				{ID: "T0", Start: "", End: "m", Replicas: []Replica{
					{UUID: "ts-1", Role: "FOLLOWER"},
					{UUID: "ts-2", Role: "LEADER"},
				}},
			},
		}},
	}
}

func newTestMaster(t *testing.T, layout Layout) (*Master, proto.MasterServiceClient) {
	t.Helper()
	config := NewTestConfig()
	config.Layout = layout
	master, err := NewMaster(config)
	require.NoError(t, err)

	pool := common.NewClientPool()
	rpc, err := pool.GetMasterRpc(master.Address())
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, pool.Close())
		assert.NoError(t, master.Close())
	})
	return master, rpc
}

func TestMaster_GetTableLocations(t *testing.T) {
	master, rpc := newTestMaster(t, testLayout())

	res, err := rpc.GetTableLocations(context.Background(), &proto.GetTableLocationsRequest{
		TableName:         "users",
		PartitionKeyStart: []byte("c"),
	})
	require.NoError(t, err)
	require.Len(t, res.TabletLocations, 2)

	first := res.TabletLocations[0]
	assert.Equal(t, []byte("T0"), first.TabletId)
	assert.Empty(t, first.PartitionKeyStart)
	assert.Equal(t, []byte("m"), first.PartitionKeyEnd)
	require.Len(t, first.Replicas, 2)
	assert.Equal(t, "ts-1", first.Replicas[0].TsUuid)
	assert.Equal(t, proto.RaftRole_FOLLOWER, first.Replicas[0].Role)
	assert.Equal(t, "host-1", first.Replicas[0].RpcAddresses[0].Host)
	assert.EqualValues(t, 7050, first.Replicas[0].RpcAddresses[0].Port)
	assert.Equal(t, proto.RaftRole_LEADER, first.Replicas[1].Role)

	res, err = rpc.GetTableLocations(context.Background(), &proto.GetTableLocationsRequest{
		TableName:            "users",
		PartitionKeyStart:    []byte("m"),
		MaxReturnedLocations: 1,
	})
	require.NoError(t, err)
	require.Len(t, res.TabletLocations, 1)
	assert.Equal(t, []byte("T1"), res.TabletLocations[0].TabletId)

	_, err = rpc.GetTableLocations(context.Background(), &proto.GetTableLocationsRequest{TableName: "missing"})
	assert.Equal(t, common.CodeTableNotFound, status.Code(err))
	assert.EqualValues(t, 3, master.Requests())
}

func TestMaster_NotLeaderAndFailures(t *testing.T) {
	master, rpc := newTestMaster(t, testLayout())
	req := &proto.GetTableLocationsRequest{TableName: "users"}

	master.SetIsLeader(false)
	_, err := rpc.GetTableLocations(context.Background(), req)
	assert.Equal(t, common.CodeNotLeaderMaster, status.Code(err))

	master.SetIsLeader(true)
	master.SetFailure(status.Error(codes.Unavailable, "overloaded"))
	_, err = rpc.GetTableLocations(context.Background(), req)
	assert.Equal(t, codes.Unavailable, status.Code(err))

	master.SetFailure(nil)
	_, err = rpc.GetTableLocations(context.Background(), req)
	assert.NoError(t, err)
}

func TestMaster_SetLayout(t *testing.T) {
	master, rpc := newTestMaster(t, testLayout())

	layout := testLayout()
	layout.Tables[0].Tablets = []Tablet{{ID: "T2", Replicas: []Replica{{UUID: "ts-3", Role: "LEADER"}}}}
	require.NoError(t, master.SetLayout(layout))
	assert.Equal(t, layout, master.Layout())

	res, err := rpc.GetTableLocations(context.Background(), &proto.GetTableLocationsRequest{TableName: "users"})
	require.NoError(t, err)
	require.Len(t, res.TabletLocations, 1)
	assert.Equal(t, []byte("T2"), res.TabletLocations[0].TabletId)

	layout.Tables[0].Tablets[0].Replicas[0].UUID = "unknown"
	assert.ErrorIs(t, master.SetLayout(layout), ErrInvalidLayout)
}

func TestMaster_CreateTable(t *testing.T) {
	_, rpc := newTestMaster(t, testLayout())

	res, err := rpc.CreateTable(context.Background(), &proto.CreateTableRequest{
		Name:        "orders",
		SplitKeys:   [][]byte{[]byte("g"), []byte("p")},
		NumReplicas: 3,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.TableId)

	locations, err := rpc.GetTableLocations(context.Background(), &proto.GetTableLocationsRequest{TableName: "orders"})
	require.NoError(t, err)
	require.Len(t, locations.TabletLocations, 3)
	for i, tablet := range locations.TabletLocations {
		require.Len(t, tablet.Replicas, 3)
		assert.Equal(t, proto.RaftRole_LEADER, tablet.Replicas[0].Role)
		assert.Equal(t, proto.RaftRole_FOLLOWER, tablet.Replicas[1].Role)
		// Leaders are spread over the servers.
		assert.Equal(t, testLayout().TabletServers[i].UUID, tablet.Replicas[0].TsUuid)
	}
	assert.Empty(t, locations.TabletLocations[0].PartitionKeyStart)
	assert.Equal(t, []byte("g"), locations.TabletLocations[0].PartitionKeyEnd)
	assert.Equal(t, []byte("p"), locations.TabletLocations[2].PartitionKeyStart)
	assert.Empty(t, locations.TabletLocations[2].PartitionKeyEnd)

	for _, item := range []struct {
		name string
		req  *proto.CreateTableRequest
		code codes.Code
	}{
		{"exists", &proto.CreateTableRequest{Name: "orders", NumReplicas: 1}, codes.AlreadyExists},
		{"no-name", &proto.CreateTableRequest{NumReplicas: 1}, codes.InvalidArgument},
		{"unsorted", &proto.CreateTableRequest{Name: "a", NumReplicas: 1,
			SplitKeys: [][]byte{[]byte("p"), []byte("g")}}, common.CodeInvalidPartition},
		{"empty-split", &proto.CreateTableRequest{Name: "b", NumReplicas: 1,
			SplitKeys: [][]byte{{}}}, common.CodeInvalidPartition},
		{"too-many-replicas", &proto.CreateTableRequest{Name: "c", NumReplicas: 4}, codes.InvalidArgument},
	} {
		t.Run(item.name, func(t *testing.T) {
			_, err := rpc.CreateTable(context.Background(), item.req)
			assert.Equal(t, item.code, status.Code(err))
		})
	}
}

func TestLayout_Validate(t *testing.T) {
	assert.NoError(t, testLayout().Validate())

	for _, item := range []struct {
		name   string
		modify func(l *Layout)
	}{
		{"overlap", func(l *Layout) { l.Tables[0].Tablets[0].Start = "k" }},
		{"unbounded-before-other", func(l *Layout) { l.Tables[0].Tablets[1].End = "" }},
		{"duplicate-table", func(l *Layout) { l.Tables = append(l.Tables, l.Tables[0]) }},
		{"bad-role", func(l *Layout) { l.Tables[0].Tablets[0].Replicas[0].Role = "BOSS" }},
		{"bad-server", func(l *Layout) { l.TabletServers[0].Port = 0 }},
		{"empty-range", func(l *Layout) { l.Tables[0].Tablets[0].End = "m" }},
	} {
		t.Run(item.name, func(t *testing.T) {
			layout := testLayout()
			item.modify(&layout)
			assert.ErrorIs(t, layout.Validate(), ErrInvalidLayout)
		})
	}
}

func TestParseLayout(t *testing.T) {
	data, err := yaml.Marshal(testLayout())
	require.NoError(t, err)

	layout, err := ParseLayout(data)
	require.NoError(t, err)
	assert.Equal(t, testLayout(), layout)

	_, err = ParseLayout([]byte("tables: [{name: users, tablets: [{id: T0, replicas: [{uuid: nobody, role: LEADER}]}]}]"))
	assert.ErrorIs(t, err, ErrInvalidLayout)

	_, err = ParseLayout([]byte("tables: {"))
	assert.Error(t, err)
}

func TestSingleTabletLayout(t *testing.T) {
	layout := SingleTabletLayout("localhost", 7050, "users", "orders")
	assert.NoError(t, layout.Validate())
	assert.Len(t, layout.Tables, 2)
}
