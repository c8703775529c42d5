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

package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

var locationsResponse = &GetTableLocationsResponse{
	TabletLocations: []*TabletLocationsPB{{
		TabletId:          []byte("t1"),
		PartitionKeyStart: []byte("a"),
		PartitionKeyEnd:   []byte("m"),
		Replicas: []*ReplicaPB{{
			TsUuid:       "ts-1",
			RpcAddresses: []*HostPortPB{{Host: "addr1", Port: 7050}},
			Role:         RaftRole_FOLLOWER,
		}, {
			TsUuid:       "ts-2",
			RpcAddresses: []*HostPortPB{{Host: "addr2", Port: 7050}, {Host: "alt2", Port: 17050}},
			Role:         RaftRole_LEADER,
		}},
	}, {
		TabletId:          []byte("t2"),
		PartitionKeyStart: []byte("m"),
	}},
}

func TestGetTableLocationsResponse(t *testing.T) {
	data, err := locationsResponse.MarshalVT()
	require.NoError(t, err)
	assert.Equal(t, len(data), locationsResponse.SizeVT())

	res := &GetTableLocationsResponse{}
	require.NoError(t, res.UnmarshalVT(data))
	assert.True(t, proto.Equal(locationsResponse, res))

	assert.Nil(t, res.TabletLocations[1].GetPartitionKeyEnd())
	assert.Empty(t, res.TabletLocations[1].GetReplicas())
	assert.Equal(t, "alt2", res.TabletLocations[0].Replicas[1].RpcAddresses[1].GetHost())
}

func TestVTProtoMatchesProtoEncoding(t *testing.T) {
	vt, err := locationsResponse.MarshalVT()
	require.NoError(t, err)
	std, err := proto.Marshal(locationsResponse)
	require.NoError(t, err)
	assert.Equal(t, std, vt)

	res := &GetTableLocationsResponse{}
	require.NoError(t, proto.Unmarshal(vt, res))
	assert.True(t, proto.Equal(locationsResponse, res))
}

func TestUnmarshalKeepsUnknownFields(t *testing.T) {
	data, err := (&HostPortPB{Host: "h", Port: 1}).MarshalVT()
	require.NoError(t, err)

	data = protowire.AppendTag(data, 15, protowire.BytesType)
	data = protowire.AppendString(data, "from a newer master")
	data = protowire.AppendTag(data, 16, protowire.Fixed64Type)
	data = protowire.AppendFixed64(data, 42)

	hp := &HostPortPB{}
	require.NoError(t, hp.UnmarshalVT(data))
	assert.Equal(t, "h", hp.GetHost())
	assert.EqualValues(t, 1, hp.GetPort())
	assert.NotEmpty(t, hp.ProtoReflect().GetUnknown())

	again, err := hp.MarshalVT()
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestUnmarshalUnknownRole(t *testing.T) {
	var data []byte
	data = protowire.AppendTag(data, 3, protowire.VarintType)
	data = protowire.AppendVarint(data, 999)

	r := &ReplicaPB{}
	require.NoError(t, r.UnmarshalVT(data))
	assert.Equal(t, RaftRole(999), r.GetRole())
	assert.Equal(t, "999", r.GetRole().String())
	assert.Equal(t, "LEADER", RaftRole_LEADER.String())
}

func TestUnmarshalKeepsWidePort(t *testing.T) {
	const wide = 1<<32 + 7050

	var data []byte
	data = protowire.AppendTag(data, 1, protowire.BytesType)
	data = protowire.AppendString(data, "h")
	data = protowire.AppendTag(data, 2, protowire.VarintType)
	data = protowire.AppendVarint(data, wide)

	hp := &HostPortPB{}
	require.NoError(t, hp.UnmarshalVT(data))
	assert.EqualValues(t, uint64(wide), hp.GetPort())

	fromProto := &HostPortPB{}
	require.NoError(t, proto.Unmarshal(data, fromProto))
	assert.EqualValues(t, uint64(wide), fromProto.GetPort())
}

func TestUnmarshalErrors(t *testing.T) {
	data, err := locationsResponse.MarshalVT()
	require.NoError(t, err)

	res := &GetTableLocationsResponse{}
	assert.Error(t, res.UnmarshalVT(data[:len(data)-3]))

	// Field 1 sent as a varint instead of an embedded message.
	var wrongType []byte
	wrongType = protowire.AppendTag(wrongType, 1, protowire.VarintType)
	wrongType = protowire.AppendVarint(wrongType, 1)
	assert.ErrorContains(t, (&GetTableLocationsResponse{}).UnmarshalVT(wrongType), "wrong wireType")
}

func TestCreateTableRequestKeepsEmptySplitKeys(t *testing.T) {
	req := &CreateTableRequest{
		Name:        "users",
		SplitKeys:   [][]byte{[]byte("g"), nil, []byte("t")},
		NumReplicas: 3,
	}
	data, err := req.MarshalVT()
	require.NoError(t, err)

	decoded := &CreateTableRequest{}
	require.NoError(t, decoded.UnmarshalVT(data))
	assert.True(t, proto.Equal(req, decoded))
	require.Len(t, decoded.SplitKeys, 3)
	assert.Empty(t, decoded.SplitKeys[1])
}

func TestMarshalToSizedBuffer(t *testing.T) {
	req := &GetTableLocationsRequest{TableName: "users", PartitionKeyStart: []byte("k"), MaxReturnedLocations: 10}
	expected, err := req.MarshalVT()
	require.NoError(t, err)

	buf := make([]byte, req.SizeVT()+4)
	n, err := req.MarshalToSizedBufferVT(buf)
	require.NoError(t, err)
	assert.Equal(t, expected, buf[len(buf)-n:])
}

func TestDescriptor(t *testing.T) {
	services := File_proto_master_proto.Services()
	require.Equal(t, 1, services.Len())
	assert.EqualValues(t, "tabletdb.proto.MasterService", services.Get(0).FullName())
	assert.Equal(t, MasterService_GetTableLocations_FullMethodName,
		"/"+string(services.Get(0).FullName())+"/"+string(services.Get(0).Methods().Get(0).Name()))

	port := (&HostPortPB{}).ProtoReflect().Descriptor().Fields().ByName("port")
	require.NotNil(t, port)
	assert.Equal(t, protoreflect.Uint64Kind, port.Kind())
}

func TestCodecRegistered(t *testing.T) {
	codec := encoding.GetCodec("proto")
	require.NotNil(t, codec)

	data, err := codec.Marshal(locationsResponse)
	require.NoError(t, err)

	res := &GetTableLocationsResponse{}
	require.NoError(t, codec.Unmarshal(data, res))
	assert.True(t, proto.Equal(locationsResponse, res))
}

func Benchmark_ProtoMarshall(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := proto.Marshal(locationsResponse)
		assert.NoError(b, err)
	}
}

func Benchmark_VTProtoMarshall(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := locationsResponse.MarshalVT()
		assert.NoError(b, err)
	}
}
