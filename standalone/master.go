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
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tabletdb/tabletdb/common"
	"github.com/tabletdb/tabletdb/common/container"
	"github.com/tabletdb/tabletdb/common/metrics"
	"github.com/tabletdb/tabletdb/proto"
)

// DefaultMaxReturnedLocations applies when a request does not set a limit.
const DefaultMaxReturnedLocations = 10

type Config struct {
	BindAddress        string
	MetricsServiceAddr string
	Layout             Layout
}

const (
	DefaultBindAddress        = "0.0.0.0:7051"
	DefaultMetricsServiceAddr = "0.0.0.0:8080"
)

func NewConfig() Config {
	return Config{
		BindAddress:        DefaultBindAddress,
		MetricsServiceAddr: DefaultMetricsServiceAddr,
	}
}

func NewTestConfig() Config {
	return Config{
		BindAddress: "localhost:0",
	}
}

// Master is a single master node serving a static tablet layout. It is meant
// for development and tests: the layout can be swapped at runtime, and the
// master can be told to fail or to step down.
type Master struct {
	proto.UnimplementedMasterServiceServer

	sync.RWMutex
	layout   Layout
	tables   map[string]*tableState
	failure  error
	isLeader bool

	grpcServer container.GrpcServer
	metrics    *metrics.PrometheusMetrics

	requests       atomic.Int64
	lookupRequests metrics.Counter
	createRequests metrics.Counter
	lookupLatency  metrics.LatencyHistogram

	log *slog.Logger
}

func NewMaster(config Config) (*Master, error) {
	return NewMasterWithProvider(config, container.Default)
}

func NewMasterWithProvider(config Config, provider container.GrpcProvider) (*Master, error) {
	if err := config.Layout.Validate(); err != nil {
		return nil, err
	}

	m := &Master{
		layout:   config.Layout,
		tables:   config.Layout.compile(),
		isLeader: true,
		lookupRequests: metrics.NewCounter("tabletdb_master_lookup_requests",
			"Tablet location lookups served", metrics.Dimensionless, map[string]any{}),
		createRequests: metrics.NewCounter("tabletdb_master_create_table_requests",
			"Create table requests served", metrics.Dimensionless, map[string]any{}),
		lookupLatency: metrics.NewLatencyHistogram("tabletdb_master_lookup_latency",
			"Latency of tablet location lookups", map[string]any{}),
		log: slog.With(
			slog.String("component", "standalone-master"),
		),
	}

	var err error
	m.grpcServer, err = provider.StartGrpcServer("master", config.BindAddress, func(registrar grpc.ServiceRegistrar) {
		proto.RegisterMasterServiceServer(registrar, m)
	})
	if err != nil {
		return nil, err
	}

	if config.MetricsServiceAddr != "" {
		if m.metrics, err = metrics.Start(config.MetricsServiceAddr); err != nil {
			return nil, multierr.Combine(err, m.grpcServer.Close())
		}
	}

	m.log.Info(
		"Started standalone master",
		slog.Int("port", m.grpcServer.Port()),
		slog.Int("tables", len(m.tables)),
	)
	return m, nil
}

func (m *Master) Port() int {
	return m.grpcServer.Port()
}

func (m *Master) Address() string {
	return fmt.Sprintf("localhost:%d", m.grpcServer.Port())
}

// SetLayout replaces the served layout. Clients only see the change once
// their cached locations get invalidated.
func (m *Master) SetLayout(layout Layout) error {
	if err := layout.Validate(); err != nil {
		return err
	}

	tables := layout.compile()
	m.Lock()
	m.layout = layout
	m.tables = tables
	m.Unlock()

	for _, t := range tables {
		m.log.Info(
			"Loaded table layout",
			slog.Any("table", t),
		)
	}
	return nil
}

func (m *Master) Layout() Layout {
	m.RLock()
	defer m.RUnlock()
	return m.layout
}

// SetFailure makes every request fail with err, until called with nil.
func (m *Master) SetFailure(err error) {
	m.Lock()
	defer m.Unlock()
	m.failure = err
}

// SetIsLeader makes the master reject requests as a follower master would.
func (m *Master) SetIsLeader(isLeader bool) {
	m.Lock()
	defer m.Unlock()
	m.isLeader = isLeader
}

// Requests is the number of requests received, including the rejected ones.
func (m *Master) Requests() int64 {
	return m.requests.Load()
}

func (m *Master) checkServing() error {
	m.requests.Add(1)
	if !m.isLeader {
		return common.ErrorNotLeaderMaster
	}
	return m.failure
}

func (m *Master) GetTableLocations(_ context.Context, req *proto.GetTableLocationsRequest) (*proto.GetTableLocationsResponse, error) {
	timer := m.lookupLatency.Timer()
	defer timer.Done()
	m.lookupRequests.Inc()

	m.RLock()
	defer m.RUnlock()

	if err := m.checkServing(); err != nil {
		return nil, err
	}

	table, ok := m.tables[req.TableName]
	if !ok {
		return nil, common.ErrorTableNotFound
	}

	limit := int(req.MaxReturnedLocations)
	if limit <= 0 {
		limit = DefaultMaxReturnedLocations
	}

	m.log.Debug(
		"Get table locations",
		slog.String("table", req.TableName),
		slog.String("client", req.ClientId),
		slog.Int("max", limit),
	)
	return &proto.GetTableLocationsResponse{
		TabletLocations: table.locate(req.PartitionKeyStart, limit),
	}, nil
}

// CreateTable splits the table at the given keys and places the replicas of
// each tablet round-robin over the tablet servers. The first replica of each
// tablet is its leader.
func (m *Master) CreateTable(_ context.Context, req *proto.CreateTableRequest) (*proto.CreateTableResponse, error) {
	m.createRequests.Inc()

	m.Lock()
	defer m.Unlock()

	if err := m.checkServing(); err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "tabletdb: empty table name")
	}
	if _, ok := m.tables[req.Name]; ok {
		return nil, status.Errorf(codes.AlreadyExists, "tabletdb: table '%s' already exists", req.Name)
	}
	for i, key := range req.SplitKeys {
		if len(key) == 0 || (i > 0 && bytes.Compare(req.SplitKeys[i-1], key) >= 0) {
			return nil, common.ErrorInvalidPartition
		}
	}

	numReplicas := int(req.NumReplicas)
	if numReplicas <= 0 || numReplicas > len(m.layout.TabletServers) {
		return nil, status.Errorf(codes.InvalidArgument,
			"tabletdb: %d replicas requested with %d tablet servers", req.NumReplicas, len(m.layout.TabletServers))
	}

	table := Table{Name: req.Name}
	bounds := append(append([][]byte{nil}, req.SplitKeys...), nil)
	for i := 0; i+1 < len(bounds); i++ {
		tablet := Tablet{
			ID:    uuid.NewString(),
			Start: string(bounds[i]),
			End:   string(bounds[i+1]),
		}
		for r := 0; r < numReplicas; r++ {
			role := proto.RaftRole_FOLLOWER
			if r == 0 {
				role = proto.RaftRole_LEADER
			}
			server := m.layout.TabletServers[(i+r)%len(m.layout.TabletServers)]
			tablet.Replicas = append(tablet.Replicas, Replica{UUID: server.UUID, Role: role.String()})
		}
		table.Tablets = append(table.Tablets, tablet)
	}

	layout := Layout{
		TabletServers: m.layout.TabletServers,
		Tables:        append(append([]Table(nil), m.layout.Tables...), table),
	}
	m.layout = layout
	m.tables = layout.compile()

	tableID := uuid.NewString()
	m.log.Info(
		"Created table",
		slog.String("table", req.Name),
		slog.String("table-id", tableID),
		slog.Int("tablets", len(table.Tablets)),
	)
	return &proto.CreateTableResponse{TableId: tableID}, nil
}

func (m *Master) Close() error {
	var err error
	if m.metrics != nil {
		err = m.metrics.Close()
	}
	return multierr.Combine(err, m.grpcServer.Close())
}
