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
	"log/slog"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/time/rate"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tabletdb/tabletdb/common"
	"github.com/tabletdb/tabletdb/proto"
)

// masterFetcher talks to the master quorum. Only the leader master answers
// lookups: a call goes first to the last master known to be leader and then
// once around the other masters.
//
// It never sleeps between attempts. Waiting and retrying is left to the
// callers.
type masterFetcher struct {
	pool      common.ClientPool
	config    ClientConfig
	addresses []string
	leader    atomic.Int32
	limiter   *rate.Limiter

	log *slog.Logger
}

func newMasterFetcher(pool common.ClientPool, config ClientConfig) *masterFetcher {
	f := &masterFetcher{
		pool:      pool,
		config:    config,
		addresses: config.MasterAddresses(),
		log: slog.With(
			slog.String("component", "master-fetcher"),
		),
	}
	if limit, burst := config.MetadataRateLimit(); limit > 0 {
		f.limiter = rate.NewLimiter(limit, burst)
	}
	return f
}

func (f *masterFetcher) GetTableLocations(ctx context.Context,
	req *proto.GetTableLocationsRequest) (*proto.GetTableLocationsResponse, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, withKind(ErrMetadataUnavailable, err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, f.config.OperationTimeout())
	defer cancel()

	var res *proto.GetTableLocationsResponse
	err := f.invoke(ctx, func(ctx context.Context, rpc proto.MasterServiceClient) (err error) {
		res, err = rpc.GetTableLocations(ctx, req)
		return err
	})
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to get locations of table '%s'", req.TableName)
	}
	return res, nil
}

// CreateTable creates a table split at the given keys, with the configured
// number of replicas, and returns its id.
func (f *masterFetcher) CreateTable(ctx context.Context, name string, splitKeys [][]byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.config.AdminOperationTimeout())
	defer cancel()

	req := &proto.CreateTableRequest{
		Name:        name,
		SplitKeys:   splitKeys,
		NumReplicas: uint32(f.config.NumReplicas()),
	}

	var res *proto.CreateTableResponse
	err := f.invoke(ctx, func(ctx context.Context, rpc proto.MasterServiceClient) (err error) {
		res, err = rpc.CreateTable(ctx, req)
		return err
	})
	if err != nil {
		return "", errors.WithMessagef(err, "failed to create table '%s'", name)
	}

	f.log.Info(
		"Created table",
		slog.String("table", name),
		slog.String("table-id", res.GetTableId()),
		slog.Int("tablets", len(splitKeys)+1),
	)
	return res.GetTableId(), nil
}

func (f *masterFetcher) invoke(ctx context.Context, call func(context.Context, proto.MasterServiceClient) error) error {
	n := int32(len(f.addresses))
	start := f.leader.Load()

	var errs error
	for i := int32(0); i < n; i++ {
		idx := (start + i) % n
		address := f.addresses[idx]

		rpc, err := f.pool.GetMasterRpc(address)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		err = call(ctx, rpc)
		if err == nil {
			if idx != start {
				f.log.Debug(
					"Found leader master",
					slog.String("master", address),
				)
			}
			f.leader.Store(idx)
			return nil
		}

		if !isNotLeaderMaster(err) {
			return masterError(err)
		}
		f.log.Debug(
			"Master did not answer, trying the next one",
			slog.String("master", address),
			slog.Any("error", err),
		)
		errs = multierr.Append(errs, errors.WithMessagef(err, "master %s", address))

		if ctx.Err() != nil {
			break
		}
	}

	if errs == nil {
		errs = errors.New("no master addresses")
	}
	return withKind(ErrMetadataUnavailable, errs)
}

func isNotLeaderMaster(err error) bool {
	switch status.Code(err) {
	case common.CodeNotLeaderMaster, codes.Unavailable:
		return true
	default:
		return false
	}
}

func masterError(err error) error {
	switch status.Code(err) {
	case common.CodeTableNotFound, codes.NotFound:
		return withKind(ErrTableNotFound, err)
	case codes.AlreadyExists:
		return withKind(ErrTableExists, err)
	case common.CodeInvalidPartition, codes.InvalidArgument:
		return withKind(ErrInvalidTableSplit, err)
	default:
		return withKind(ErrMetadataUnavailable, err)
	}
}
