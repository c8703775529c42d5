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
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tabletdb/tabletdb/common"
)

const DefaultMaxConcurrentDispatch = 64

// Route is where an operation on a key has to be sent.
type Route struct {
	Tablet *TabletLocation
	Leader Optional[Replica]
}

// LeaderAddress is empty when the tablet has no leader, or when the leader
// has no known address.
func (r Route) LeaderAddress() Optional[HostPort] {
	leader, ok := r.Leader.Get()
	if !ok {
		return empty[HostPort]()
	}
	return leader.Address()
}

// Route locates the tablet of key and picks its leader.
func (c *LocationCache) Route(ctx context.Context, table string, key []byte) (Route, error) {
	loc, err := c.Locate(ctx, table, key)
	if err != nil {
		return Route{}, err
	}
	return Route{Tablet: loc, Leader: loc.Leader()}, nil
}

// Sender delivers an operation to the leader of its tablet.
//
// A tablet server refusing the operation because it does not lead, or no
// longer hosts, the tablet must be reported either as ErrStaleLeader or as a
// grpc status with CodeNotTabletLeader or CodeTabletNotFound.
type Sender interface {
	Send(ctx context.Context, route Route, op Operation) error
}

type SenderFunc func(ctx context.Context, route Route, op Operation) error

func (f SenderFunc) Send(ctx context.Context, route Route, op Operation) error {
	return f(ctx, route, op)
}

// Dispatcher routes operations to tablet leaders. Rejections caused by stale
// routing drop the cached location and the operation is routed again, with an
// exponential backoff, until the operation timeout expires.
type Dispatcher struct {
	cache          *LocationCache
	sender         Sender
	timeout        time.Duration
	maxConcurrency int
	log            *slog.Logger
}

func NewDispatcher(cache *LocationCache, sender Sender) *Dispatcher {
	return &Dispatcher{
		cache:          cache,
		sender:         sender,
		timeout:        cache.config.OperationTimeout(),
		maxConcurrency: DefaultMaxConcurrentDispatch,
		log: slog.With(
			slog.String("component", "dispatcher"),
		),
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, op Operation) error {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	var lastErr error
	err := backoff.RetryNotify(func() error {
		err := d.attempt(ctx, op)
		if err == nil {
			return nil
		}
		lastErr = err
		if !IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, common.NewBackOff(ctx, 0), func(err error, duration time.Duration) {
		d.log.Debug(
			"Failed to dispatch operation, retrying later",
			slog.Any("operation", op),
			slog.Any("error", err),
			slog.Duration("retry-after", duration),
		)
	})

	if err != nil && ctx.Err() != nil && lastErr != nil && !errors.Is(err, lastErr) {
		// Keep the reason of the last failed attempt next to the timeout.
		return multierr.Combine(err, lastErr)
	}
	return err
}

func (d *Dispatcher) attempt(ctx context.Context, op Operation) error {
	route, err := d.cache.Route(ctx, op.Table, op.Key)
	if err != nil {
		return err
	}

	if route.LeaderAddress().Empty() {
		// Without expiry the cached snapshot would never show a new leader.
		d.cache.InvalidateLocation(route.Tablet)
		return errors.Wrapf(ErrNoLeader, "tablet %s", PrettyBytes(route.Tablet.tabletID))
	}

	err = sendError(d.sender.Send(ctx, route, op))
	if errors.Is(err, ErrStaleLeader) {
		d.cache.InvalidateLocation(route.Tablet)
	}
	return err
}

func sendError(err error) error {
	if err == nil || errors.Is(err, ErrStaleLeader) {
		return err
	}
	switch status.Code(err) {
	case common.CodeNotTabletLeader, common.CodeTabletNotFound, codes.Unavailable:
		return withKind(ErrStaleLeader, err)
	default:
		return err
	}
}

// DispatchAll dispatches the operations concurrently. It waits for all of
// them and reports every failure.
func (d *Dispatcher) DispatchAll(ctx context.Context, ops ...Operation) error {
	errs := make([]error, len(ops))

	g := errgroup.Group{}
	g.SetLimit(d.maxConcurrency)
	for i, op := range ops {
		g.Go(func() error {
			if err := d.Dispatch(ctx, op); err != nil {
				errs[i] = errors.WithMessagef(err, "failed to dispatch %s", op)
			}
			return nil
		})
	}
	_ = g.Wait()

	return multierr.Combine(errs...)
}
