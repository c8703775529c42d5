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
	"sync"

	"github.com/tabletdb/tabletdb/common"
)

const flightStripes = 16

// flightGroup runs at most one fetch per key at a time and hands its result
// to every caller waiting on that key.
//
// Unlike a plain singleflight, the fetch does not run on any caller's context.
// A caller that gives up only detaches from the flight. The fetch context is
// cancelled once the last waiter is gone.
type flightGroup[T any] struct {
	ctx     context.Context
	stripes [flightStripes]flightStripe[T]
}

type flightStripe[T any] struct {
	sync.Mutex
	calls map[string]*flight[T]
}

type flight[T any] struct {
	done    chan struct{}
	cancel  context.CancelFunc
	waiters int

	value T
	err   error
}

func newFlightGroup[T any](ctx context.Context) *flightGroup[T] {
	g := &flightGroup[T]{ctx: ctx}
	for i := range g.stripes {
		g.stripes[i].calls = make(map[string]*flight[T])
	}
	return g
}

// do joins the flight for key or starts one. Before starting a new flight,
// cached is consulted under the stripe lock: a flight that completed between
// the caller's own lookup and this call has already installed its result.
//
// started reports whether this caller launched the fetch.
func (g *flightGroup[T]) do(ctx context.Context, key string,
	cached func() (T, bool),
	fetch func(ctx context.Context) (T, error)) (value T, started bool, err error) {
	s := &g.stripes[common.Stripe(key, flightStripes)]

	s.Lock()
	f, ok := s.calls[key]
	if ok {
		f.waiters++
	} else {
		if v, hit := cached(); hit {
			s.Unlock()
			return v, false, nil
		}

		fctx, cancel := context.WithCancel(g.ctx)
		f = &flight[T]{
			done:    make(chan struct{}),
			cancel:  cancel,
			waiters: 1,
		}
		s.calls[key] = f
		started = true

		go common.DoWithLabels(map[string]string{
			"tabletdb": "location-fetch",
		}, func() {
			g.run(fctx, s, key, f, fetch)
		})
	}
	s.Unlock()

	select {
	case <-f.done:
		return f.value, started, f.err
	case <-ctx.Done():
		s.Lock()
		f.waiters--
		if f.waiters == 0 {
			if s.calls[key] == f {
				delete(s.calls, key)
			}
			f.cancel()
		}
		s.Unlock()

		var zero T
		return zero, started, ctx.Err()
	}
}

func (*flightGroup[T]) run(ctx context.Context, s *flightStripe[T], key string, f *flight[T],
	fetch func(ctx context.Context) (T, error)) {
	defer f.cancel()

	f.value, f.err = fetch(ctx)

	s.Lock()
	if s.calls[key] == f {
		delete(s.calls, key)
	}
	s.Unlock()
	close(f.done)
}

func (g *flightGroup[T]) inFlight() int {
	n := 0
	for i := range g.stripes {
		s := &g.stripes[i]
		s.Lock()
		n += len(s.calls)
		s.Unlock()
	}
	return n
}
