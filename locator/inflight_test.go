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
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/tabletdb/tabletdb/common"
)

func waitersOf[T any](g *flightGroup[T], key string) int {
	s := &g.stripes[common.Stripe(key, flightStripes)]
	s.Lock()
	defer s.Unlock()
	if f, ok := s.calls[key]; ok {
		return f.waiters
	}
	return 0
}

func notCached() (int, bool) {
	return 0, false
}

func TestFlightGroup_SharedResult(t *testing.T) {
	g := newFlightGroup[int](context.Background())
	release := make(chan struct{})
	var calls atomic.Int32

	fetch := func(ctx context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 42, nil
	}

	const n = 10
	var started atomic.Int32
	wg := sync.WaitGroup{}
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			v, s, err := g.do(context.Background(), "k", notCached, fetch)
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
			if s {
				started.Add(1)
			}
		}()
	}

	assert.Eventually(t, func() bool {
		return waitersOf(g, "k") == n
	}, 10*time.Second, 10*time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
	assert.EqualValues(t, 1, started.Load())
	assert.Equal(t, 0, g.inFlight())
}

func TestFlightGroup_SharedError(t *testing.T) {
	g := newFlightGroup[int](context.Background())
	boom := errors.New("boom")

	_, started, err := g.do(context.Background(), "k", notCached, func(ctx context.Context) (int, error) {
		return 0, boom
	})
	assert.True(t, started)
	assert.ErrorIs(t, err, boom)

	// Errors are not remembered.
	v, started, err := g.do(context.Background(), "k", notCached, func(ctx context.Context) (int, error) {
		return 7, nil
	})
	assert.True(t, started)
	assert.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestFlightGroup_DistinctKeys(t *testing.T) {
	g := newFlightGroup[string](context.Background())
	release := make(chan struct{})

	results := make(chan string, 2)
	for _, key := range []string{"a", "b"} {
		go func(key string) {
			v, _, err := g.do(context.Background(), key,
				func() (string, bool) { return "", false },
				func(ctx context.Context) (string, error) {
					<-release
					return key, nil
				})
			assert.NoError(t, err)
			results <- v
		}(key)
	}

	assert.Eventually(t, func() bool {
		return g.inFlight() == 2
	}, 10*time.Second, 10*time.Millisecond)
	close(release)
	assert.ElementsMatch(t, []string{"a", "b"}, []string{<-results, <-results})
}

func TestFlightGroup_CachedSkipsFetch(t *testing.T) {
	g := newFlightGroup[int](context.Background())

	v, started, err := g.do(context.Background(), "k",
		func() (int, bool) { return 5, true },
		func(ctx context.Context) (int, error) {
			t.Fatal("unexpected fetch")
			return 0, nil
		})
	assert.NoError(t, err)
	assert.False(t, started)
	assert.Equal(t, 5, v)
}

func TestFlightGroup_LastWaiterCancels(t *testing.T) {
	g := newFlightGroup[int](context.Background())
	fetchCancelled := make(chan struct{})
	fetch := func(ctx context.Context) (int, error) {
		<-ctx.Done()
		close(fetchCancelled)
		return 0, ctx.Err()
	}

	ctx1, cancel1 := context.WithCancel(context.Background())
	ctx2, cancel2 := context.WithCancel(context.Background())
	errs := make(chan error, 2)
	go func() {
		_, _, err := g.do(ctx1, "k", notCached, fetch)
		errs <- err
	}()
	assert.Eventually(t, func() bool {
		return waitersOf(g, "k") == 1
	}, 10*time.Second, 10*time.Millisecond)
	go func() {
		_, _, err := g.do(ctx2, "k", notCached, fetch)
		errs <- err
	}()
	assert.Eventually(t, func() bool {
		return waitersOf(g, "k") == 2
	}, 10*time.Second, 10*time.Millisecond)

	cancel1()
	assert.ErrorIs(t, <-errs, context.Canceled)
	select {
	case <-fetchCancelled:
		t.Fatal("fetch cancelled while a waiter is left")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, 1, waitersOf(g, "k"))

	cancel2()
	assert.ErrorIs(t, <-errs, context.Canceled)
	<-fetchCancelled
	assert.Equal(t, 0, g.inFlight())
}

func TestFlightGroup_GroupContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := newFlightGroup[int](ctx)

	res := make(chan error, 1)
	go func() {
		_, _, err := g.do(context.Background(), "k", notCached, func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		})
		res <- err
	}()
	assert.Eventually(t, func() bool {
		return g.inFlight() == 1
	}, 10*time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-res, context.Canceled)
}
