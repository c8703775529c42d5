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

package common

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultInitialRetryInterval = 20 * time.Millisecond
	DefaultMaxRetryInterval     = 1 * time.Second
)

// NewBackOff returns an exponential backoff that gives up once maxElapsed has
// passed or the context is done. A zero maxElapsed never gives up on its own.
func NewBackOff(ctx context.Context, maxElapsed time.Duration) backoff.BackOff {
	return NewBackOffWithInitialInterval(ctx, DefaultInitialRetryInterval, maxElapsed)
}

func NewBackOffWithInitialInterval(ctx context.Context, initialInterval, maxElapsed time.Duration) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initialInterval
	b.MaxInterval = DefaultMaxRetryInterval
	b.MaxElapsedTime = maxElapsed
	b.Reset()
	return backoff.WithContext(b, ctx)
}
