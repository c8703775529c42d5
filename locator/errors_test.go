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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	for _, test := range []struct {
		err       error
		retryable bool
	}{
		{ErrMetadataUnavailable, true},
		{withKind(ErrMetadataUnavailable, context.DeadlineExceeded), true},
		{errors.Wrap(ErrStaleLeader, "tablet t1"), true},
		{ErrNoLeader, true},
		{ErrMalformedLocation, false},
		{ErrTableNotFound, false},
		{ErrTabletNotFound, false},
		{ErrClosed, false},
		{context.Canceled, false},
	} {
		t.Run(test.err.Error(), func(t *testing.T) {
			assert.Equal(t, test.retryable, IsRetryable(test.err))
		})
	}
}

func TestWithKind(t *testing.T) {
	err := withKind(ErrMetadataUnavailable, context.DeadlineExceeded)
	assert.ErrorIs(t, err, ErrMetadataUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	assert.Equal(t, ErrTableNotFound, withKind(ErrTableNotFound, ErrTableNotFound))
}
