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
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMetadataUnavailable is returned when no master answered in time. The
	// condition is transient and never cached.
	ErrMetadataUnavailable = errors.New("tabletdb: metadata unavailable")

	// ErrStaleLeader is returned when a tablet server rejected a request
	// because it is not the leader of the tablet, or no longer hosts it.
	ErrStaleLeader = errors.New("tabletdb: stale tablet leader")

	// ErrMalformedLocation is returned when the master sent tablet locations
	// whose key ranges are inconsistent. It is not retryable.
	ErrMalformedLocation = errors.New("tabletdb: malformed tablet location")

	ErrNoLeader          = errors.New("tabletdb: tablet has no leader")
	ErrTableNotFound     = errors.New("tabletdb: table not found")
	ErrTabletNotFound    = errors.New("tabletdb: no tablet covers the key")
	ErrTableExists       = errors.New("tabletdb: table already exists")
	ErrInvalidTableSplit = errors.New("tabletdb: invalid table split keys")
	ErrClosed            = errors.New("tabletdb: client is closed")
)

// IsRetryable reports whether the same request can succeed once the cluster
// state has settled.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrMetadataUnavailable) ||
		errors.Is(err, ErrStaleLeader) ||
		errors.Is(err, ErrNoLeader)
}

// withKind tags err with one of the sentinel errors above, keeping the
// original error in the chain.
func withKind(kind error, err error) error {
	if errors.Is(err, kind) {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}

func malformed(format string, args ...any) error {
	return errors.Wrapf(ErrMalformedLocation, format, args...)
}
