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
	"bytes"
	"context"
	"sync"
	"sync/atomic"

	"github.com/tabletdb/tabletdb/proto"
)

// fakeMaster answers lookups the same way the masters do: tablets from the
// first one ending after the requested key, in key order.
type fakeMaster struct {
	sync.Mutex
	tables map[string][]*proto.TabletLocationsPB
	err    error

	// gate, when set, holds every lookup until it is closed.
	gate    chan struct{}
	started chan struct{}

	calls     atomic.Int32
	cancelled atomic.Int32
	requests  []*proto.GetTableLocationsRequest
}

func newFakeMaster() *fakeMaster {
	return &fakeMaster{
		tables:  make(map[string][]*proto.TabletLocationsPB),
		started: make(chan struct{}, 1024),
	}
}

func (m *fakeMaster) setTable(table string, tablets ...*proto.TabletLocationsPB) {
	m.Lock()
	defer m.Unlock()
	m.tables[table] = tablets
}

func (m *fakeMaster) setError(err error) {
	m.Lock()
	defer m.Unlock()
	m.err = err
}

func (m *fakeMaster) lastRequest() *proto.GetTableLocationsRequest {
	m.Lock()
	defer m.Unlock()
	return m.requests[len(m.requests)-1]
}

func (m *fakeMaster) GetTableLocations(ctx context.Context,
	req *proto.GetTableLocationsRequest) (*proto.GetTableLocationsResponse, error) {
	m.calls.Add(1)
	select {
	case m.started <- struct{}{}:
	default:
	}

	if m.gate != nil {
		select {
		case <-m.gate:
		case <-ctx.Done():
			m.cancelled.Add(1)
			return nil, ctx.Err()
		}
	}

	m.Lock()
	defer m.Unlock()
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}

	tablets, ok := m.tables[req.TableName]
	if !ok {
		return nil, ErrTableNotFound
	}

	res := &proto.GetTableLocationsResponse{}
	for _, tablet := range tablets {
		if len(res.TabletLocations) >= int(req.MaxReturnedLocations) {
			break
		}
		end := tablet.GetPartitionKeyEnd()
		if len(end) == 0 || bytes.Compare(req.PartitionKeyStart, end) < 0 {
			res.TabletLocations = append(res.TabletLocations, tablet)
		}
	}
	return res, nil
}
