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
	"fmt"
	"slices"
	"strings"

	"github.com/tabletdb/tabletdb/proto"
)

// KeyRange is the half-open interval [Start, End) of partition keys. An
// empty End is unbounded.
type KeyRange struct {
	Start []byte
	End   []byte
}

func (r KeyRange) Unbounded() bool {
	return len(r.End) == 0
}

// IsEmpty is true for a bounded range with Start == End.
func (r KeyRange) IsEmpty() bool {
	return !r.Unbounded() && bytes.Equal(r.Start, r.End)
}

func (r KeyRange) Contains(key []byte) bool {
	return bytes.Compare(key, r.Start) >= 0 &&
		(r.Unbounded() || bytes.Compare(key, r.End) < 0)
}

func (r KeyRange) Overlaps(other KeyRange) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return (other.Unbounded() || bytes.Compare(r.Start, other.End) < 0) &&
		(r.Unbounded() || bytes.Compare(other.Start, r.End) < 0)
}

func (r KeyRange) String() string {
	end := "<end>"
	if !r.Unbounded() {
		end = `"` + PrettyBytes(r.End) + `"`
	}
	return fmt.Sprintf(`["%s", %s)`, PrettyBytes(r.Start), end)
}

func (r KeyRange) clone() KeyRange {
	return KeyRange{Start: slices.Clone(r.Start), End: slices.Clone(r.End)}
}

// TabletLocation is a point in time snapshot of where a tablet lives. It is
// never modified after construction: a refresh of the cluster state creates a
// new TabletLocation.
type TabletLocation struct {
	table    string
	tabletID []byte
	keyRange KeyRange
	replicas []Replica
}

// NewTabletLocation builds the snapshot of one tablet out of a master
// response record. All the byte slices are copied.
func NewTabletLocation(table string, pb *proto.TabletLocationsPB) (*TabletLocation, error) {
	if pb == nil {
		return nil, malformed("missing tablet record")
	}
	if len(pb.GetTabletId()) == 0 {
		return nil, malformed("tablet of table %s has an empty id", table)
	}

	keyRange := KeyRange{Start: pb.GetPartitionKeyStart(), End: pb.GetPartitionKeyEnd()}
	if !keyRange.Unbounded() && bytes.Compare(keyRange.Start, keyRange.End) > 0 {
		return nil, malformed("tablet %s has start key after end key: %s",
			PrettyBytes(pb.GetTabletId()), keyRange)
	}

	replicas := make([]Replica, 0, len(pb.GetReplicas()))
	for _, rpb := range pb.GetReplicas() {
		r, err := newReplica(rpb)
		if err != nil {
			return nil, err
		}
		replicas = append(replicas, r)
	}

	return &TabletLocation{
		table:    table,
		tabletID: slices.Clone(pb.GetTabletId()),
		keyRange: keyRange.clone(),
		replicas: replicas,
	}, nil
}

func (t *TabletLocation) Table() string {
	return t.table
}

func (t *TabletLocation) TabletID() []byte {
	return slices.Clone(t.tabletID)
}

func (t *TabletLocation) KeyRange() KeyRange {
	return t.keyRange.clone()
}

func (t *TabletLocation) Contains(key []byte) bool {
	return t.keyRange.Contains(key)
}

// Replicas returns the replicas in the order the master reported them.
func (t *TabletLocation) Replicas() []Replica {
	return slices.Clone(t.replicas)
}

// Leader returns the first replica with the leader role. It is empty when no
// replica is leader, which is a normal state during an election.
// If the master reports more than one leader the first one wins.
func (t *TabletLocation) Leader() Optional[Replica] {
	for _, r := range t.replicas {
		if r.IsLeader() {
			return optionalOf(r)
		}
	}
	return empty[Replica]()
}

func (t *TabletLocation) leaderCount() int {
	n := 0
	for _, r := range t.replicas {
		if r.IsLeader() {
			n++
		}
	}
	return n
}

func (t *TabletLocation) String() string {
	replicas := make([]string, len(t.replicas))
	for i, r := range t.replicas {
		replicas[i] = r.String()
	}
	return fmt.Sprintf("TabletLocation(table=%s, tablet=%s, range=%s, replicas=[%s])",
		t.table, PrettyBytes(t.tabletID), t.keyRange, strings.Join(replicas, ", "))
}

// newTabletLocations validates a whole master response. A single bad record
// rejects the response, the client never repairs the master's view.
func newTabletLocations(table string, res *proto.GetTableLocationsResponse) ([]*TabletLocation, error) {
	locations := make([]*TabletLocation, 0, len(res.GetTabletLocations()))
	byID := make(map[string]*TabletLocation, len(res.GetTabletLocations()))

	for _, pb := range res.GetTabletLocations() {
		loc, err := NewTabletLocation(table, pb)
		if err != nil {
			return nil, err
		}

		if other, ok := byID[string(loc.tabletID)]; ok {
			if !equalRanges(other.keyRange, loc.keyRange) {
				return nil, malformed("tablet %s reported with ranges %s and %s",
					PrettyBytes(loc.tabletID), other.keyRange, loc.keyRange)
			}
			continue
		}
		byID[string(loc.tabletID)] = loc
		locations = append(locations, loc)
	}

	slices.SortFunc(locations, func(a, b *TabletLocation) int {
		return bytes.Compare(a.keyRange.Start, b.keyRange.Start)
	})

	// Sorted by start key, any overlap shows up between two consecutive
	// non-empty ranges.
	var prev *TabletLocation
	for _, cur := range locations {
		if cur.keyRange.IsEmpty() {
			continue
		}
		if prev != nil && prev.keyRange.Overlaps(cur.keyRange) {
			return nil, malformed("tablets %s %s and %s %s overlap",
				PrettyBytes(prev.tabletID), prev.keyRange, PrettyBytes(cur.tabletID), cur.keyRange)
		}
		prev = cur
	}
	return locations, nil
}

func equalRanges(a, b KeyRange) bool {
	return bytes.Equal(a.Start, b.Start) && bytes.Equal(a.End, b.End)
}
