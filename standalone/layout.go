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
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/tabletdb/tabletdb/proto"
)

var ErrInvalidLayout = errors.New("tabletdb: invalid tablet layout")

// Layout is the static cluster view served by the standalone master.
type Layout struct {
	TabletServers []TabletServer `yaml:"tabletServers" mapstructure:"tabletServers" json:"tabletServers"`
	Tables        []Table        `yaml:"tables" mapstructure:"tables" json:"tables"`
}

type TabletServer struct {
	UUID string `yaml:"uuid" mapstructure:"uuid" json:"uuid"`
	Host string `yaml:"host" mapstructure:"host" json:"host"`
	Port uint32 `yaml:"port" mapstructure:"port" json:"port"`
}

type Table struct {
	Name    string   `yaml:"name" mapstructure:"name" json:"name"`
	Tablets []Tablet `yaml:"tablets" mapstructure:"tablets" json:"tablets"`
}

// Tablet covers [Start, End) of its table. An empty End is unbounded.
type Tablet struct {
	ID       string    `yaml:"id" mapstructure:"id" json:"id"`
	Start    string    `yaml:"start" mapstructure:"start" json:"start"`
	End      string    `yaml:"end" mapstructure:"end" json:"end"`
	Replicas []Replica `yaml:"replicas" mapstructure:"replicas" json:"replicas"`
}

type Replica struct {
	UUID string `yaml:"uuid" mapstructure:"uuid" json:"uuid"`
	// Role is one of LEADER, FOLLOWER, LEARNER or NON_PARTICIPANT.
	Role string `yaml:"role" mapstructure:"role" json:"role"`
}

func ParseLayout(data []byte) (Layout, error) {
	layout := Layout{}
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return Layout{}, errors.Wrap(err, "failed to parse layout")
	}
	if err := layout.Validate(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

// Validate checks the references between servers and replicas, and that the
// tablets of every table are disjoint. Gaps between tablets are allowed.
func (l Layout) Validate() error {
	var errs error

	servers := make(map[string]bool, len(l.TabletServers))
	for _, ts := range l.TabletServers {
		if ts.UUID == "" || ts.Host == "" || ts.Port == 0 || ts.Port > 0xFFFF {
			errs = multierr.Append(errs, errors.Wrapf(ErrInvalidLayout, "bad tablet server %+v", ts))
		}
		servers[ts.UUID] = true
	}

	tables := map[string]bool{}
	tablets := map[string]bool{}
	for _, table := range l.Tables {
		if table.Name == "" || tables[table.Name] {
			errs = multierr.Append(errs, errors.Wrapf(ErrInvalidLayout, "bad or duplicate table name '%s'", table.Name))
		}
		tables[table.Name] = true

		for _, tablet := range table.Tablets {
			if tablet.ID == "" || tablets[tablet.ID] {
				errs = multierr.Append(errs, errors.Wrapf(ErrInvalidLayout, "bad or duplicate tablet id '%s'", tablet.ID))
			}
			tablets[tablet.ID] = true

			if tablet.End != "" && tablet.Start >= tablet.End {
				errs = multierr.Append(errs, errors.Wrapf(ErrInvalidLayout, "tablet %s has an empty range", tablet.ID))
			}
			for _, r := range tablet.Replicas {
				if !servers[r.UUID] {
					errs = multierr.Append(errs, errors.Wrapf(ErrInvalidLayout, "tablet %s uses unknown server %s", tablet.ID, r.UUID))
				}
				if _, ok := proto.RaftRole_value[r.Role]; !ok {
					errs = multierr.Append(errs, errors.Wrapf(ErrInvalidLayout, "tablet %s has unknown role %s", tablet.ID, r.Role))
				}
			}
		}

		sorted := sortedTablets(table.Tablets)
		for i := 1; i < len(sorted); i++ {
			prev := sorted[i-1]
			if prev.End == "" || prev.End > sorted[i].Start {
				errs = multierr.Append(errs, errors.Wrapf(ErrInvalidLayout, "tablets %s and %s of table %s overlap",
					prev.ID, sorted[i].ID, table.Name))
			}
		}
	}
	return errs
}

func sortedTablets(tablets []Tablet) []Tablet {
	sorted := append([]Tablet(nil), tablets...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})
	return sorted
}

// SingleTabletLayout is a layout with one server leading the only tablet of
// each table.
func SingleTabletLayout(host string, port uint32, tables ...string) Layout {
	layout := Layout{
		TabletServers: []TabletServer{{UUID: "ts-0", Host: host, Port: port}},
	}
	for _, name := range tables {
		layout.Tables = append(layout.Tables, Table{
			Name: name,
			Tablets: []Tablet{{
				ID:       name + "-0",
				Replicas: []Replica{{UUID: "ts-0", Role: proto.RaftRole_LEADER.String()}},
			}},
		})
	}
	return layout
}

type tableState struct {
	name    string
	tablets []*proto.TabletLocationsPB
}

// compile turns the layout into the wire records served to the clients,
// sorted by start key.
func (l Layout) compile() map[string]*tableState {
	servers := make(map[string]TabletServer, len(l.TabletServers))
	for _, ts := range l.TabletServers {
		servers[ts.UUID] = ts
	}

	tables := make(map[string]*tableState, len(l.Tables))
	for _, table := range l.Tables {
		ts := &tableState{name: table.Name}
		for _, tablet := range sortedTablets(table.Tablets) {
			pb := &proto.TabletLocationsPB{
				TabletId:          []byte(tablet.ID),
				PartitionKeyStart: []byte(tablet.Start),
				PartitionKeyEnd:   []byte(tablet.End),
			}
			for _, r := range tablet.Replicas {
				server := servers[r.UUID]
				pb.Replicas = append(pb.Replicas, &proto.ReplicaPB{
					TsUuid:       r.UUID,
					RpcAddresses: []*proto.HostPortPB{{Host: server.Host, Port: uint64(server.Port)}},
					Role:         proto.RaftRole(proto.RaftRole_value[r.Role]),
				})
			}
			ts.tablets = append(ts.tablets, pb)
		}
		tables[table.Name] = ts
	}
	return tables
}

// locate returns up to limit tablets, starting from the one covering key or
// the first one after it.
func (t *tableState) locate(key []byte, limit int) []*proto.TabletLocationsPB {
	var res []*proto.TabletLocationsPB
	for _, tablet := range t.tablets {
		if len(res) >= limit {
			break
		}
		if len(tablet.PartitionKeyEnd) == 0 || bytes.Compare(key, tablet.PartitionKeyEnd) < 0 {
			res = append(res, tablet)
		}
	}
	return res
}

func (t *tableState) String() string {
	return fmt.Sprintf("%s(%d tablets)", t.name, len(t.tablets))
}
