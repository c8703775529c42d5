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
	"net"
	"strconv"

	"github.com/tabletdb/tabletdb/proto"
)

// Role is the consensus role a replica had in the metadata snapshot it was
// read from.
type Role int

const (
	RoleUnknown Role = iota
	RoleLeader
	RoleFollower
	RoleLearner
)

func (r Role) String() string {
	switch r {
	case RoleLeader:
		return "LEADER"
	case RoleFollower:
		return "FOLLOWER"
	case RoleLearner:
		return "LEARNER"
	default:
		return "UNKNOWN"
	}
}

// Roles the client does not know about are kept as unknown, never mapped to
// the closest match.
func roleFromProto(role proto.RaftRole) Role {
	switch role {
	case proto.RaftRole_LEADER:
		return RoleLeader
	case proto.RaftRole_FOLLOWER:
		return RoleFollower
	case proto.RaftRole_LEARNER:
		return RoleLearner
	default:
		return RoleUnknown
	}
}

type HostPort struct {
	Host string
	Port uint16
}

func (hp HostPort) String() string {
	return net.JoinHostPort(hp.Host, strconv.Itoa(int(hp.Port)))
}

// Replica is one server's copy of a tablet. Replicas compare by value.
type Replica struct {
	uuid       string
	address    HostPort
	hasAddress bool
	role       Role
}

func newReplica(pb *proto.ReplicaPB) (Replica, error) {
	r := Replica{
		uuid: pb.GetTsUuid(),
		role: roleFromProto(pb.GetRole()),
	}

	// Only the first RPC address is used for routing.
	if addresses := pb.GetRpcAddresses(); len(addresses) > 0 {
		addr := addresses[0]
		if addr.GetHost() == "" || addr.GetPort() == 0 || addr.GetPort() > 0xFFFF {
			return Replica{}, malformed("replica %s has invalid address %s:%d",
				r.uuid, addr.GetHost(), addr.GetPort())
		}
		r.address = HostPort{Host: addr.GetHost(), Port: uint16(addr.GetPort())}
		r.hasAddress = true
	}
	return r, nil
}

// UUID of the tablet server hosting the replica.
func (r Replica) UUID() string {
	return r.uuid
}

// Address is empty when the master did not report an RPC address for the
// tablet server.
func (r Replica) Address() Optional[HostPort] {
	if !r.hasAddress {
		return empty[HostPort]()
	}
	return optionalOf(r.address)
}

func (r Replica) Role() Role {
	return r.role
}

func (r Replica) IsLeader() bool {
	return r.role == RoleLeader
}

func (r Replica) String() string {
	addr := "<none>"
	if r.hasAddress {
		addr = r.address.String()
	}
	return fmt.Sprintf("Replica(uuid=%s, address=%s, role=%s)", r.uuid, addr, r.role)
}
