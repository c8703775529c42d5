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
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	CodeTableNotFound    codes.Code = 100
	CodeNotLeaderMaster  codes.Code = 101
	CodeTabletNotFound   codes.Code = 102
	CodeNotTabletLeader  codes.Code = 103
	CodeInvalidPartition codes.Code = 104
)

var (
	ErrorTableNotFound    = status.Error(CodeTableNotFound, "tabletdb: table not found")
	ErrorNotLeaderMaster  = status.Error(CodeNotLeaderMaster, "tabletdb: master is not the leader")
	ErrorTabletNotFound   = status.Error(CodeTabletNotFound, "tabletdb: tablet not found on server")
	ErrorNotTabletLeader  = status.Error(CodeNotTabletLeader, "tabletdb: server is not leader for tablet")
	ErrorInvalidPartition = status.Error(CodeInvalidPartition, "tabletdb: invalid partition split keys")
)
