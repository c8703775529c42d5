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
	"crypto/tls"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/tabletdb/tabletdb/proto"
)

const (
	addressSchemaTLS = "tls://"

	maxGrpcFrameSize = 64 * 1024 * 1024
)

// ClientPool hands out master service stubs backed by one shared connection
// per target. Connections are dialed lazily and live until Close.
type ClientPool interface {
	io.Closer
	GetMasterRpc(target string) (proto.MasterServiceClient, error)
}

type clientPool struct {
	sync.Mutex
	connections map[string]*grpc.ClientConn
	closed      bool

	log *slog.Logger
}

func NewClientPool() ClientPool {
	return &clientPool{
		connections: make(map[string]*grpc.ClientConn),
		log: slog.With(
			slog.String("component", "client-pool"),
		),
	}
}

func (cp *clientPool) Close() error {
	cp.Lock()
	defer cp.Unlock()

	var err error
	for target, cnx := range cp.connections {
		if closeErr := cnx.Close(); closeErr != nil {
			cp.log.Warn(
				"Failed to close GRPC connection",
				slog.String("server_address", target),
				slog.Any("error", closeErr),
			)
			err = multierr.Append(err, closeErr)
		}
	}
	cp.connections = make(map[string]*grpc.ClientConn)
	cp.closed = true
	return err
}

func (cp *clientPool) GetMasterRpc(target string) (proto.MasterServiceClient, error) {
	cnx, err := cp.getConnection(target)
	if err != nil {
		return nil, err
	}
	return proto.NewMasterServiceClient(cnx), nil
}

func (cp *clientPool) getConnection(target string) (grpc.ClientConnInterface, error) {
	cp.Lock()
	defer cp.Unlock()

	if cp.closed {
		return nil, errors.New("tabletdb: client pool is closed")
	}

	if cnx, ok := cp.connections[target]; ok {
		return cnx, nil
	}

	cp.log.Info(
		"Creating new GRPC connection",
		slog.String("server_address", target),
	)

	cnx, err := grpc.NewClient(cp.getActualAddress(target),
		grpc.WithTransportCredentials(cp.getTransportCredential(target)),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(maxGrpcFrameSize)),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "error connecting to %s", target)
	}

	cp.connections[target] = cnx
	return cnx, nil
}

func (*clientPool) getActualAddress(target string) string {
	return strings.TrimPrefix(target, addressSchemaTLS)
}

func (*clientPool) getTransportCredential(target string) credentials.TransportCredentials {
	if strings.HasPrefix(target, addressSchemaTLS) {
		return credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}
	return insecure.NewCredentials()
}
