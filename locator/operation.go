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
	"slices"
)

// ChangeType tags what a write operation does to its row.
type ChangeType int

const (
	ChangeInsert ChangeType = iota
	ChangeUpdate
	ChangeUpsert
	ChangeDelete
)

func (c ChangeType) String() string {
	switch c {
	case ChangeInsert:
		return "INSERT"
	case ChangeUpdate:
		return "UPDATE"
	case ChangeUpsert:
		return "UPSERT"
	case ChangeDelete:
		return "DELETE"
	default:
		return fmt.Sprintf("ChangeType(%d)", int(c))
	}
}

// Operation is a write against one row of a table. The row is routed by its
// partition key, the payload is opaque to the locator.
type Operation struct {
	Table   string
	Key     []byte
	Type    ChangeType
	Payload []byte
}

func newOperation(changeType ChangeType, table string, key []byte, payload []byte) Operation {
	return Operation{
		Table:   table,
		Key:     slices.Clone(key),
		Type:    changeType,
		Payload: payload,
	}
}

func NewInsert(table string, key []byte, payload []byte) Operation {
	return newOperation(ChangeInsert, table, key, payload)
}

func NewUpdate(table string, key []byte, payload []byte) Operation {
	return newOperation(ChangeUpdate, table, key, payload)
}

func NewUpsert(table string, key []byte, payload []byte) Operation {
	return newOperation(ChangeUpsert, table, key, payload)
}

func NewDelete(table string, key []byte) Operation {
	return newOperation(ChangeDelete, table, key, nil)
}

func (o Operation) String() string {
	return fmt.Sprintf("%s(table=%s, key=%s)", o.Type, o.Table, PrettyBytes(o.Key))
}
