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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXxh332(t *testing.T) {
	for _, key := range []string{"", "foo", "users/\x00\x01"} {
		t.Run(key, func(t *testing.T) {
			assert.Equal(t, Xxh332(key), Xxh332(key))
		})
	}
	assert.NotEqual(t, Xxh332("foo"), Xxh332("bar"))
}

func TestStripe(t *testing.T) {
	seen := map[int]bool{}
	for _, key := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		s := Stripe(key, 4)
		assert.GreaterOrEqual(t, s, 0)
		assert.Less(t, s, 4)
		assert.Equal(t, s, Stripe(key, 4))
		seen[s] = true
	}
	assert.Greater(t, len(seen), 1)
	assert.Equal(t, 0, Stripe("anything", 1))
	assert.Equal(t, int(Xxh332("foo")%7), Stripe("foo", 7))
}
