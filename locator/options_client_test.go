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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"golang.org/x/time/rate"
)

func TestClientConfig_Defaults(t *testing.T) {
	config, err := NewClientConfig()
	assert.NoError(t, err)
	assert.Equal(t, []string{DefaultMasterAddresses}, config.MasterAddresses())
	assert.Equal(t, DefaultOperationTimeout, config.OperationTimeout())
	assert.Equal(t, DefaultAdminOperationTimeout, config.AdminOperationTimeout())
	assert.Equal(t, DefaultNumReplicas, config.NumReplicas())
	assert.Equal(t, DefaultMaxReturnedLocations, config.MaxReturnedLocations())
	assert.Equal(t, noop.NewMeterProvider(), config.MeterProvider())
	assert.NotEmpty(t, config.Identity())

	limit, _ := config.MetadataRateLimit()
	assert.Equal(t, rate.Limit(0), limit)
}

func TestClientConfig_AdminTimeoutFollowsOperationTimeout(t *testing.T) {
	config, err := NewClientConfig(WithOperationTimeout(3 * time.Second))
	assert.NoError(t, err)
	assert.Equal(t, 3*time.Second, config.OperationTimeout())
	assert.Equal(t, 3*time.Second, config.AdminOperationTimeout())

	config, err = NewClientConfig(
		WithAdminOperationTimeout(time.Minute),
		WithOperationTimeout(3*time.Second))
	assert.NoError(t, err)
	assert.Equal(t, 3*time.Second, config.OperationTimeout())
	assert.Equal(t, time.Minute, config.AdminOperationTimeout())
}

func TestClientConfig_Overrides(t *testing.T) {
	config, err := NewClientConfig(
		WithMasterAddresses("m1:7000,m2"),
		WithNumReplicas(5),
		WithMaxReturnedLocations(2),
		WithIdentity("my-client"),
		WithMetadataRateLimit(100, 0),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"m1:7000", "m2:7051"}, config.MasterAddresses())
	assert.Equal(t, 5, config.NumReplicas())
	assert.Equal(t, 2, config.MaxReturnedLocations())
	assert.Equal(t, "my-client", config.Identity())

	limit, burst := config.MetadataRateLimit()
	assert.Equal(t, rate.Limit(100), limit)
	assert.Equal(t, 1, burst)
}

func TestClientConfig_MasterAddressesAreCopied(t *testing.T) {
	config, err := NewClientConfig(WithMasterAddresses("m1,m2"))
	require.NoError(t, err)

	addresses := config.MasterAddresses()
	addresses[0] = "changed"
	assert.Equal(t, "m1:7051", config.MasterAddresses()[0])
}

func TestClientConfig_InvalidOptions(t *testing.T) {
	for _, item := range []struct {
		name   string
		option ClientOption
		err    error
	}{
		{"addresses", WithMasterAddresses(" , "), ErrInvalidOptionMasterAddresses},
		{"bad-port", WithMasterAddresses("m1:abc"), ErrInvalidOptionMasterAddresses},
		{"operation-timeout", WithOperationTimeout(0), ErrInvalidOptionOperationTimeout},
		{"admin-timeout", WithAdminOperationTimeout(-time.Second), ErrInvalidOptionAdminOperationTimeout},
		{"replicas", WithNumReplicas(0), ErrInvalidOptionNumReplicas},
		{"max-returned", WithMaxReturnedLocations(-1), ErrInvalidOptionMaxReturnedLocations},
		{"identity", WithIdentity(""), ErrInvalidOptionIdentity},
		{"rate-limit", WithMetadataRateLimit(-1, 1), ErrInvalidOptionMetadataRateLimit},
	} {
		t.Run(item.name, func(t *testing.T) {
			_, err := NewClientConfig(item.option)
			assert.ErrorIs(t, err, item.err)
		})
	}
}

func TestClientConfig_AllErrorsReported(t *testing.T) {
	_, err := NewClientConfig(WithNumReplicas(0), WithOperationTimeout(0))
	assert.ErrorIs(t, err, ErrInvalidOptionNumReplicas)
	assert.ErrorIs(t, err, ErrInvalidOptionOperationTimeout)
}

func TestParseMasterAddresses(t *testing.T) {
	for _, item := range []struct {
		input    string
		expected []string
	}{
		{"localhost", []string{"localhost:7051"}},
		{"localhost:1234", []string{"localhost:1234"}},
		{" a:1 , b ", []string{"a:1", "b:7051"}},
		{"tls://secure:443", []string{"tls://secure:443"}},
		{"tls://secure", []string{"tls://secure:7051"}},
		{"[::1]:9000", []string{"[::1]:9000"}},
		{"[::1]", []string{"[::1]:7051"}},
	} {
		t.Run(item.input, func(t *testing.T) {
			parsed, err := ParseMasterAddresses(item.input)
			assert.NoError(t, err)
			assert.Equal(t, item.expected, parsed)
		})
	}
}

func TestHelpSnippet(t *testing.T) {
	help := HelpSnippet()
	for _, key := range []string{KeyMasterAddresses, KeyOperationTimeout, KeyAdminOperationTimeout, KeyNumReplicas} {
		assert.True(t, strings.Contains(help, key), key)
	}
	assert.Contains(t, help, DefaultMasterAddresses)
}
