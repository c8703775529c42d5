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
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/multierr"
	"golang.org/x/time/rate"
)

const (
	DefaultMasterPort = 7051

	// DefaultMasterAddresses points at a master on the local host. It is
	// almost never right outside of tests and single node setups.
	DefaultMasterAddresses = "127.0.0.1:7051"

	DefaultOperationTimeout      = 10 * time.Second
	DefaultAdminOperationTimeout = DefaultOperationTimeout
	DefaultNumReplicas           = 3
	DefaultMaxReturnedLocations  = 10
)

// Configuration keys, as used in config files and in the command line help.
const (
	KeyMasterAddresses       = "master.addresses"
	KeyOperationTimeout      = "operation.timeout"
	KeyAdminOperationTimeout = "admin.operation.timeout"
	KeyNumReplicas           = "num.replicas"
)

var (
	ErrInvalidOptionMasterAddresses       = errors.New("MasterAddresses must contain at least one valid host[:port]")
	ErrInvalidOptionOperationTimeout      = errors.New("OperationTimeout must be greater than zero")
	ErrInvalidOptionAdminOperationTimeout = errors.New("AdminOperationTimeout must be greater than zero")
	ErrInvalidOptionNumReplicas           = errors.New("NumReplicas must be greater than zero")
	ErrInvalidOptionMaxReturnedLocations  = errors.New("MaxReturnedLocations must be greater than zero")
	ErrInvalidOptionIdentity              = errors.New("Identity must be non-empty")
	ErrInvalidOptionMetadataRateLimit     = errors.New("MetadataRateLimit must be greater than or equal to zero")
)

// ClientConfig holds everything the locator needs to reach the masters. Use
// NewClientConfig to build one: the zero value is not usable.
type ClientConfig struct {
	masterAddresses       []string
	operationTimeout      time.Duration
	adminOperationTimeout time.Duration
	adminTimeoutSet       bool
	numReplicas           int
	maxReturnedLocations  int
	meterProvider         metric.MeterProvider
	identity              string
	metadataRateLimit     rate.Limit
	metadataBurst         int
}

func defaultIdentity() string {
	return uuid.NewString()
}

// MasterAddresses lists the masters in the order they are tried.
func (c ClientConfig) MasterAddresses() []string {
	return slices.Clone(c.masterAddresses)
}

// OperationTimeout bounds a single routed operation, lookups included.
func (c ClientConfig) OperationTimeout() time.Duration {
	return c.operationTimeout
}

// AdminOperationTimeout bounds administrative calls, such as table creation.
// Unless set explicitly it follows the operation timeout.
func (c ClientConfig) AdminOperationTimeout() time.Duration {
	return c.adminOperationTimeout
}

// NumReplicas is the replication factor of the tables created by the client.
func (c ClientConfig) NumReplicas() int {
	return c.numReplicas
}

func (c ClientConfig) MaxReturnedLocations() int {
	return c.maxReturnedLocations
}

func (c ClientConfig) MeterProvider() metric.MeterProvider {
	return c.meterProvider
}

func (c ClientConfig) Identity() string {
	return c.identity
}

// MetadataRateLimit is the maximum rate of master lookups per second. Zero
// means unlimited.
func (c ClientConfig) MetadataRateLimit() (limit rate.Limit, burst int) {
	return c.metadataRateLimit, c.metadataBurst
}

// ClientOption is an interface for applying client config options.
type ClientOption interface {
	// apply is used to set a ClientOption value of a ClientConfig.
	apply(config ClientConfig) (ClientConfig, error)
}

// NewClientConfig applies the options on top of the defaults. All the invalid
// options are reported together.
func NewClientConfig(opts ...ClientOption) (ClientConfig, error) {
	addresses, _ := ParseMasterAddresses(DefaultMasterAddresses)
	config := ClientConfig{
		masterAddresses:      addresses,
		operationTimeout:     DefaultOperationTimeout,
		numReplicas:          DefaultNumReplicas,
		maxReturnedLocations: DefaultMaxReturnedLocations,
		meterProvider:        noop.NewMeterProvider(),
		identity:             defaultIdentity(),
	}
	var errs error
	var err error
	for _, o := range opts {
		config, err = o.apply(config)
		if err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if !config.adminTimeoutSet {
		config.adminOperationTimeout = config.operationTimeout
	}
	return config, errs
}

type clientOptionFunc func(ClientConfig) (ClientConfig, error)

func (f clientOptionFunc) apply(c ClientConfig) (ClientConfig, error) {
	return f(c)
}

// WithMasterAddresses sets the masters as a comma separated list of
// host[:port]. The port defaults to 7051.
func WithMasterAddresses(addresses string) ClientOption {
	return clientOptionFunc(func(config ClientConfig) (ClientConfig, error) {
		parsed, err := ParseMasterAddresses(addresses)
		if err != nil {
			return config, err
		}
		config.masterAddresses = parsed
		return config, nil
	})
}

func WithOperationTimeout(timeout time.Duration) ClientOption {
	return clientOptionFunc(func(config ClientConfig) (ClientConfig, error) {
		if timeout <= 0 {
			return config, ErrInvalidOptionOperationTimeout
		}
		config.operationTimeout = timeout
		return config, nil
	})
}

func WithAdminOperationTimeout(timeout time.Duration) ClientOption {
	return clientOptionFunc(func(config ClientConfig) (ClientConfig, error) {
		if timeout <= 0 {
			return config, ErrInvalidOptionAdminOperationTimeout
		}
		config.adminOperationTimeout = timeout
		config.adminTimeoutSet = true
		return config, nil
	})
}

func WithNumReplicas(numReplicas int) ClientOption {
	return clientOptionFunc(func(config ClientConfig) (ClientConfig, error) {
		if numReplicas <= 0 {
			return config, ErrInvalidOptionNumReplicas
		}
		config.numReplicas = numReplicas
		return config, nil
	})
}

// WithMaxReturnedLocations sets how many tablets a single master lookup asks
// for. Larger values prefetch the tablets following the requested key.
func WithMaxReturnedLocations(maxReturnedLocations int) ClientOption {
	return clientOptionFunc(func(config ClientConfig) (ClientConfig, error) {
		if maxReturnedLocations <= 0 {
			return config, ErrInvalidOptionMaxReturnedLocations
		}
		config.maxReturnedLocations = maxReturnedLocations
		return config, nil
	})
}

func WithMeterProvider(meterProvider metric.MeterProvider) ClientOption {
	return clientOptionFunc(func(config ClientConfig) (ClientConfig, error) {
		if meterProvider == nil {
			config.meterProvider = noop.NewMeterProvider()
		} else {
			config.meterProvider = meterProvider
		}
		return config, nil
	})
}

// WithGlobalMeterProvider instructs the client to use the global OpenTelemetry MeterProvider.
func WithGlobalMeterProvider() ClientOption {
	return WithMeterProvider(otel.GetMeterProvider())
}

func WithIdentity(identity string) ClientOption {
	return clientOptionFunc(func(config ClientConfig) (ClientConfig, error) {
		if identity == "" {
			return config, ErrInvalidOptionIdentity
		}
		config.identity = identity
		return config, nil
	})
}

// WithMetadataRateLimit caps the master lookups issued by the client. A zero
// limit disables the cap.
func WithMetadataRateLimit(perSecond float64, burst int) ClientOption {
	return clientOptionFunc(func(config ClientConfig) (ClientConfig, error) {
		if perSecond < 0 || burst < 0 {
			return config, ErrInvalidOptionMetadataRateLimit
		}
		config.metadataRateLimit = rate.Limit(perSecond)
		config.metadataBurst = max(burst, 1)
		return config, nil
	})
}

// ParseMasterAddresses splits a comma separated list of master addresses,
// adding the default port where it is missing. A "tls://" prefix is kept.
func ParseMasterAddresses(addresses string) ([]string, error) {
	var parsed []string
	for _, part := range strings.Split(addresses, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		schema := ""
		if strings.HasPrefix(part, "tls://") {
			schema = "tls://"
			part = strings.TrimPrefix(part, schema)
		}

		host, port, err := net.SplitHostPort(part)
		if err != nil {
			host = strings.TrimSuffix(strings.TrimPrefix(part, "["), "]")
			port = strconv.Itoa(DefaultMasterPort)
		}
		if p, err := strconv.Atoi(port); err != nil || p <= 0 || p > 0xFFFF || host == "" {
			return nil, errors.Wrapf(ErrInvalidOptionMasterAddresses, "invalid address '%s'", part)
		}
		parsed = append(parsed, schema+net.JoinHostPort(host, port))
	}

	if len(parsed) == 0 {
		return nil, ErrInvalidOptionMasterAddresses
	}
	return parsed, nil
}

// HelpSnippet describes the configuration keys and their defaults, for
// command line tools embedding the client.
func HelpSnippet() string {
	return fmt.Sprintf(`Client configuration:
  %-25s comma separated list of master host[:port] (default "%s", usually wrong)
  %-25s timeout of routed operations (default %s)
  %-25s timeout of administrative operations (default: the operation timeout)
  %-25s replication factor of new tables (default %d)`,
		KeyMasterAddresses, DefaultMasterAddresses,
		KeyOperationTimeout, DefaultOperationTimeout,
		KeyAdminOperationTimeout,
		KeyNumReplicas, DefaultNumReplicas)
}
