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
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tabletdb/tabletdb/locator"
)

var (
	Config = ClientConfig{}

	ErrConfigFile = errors.New("failed to read client config file")
)

// ClientConfig holds the client flags. Every flag can also be set in the yaml
// config file, under the locator configuration key of the same name.
type ClientConfig struct {
	ConfigFile            string
	MasterAddresses       string
	OperationTimeout      time.Duration
	AdminOperationTimeout time.Duration
	NumReplicas           int
}

func (config *ClientConfig) Reset() {
	*config = ClientConfig{}
}

var flagKeys = map[string]string{
	"master-addresses":        locator.KeyMasterAddresses,
	"operation-timeout":       locator.KeyOperationTimeout,
	"admin-operation-timeout": locator.KeyAdminOperationTimeout,
	"num-replicas":            locator.KeyNumReplicas,
}

func AddFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&Config.MasterAddresses, "master-addresses", "a", locator.DefaultMasterAddresses,
		"Comma separated list of master addresses")
	flags.DurationVar(&Config.OperationTimeout, "operation-timeout", locator.DefaultOperationTimeout,
		"Timeout of the operations sent to tablet servers, lookups included")
	flags.DurationVar(&Config.AdminOperationTimeout, "admin-operation-timeout", 0,
		"Timeout of administrative operations (default: the operation timeout)")
	flags.IntVar(&Config.NumReplicas, "num-replicas", locator.DefaultNumReplicas,
		"Number of replicas of the tables created by the client")
	flags.StringVarP(&Config.ConfigFile, "conf", "f", "", "Client config file")
}

// Load merges the flags with the config file. Flags set on the command line
// take precedence over the file, the file over the defaults.
func (config *ClientConfig) Load(cmd *cobra.Command) (locator.ClientConfig, error) {
	v := viper.New()
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return locator.ClientConfig{}, err
		}
	}

	if config.ConfigFile != "" {
		v.SetConfigFile(config.ConfigFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return locator.ClientConfig{}, errors.Wrap(ErrConfigFile, err.Error())
		}
		slog.Debug(
			"Loaded client config file",
			slog.String("file", config.ConfigFile),
		)
	}

	opts := []locator.ClientOption{
		locator.WithMasterAddresses(strings.TrimSpace(v.GetString(locator.KeyMasterAddresses))),
		locator.WithOperationTimeout(v.GetDuration(locator.KeyOperationTimeout)),
		locator.WithNumReplicas(v.GetInt(locator.KeyNumReplicas)),
		locator.WithGlobalMeterProvider(),
	}
	if adminTimeout := v.GetDuration(locator.KeyAdminOperationTimeout); adminTimeout > 0 {
		opts = append(opts, locator.WithAdminOperationTimeout(adminTimeout))
	}
	return locator.NewClientConfig(opts...)
}

func (config *ClientConfig) NewClient(cmd *cobra.Command) (*locator.Client, error) {
	clientConfig, err := config.Load(cmd)
	if err != nil {
		return nil, err
	}
	return locator.NewClient(clientConfig)
}
