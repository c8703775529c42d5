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
	"io"
	"log/slog"
	"net"
	"strconv"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tabletdb/tabletdb/cmd/flag"
	"github.com/tabletdb/tabletdb/common/process"
	"github.com/tabletdb/tabletdb/standalone"
)

const defaultTabletServer = "localhost:7050"

var (
	conf         = standalone.NewConfig()
	configFile   string
	tables       []string
	tabletServer string

	Cmd = &cobra.Command{
		Use:   "standalone",
		Short: "Start a standalone master",
		Long: `Start a master serving a static tablet layout, read from a yaml file.
The file is watched and the layout reloaded on change.
Without a file, each table given with --table is served as a single tablet led by --tablet-server.`,
		Args: cobra.NoArgs,
		RunE: exec,
	}
)

func init() {
	flag.BindAddr(Cmd, &conf.BindAddress)
	flag.MetricsAddr(Cmd, &conf.MetricsServiceAddr)
	flag.ConfigFile(Cmd, &configFile, "Tablet layout file")
	Cmd.Flags().StringSliceVar(&tables, "table", nil, "Tables to serve when no layout file is set")
	Cmd.Flags().StringVar(&tabletServer, "tablet-server", defaultTabletServer, "Tablet server leading the tables given with --table")
}

func setConfigPath(v *viper.Viper) {
	v.SetConfigType("yaml")
	v.SetConfigFile(configFile)
}

func defaultLayout() (standalone.Layout, error) {
	host, port, err := net.SplitHostPort(tabletServer)
	if err != nil {
		return standalone.Layout{}, errors.Wrapf(err, "invalid tablet server address '%s'", tabletServer)
	}
	p, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return standalone.Layout{}, errors.Wrapf(err, "invalid tablet server port '%s'", port)
	}
	return standalone.SingleTabletLayout(host, uint32(p), tables...), nil
}

func loadLayout(v *viper.Viper) (standalone.Layout, error) {
	if configFile == "" {
		return defaultLayout()
	}

	layout := standalone.Layout{}
	if err := v.ReadInConfig(); err != nil {
		return layout, err
	}

	if err := v.Unmarshal(&layout, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(), // default hook
		mapstructure.StringToSliceHookFunc(","),     // default hook
	))); err != nil {
		return layout, errors.Wrap(err, "failed to load tablet layout")
	}

	if err := layout.Validate(); err != nil {
		return layout, err
	}
	return layout, nil
}

// reloadLayout keeps the current layout when the new one is invalid.
func reloadLayout(v *viper.Viper, master *standalone.Master) {
	layout, err := loadLayout(v)
	if err == nil {
		err = master.SetLayout(layout)
	}
	if err != nil {
		slog.Warn(
			"Failed to reload the tablet layout",
			slog.String("file", configFile),
			slog.Any("error", err),
		)
	}
}

func exec(*cobra.Command, []string) error {
	v := viper.New()
	setConfigPath(v)

	layout, err := loadLayout(v)
	if err != nil {
		return err
	}
	conf.Layout = layout

	process.RunProcess(func() (io.Closer, error) {
		master, err := standalone.NewMaster(conf)
		if err != nil {
			return nil, err
		}

		if configFile != "" {
			v.OnConfigChange(func(_ fsnotify.Event) {
				reloadLayout(v, master)
			})
			v.WatchConfig()
		}
		return master, nil
	})
	return nil
}
