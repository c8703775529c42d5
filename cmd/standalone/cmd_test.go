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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tabletdb/tabletdb/standalone"
)

func testLayout(leader string) standalone.Layout {
	return standalone.Layout{
		TabletServers: []standalone.TabletServer{
			{UUID: "ts-1", Host: "host-1", Port: 7050},
			{UUID: "ts-2", Host: "host-2", Port: 7050},
		},
		Tables: []standalone.Table{{
			Name: "users",
			Tablets: []standalone.Tablet{
				{ID: "T0", End: "m", Replicas: []standalone.Replica{{UUID: leader, Role: "LEADER"}}},
				{ID: "T1", Start: "m", Replicas: []standalone.Replica{{UUID: "ts-2", Role: "FOLLOWER"}}},
			},
		}},
	}
}

func writeLayout(t *testing.T, name string, layout any) {
	t.Helper()
	data, err := yaml.Marshal(layout)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(name, data, 0o600))
}

func TestCmd(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "layout.yaml")
	writeLayout(t, name, testLayout("ts-1"))

	invalid := filepath.Join(dir, "invalid.yaml")
	writeLayout(t, invalid, standalone.Layout{
		Tables: []standalone.Table{{Name: "users", Tablets: []standalone.Tablet{{ID: "T0", Replicas: []standalone.Replica{{UUID: "ts-9", Role: "LEADER"}}}}}},
	})

	for _, test := range []struct {
		args           []string
		expectedConf   standalone.Config
		expectedLayout standalone.Layout
		isErr          bool
	}{
		{[]string{}, standalone.Config{
			BindAddress:        "0.0.0.0:7051",
			MetricsServiceAddr: "0.0.0.0:8080",
		}, standalone.SingleTabletLayout("localhost", 7050), false},
		{[]string{"-b=localhost:1234"}, standalone.Config{
			BindAddress:        "localhost:1234",
			MetricsServiceAddr: "0.0.0.0:8080",
		}, standalone.SingleTabletLayout("localhost", 7050), false},
		{[]string{"-m="}, standalone.Config{
			BindAddress: "0.0.0.0:7051",
		}, standalone.SingleTabletLayout("localhost", 7050), false},
		{[]string{"--table=users,orders", "--tablet-server=ts:9000"}, standalone.Config{
			BindAddress:        "0.0.0.0:7051",
			MetricsServiceAddr: "0.0.0.0:8080",
		}, standalone.SingleTabletLayout("ts", 9000, "users", "orders"), false},
		{[]string{"--tablet-server=ts"}, standalone.Config{
			BindAddress:        "0.0.0.0:7051",
			MetricsServiceAddr: "0.0.0.0:8080",
		}, standalone.Layout{}, true},
		{[]string{"-f=" + name}, standalone.Config{
			BindAddress:        "0.0.0.0:7051",
			MetricsServiceAddr: "0.0.0.0:8080",
		}, testLayout("ts-1"), false},
		{[]string{"-f=" + filepath.Join(dir, "missing.yaml")}, standalone.Config{
			BindAddress:        "0.0.0.0:7051",
			MetricsServiceAddr: "0.0.0.0:8080",
		}, standalone.Layout{}, true},
		{[]string{"-f=" + invalid}, standalone.Config{
			BindAddress:        "0.0.0.0:7051",
			MetricsServiceAddr: "0.0.0.0:8080",
		}, standalone.Layout{}, true},
	} {
		t.Run(strings.Join(test.args, "_"), func(t *testing.T) {
			conf = standalone.NewConfig()
			configFile = ""
			tables = nil
			tabletServer = defaultTabletServer
			Cmd.SetArgs(test.args)
			Cmd.RunE = func(cmd *cobra.Command, args []string) error {
				assert.Equal(t, test.expectedConf, conf)

				v := viper.New()
				setConfigPath(v)
				layout, err := loadLayout(v)
				assert.Equal(t, test.isErr, err != nil)
				if err == nil {
					assert.Equal(t, test.expectedLayout, layout)
				}
				return err
			}
			err := Cmd.Execute()
			assert.Equal(t, test.isErr, err != nil)
		})
	}
}

func TestReloadLayout(t *testing.T) {
	name := filepath.Join(t.TempDir(), "layout.yaml")
	writeLayout(t, name, testLayout("ts-1"))
	configFile = name
	defer func() {
		configFile = ""
	}()

	v := viper.New()
	setConfigPath(v)
	layout, err := loadLayout(v)
	require.NoError(t, err)

	config := standalone.NewTestConfig()
	config.Layout = layout
	master, err := standalone.NewMaster(config)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, master.Close())
	}()

	writeLayout(t, name, testLayout("ts-2"))
	reloadLayout(v, master)
	assert.Equal(t, testLayout("ts-2"), master.Layout())

	// An invalid layout leaves the served one untouched
	require.NoError(t, os.WriteFile(name, []byte("tables: [{name: users, tablets: [{id: T0, replicas: [{uuid: ts-9}]}]}]"), 0o600))
	reloadLayout(v, master)
	assert.Equal(t, testLayout("ts-2"), master.Layout())
}
