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

package locate

import (
	"encoding/hex"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tabletdb/tabletdb/cmd/client/common"
	"github.com/tabletdb/tabletdb/locator"
)

var (
	Config = flags{}

	ErrExpectedKeysOrAll = errors.New("either keys or --all must be set")
	ErrExpectedTable     = errors.New("table must be set")
)

type flags struct {
	table string
	all   bool
	hex   bool
}

func (flags *flags) Reset() {
	flags.table = ""
	flags.all = false
	flags.hex = false
}

func init() {
	Cmd.Flags().StringVarP(&Config.table, "table", "t", "", "Table name")
	Cmd.Flags().BoolVar(&Config.all, "all", false, "List all the tablets of the table")
	Cmd.Flags().BoolVar(&Config.hex, "hex", false, "Keys are hex encoded")
}

var Cmd = &cobra.Command{
	Use:   "locate [flags] KEY...",
	Short: "Locate the tablets owning the keys",
	Long: `Resolve the tablet owning each key with the master and print its range, leader and replicas.

` + locator.HelpSnippet(),
	Args: cobra.ArbitraryArgs,
	RunE: exec,
}

type Tablet struct {
	Table    string    `json:"table"`
	Key      string    `json:"key,omitempty"`
	TabletID string    `json:"tablet_id"`
	Range    string    `json:"range"`
	Leader   string    `json:"leader,omitempty"`
	Replicas []Replica `json:"replicas"`
	Cached   string    `json:"cached,omitempty"`
}

type Replica struct {
	UUID    string `json:"uuid"`
	Address string `json:"address,omitempty"`
	Role    string `json:"role"`
}

type Error struct {
	Key   string `json:"key"`
	Error string `json:"error"`
}

func exec(cmd *cobra.Command, args []string) error {
	if Config.table == "" {
		return ErrExpectedTable
	}
	if Config.all == (len(args) > 0) {
		return ErrExpectedKeysOrAll
	}

	keys := make([][]byte, 0, len(args))
	for _, arg := range args {
		key := []byte(arg)
		if Config.hex {
			var err error
			if key, err = hex.DecodeString(arg); err != nil {
				return errors.Wrapf(err, "key '%s' is not valid hex", arg)
			}
		}
		keys = append(keys, key)
	}

	client, err := common.Config.NewClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	return run(cmd, client, keys)
}

func run(cmd *cobra.Command, client *locator.Client, keys [][]byte) error {
	out := cmd.OutOrStdout()

	if Config.all {
		tablets, err := client.TabletLocations(cmd.Context(), Config.table)
		if err != nil {
			return err
		}
		for _, loc := range tablets {
			if err := common.WriteOutput(out, convert(client, loc, nil)); err != nil {
				return err
			}
		}
		return nil
	}

	for _, key := range keys {
		loc, err := client.Locate(cmd.Context(), Config.table, key)
		if err != nil {
			if err := common.WriteOutput(out, Error{Key: locator.PrettyBytes(key), Error: err.Error()}); err != nil {
				return err
			}
			continue
		}
		if err := common.WriteOutput(out, convert(client, loc, key)); err != nil {
			return err
		}
	}
	return nil
}

func convert(client *locator.Client, loc *locator.TabletLocation, key []byte) Tablet {
	t := Tablet{
		Table:    loc.Table(),
		TabletID: locator.PrettyBytes(loc.TabletID()),
		Range:    loc.KeyRange().String(),
		Replicas: []Replica{},
	}
	if key != nil {
		t.Key = locator.PrettyBytes(key)
	}
	if leader, ok := loc.Leader().Get(); ok {
		t.Leader = leader.UUID()
	}
	for _, r := range loc.Replicas() {
		t.Replicas = append(t.Replicas, Replica{
			UUID:    r.UUID(),
			Address: address(r),
			Role:    r.Role().String(),
		})
	}
	for _, e := range client.Cache().Entries(loc.Table()) {
		if e.Location == loc {
			t.Cached = humanize.Time(e.FetchedAt)
		}
	}
	return t
}

func address(r locator.Replica) string {
	if hp, ok := r.Address().Get(); ok {
		return hp.String()
	}
	return ""
}
