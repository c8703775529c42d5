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

package createtable

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tabletdb/tabletdb/cmd/client/common"
)

var (
	Config = flags{}

	ErrExpectedTable = errors.New("table must be set")
)

type flags struct {
	table     string
	splitKeys []string
}

func (flags *flags) Reset() {
	flags.table = ""
	flags.splitKeys = nil
}

func init() {
	Cmd.Flags().StringVarP(&Config.table, "table", "t", "", "Table name")
	Cmd.Flags().StringArrayVar(&Config.splitKeys, "split", nil, "Split key, in increasing order. Can be repeated")
}

var Cmd = &cobra.Command{
	Use:   "create-table",
	Short: "Create a table",
	Long:  `Create a table split into tablets at the given keys, with the configured number of replicas`,
	Args:  cobra.NoArgs,
	RunE:  exec,
}

type Output struct {
	Table   string `json:"table"`
	TableID string `json:"table_id"`
	Tablets int    `json:"tablets"`
}

func exec(cmd *cobra.Command, _ []string) error {
	if Config.table == "" {
		return ErrExpectedTable
	}

	client, err := common.Config.NewClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	splitKeys := make([][]byte, 0, len(Config.splitKeys))
	for _, key := range Config.splitKeys {
		splitKeys = append(splitKeys, []byte(key))
	}

	tableID, err := client.CreateTable(cmd.Context(), Config.table, splitKeys...)
	if err != nil {
		return err
	}
	return common.WriteOutput(cmd.OutOrStdout(), Output{
		Table:   Config.table,
		TableID: tableID,
		Tablets: len(splitKeys) + 1,
	})
}

