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

package client

import (
	"github.com/spf13/cobra"

	"github.com/tabletdb/tabletdb/cmd/client/common"
	"github.com/tabletdb/tabletdb/cmd/client/createtable"
	"github.com/tabletdb/tabletdb/cmd/client/locate"
)

var Cmd = &cobra.Command{
	Use:   "client",
	Short: "Query the tablet locations",
	Long:  `Locate tablets and create tables through the master metadata service`,
}

func init() {
	common.AddFlags(Cmd)

	Cmd.AddCommand(locate.Cmd)
	Cmd.AddCommand(createtable.Cmd)
}
