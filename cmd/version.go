// Copyright © 2025 Wolf Edge Labs, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

package cmd

import (
	"encoding/json"
	"fmt"
	"runtime/debug"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/spf13/cobra"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/gwmsgs"
	"gopkg.in/yaml.v2"
)

// Overridden at build time with ldflags
var (
	BuildVersionOverride string
	BuildDate            string
	BuildCommit          string
)

type versionInfo struct {
	Version string `json:"Version,omitempty" yaml:"Version,omitempty"`
	Commit  string `json:"Commit,omitempty" yaml:"Commit,omitempty"`
	Date    string `json:"Date,omitempty" yaml:"Date,omitempty"`
}

func versionCommand() *cobra.Command {
	var shortened bool
	var output string
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Prints the version info",
		RunE: func(cmd *cobra.Command, args []string) error {
			buildVersion := BuildVersionOverride
			if buildVersion == "" {
				info, ok := debug.ReadBuildInfo()
				if ok {
					buildVersion = info.Main.Version
				}
			}
			if buildVersion == "" {
				buildVersion = "(unknown)"
			}

			if shortened {
				fmt.Println(buildVersion)
				return nil
			}

			info := &versionInfo{
				Version: buildVersion,
				Commit:  BuildCommit,
				Date:    BuildDate,
			}
			var (
				b   []byte
				err error
			)
			switch output {
			case "json":
				b, err = json.MarshalIndent(info, "", "  ")
			case "yaml":
				b, err = yaml.Marshal(info)
			default:
				err = i18n.NewError(cmd.Context(), gwmsgs.MsgInvalidOutputType, output)
			}
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		},
	}
	versionCmd.Flags().BoolVarP(&shortened, "short", "s", false, "Prints only the version number")
	versionCmd.Flags().StringVarP(&output, "output", "o", "json", "output format (\"json\"|\"yaml\")")
	return versionCmd
}
