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
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/gwconfig"
	"github.com/wolfedge-labs/canton-ledger-gateway/pkg/gateway"
)

var sigs = make(chan os.Signal, 1)

var rootCmd = &cobra.Command{
	Use:   "ledgergw",
	Short: "Canton Ledger Gateway - ledger-access proxy for prediction market dashboards",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "", "config file")
	rootCmd.AddCommand(versionCommand())
}

func Execute() error {
	return rootCmd.Execute()
}

func run() error {

	gwconfig.Reset()
	err := config.ReadConfig("ledgergw", cfgFile)

	// Setup logging after reading config (even if failed), to output header correctly
	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()
	ctx = log.WithLogger(ctx, logrus.WithField("pid", fmt.Sprintf("%d", os.Getpid())))
	ctx = log.WithLogger(ctx, logrus.WithField("prefix", "ledgergw"))

	config.SetupLogging(ctx)

	// Deferred error return from reading config
	if err != nil {
		cancelCtx()
		return i18n.WrapError(ctx, err, i18n.MsgConfigFailed)
	}

	// Setup signal handling to cancel the context, which shuts down the API server
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	mgr, err := gateway.NewManager(ctx)
	if err != nil {
		return err
	}
	if err = mgr.Start(); err != nil {
		return err
	}
	sig := <-sigs
	log.L(ctx).Infof("Shutting down due to %s", sig.String())
	cancelCtx()
	mgr.Close()
	return nil
}
