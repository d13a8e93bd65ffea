// Copyright © 2025 Kaleido, Inc.
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

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-oracle-sdk/internal/oracleconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fforacle",
	Short: "Hyperledger FireFly price oracle SDK tools",
	Long: `Converts prices and fees between integers and the hi/lo pairs
carried in signed 128-bit contract fields.

Negative arguments must follow "--", for example: fforacle encode -- -1`,
	SilenceUsage: true,
}

var cfgFile string
var outputType string

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "", "config file")
	rootCmd.PersistentFlags().StringVarP(&outputType, "output", "o", "", "output format ('json' or 'yaml'), overriding cli.output in config")
	rootCmd.AddCommand(encodeCommand())
	rootCmd.AddCommand(decodeCommand())
	rootCmd.AddCommand(versionCommand())
}

func Execute() error {
	return rootCmd.Execute()
}

// initContext loads the config file (when one is supplied), and returns a
// context carrying the configured logger
func initContext() (context.Context, error) {
	oracleconfig.Reset()
	var err error
	if cfgFile != "" {
		err = config.ReadConfig("fforacle", cfgFile)
	}

	// Setup logging after reading config (even if failed), to output header correctly
	ctx := log.WithLogger(context.Background(), logrus.WithField("pid", fmt.Sprintf("%d", os.Getpid())))
	ctx = log.WithLogger(ctx, logrus.WithField("prefix", "fforacle"))
	config.SetupLogging(ctx)

	// Deferred error return from reading config
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgConfigFailed)
	}
	return ctx, nil
}
