/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/IBM/sss-recon/config"
	"github.com/IBM/sss-recon/loader"
	"github.com/IBM/sss-recon/logging"
	"github.com/IBM/sss-recon/reconstruct"
	"github.com/IBM/sss-recon/report"
	. "github.com/IBM/sss-recon/types"
)

const configFlag = "config"

var defaultInputs = []string{"testcase1.json", "testcase2.json"}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recon [files...]",
		Short: "Reconstruct a secret from threshold shares by majority vote",
		Long: `recon decodes the shares of every given test case, interpolates all
combinations of k shares at zero and reports the secret most combinations agree on.
Without arguments testcase1.json and testcase2.json are processed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	config.RegisterFlags(cmd.Flags())
	cmd.Flags().String(configFlag, "", "configuration file (defaults to ./recon.yml if present)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	configFile, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return err
	}

	conf, err := config.Load(config.New(), configFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := logging.New(conf.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	if len(args) == 0 {
		args = defaultInputs
	}

	console := report.NewConsole(cmd.OutOrStdout())
	scheme := conf.Scheme()
	scheme.Logger = logger
	scheme.Reporter = console

	console.Header()
	failed := reconstructAll(cmd.Context(), &loader.File{Dir: conf.Dir}, scheme, console, logger, args)
	console.Summary()

	if failed > 0 {
		return errors.Errorf("%d of %d test cases could not be reconstructed", failed, len(args))
	}
	return nil
}

func reconstructAll(ctx context.Context, l Loader, scheme *reconstruct.Scheme, console *report.Console, logger *logging.Logger, names []string) int {
	var failed int
	for _, name := range names {
		raw, err := l.Load(ctx, name)
		if err == nil {
			_, err = scheme.Reconstruct(ctx, name, raw)
		}

		if err != nil {
			logger.Errorf("Test case %s failed: %v", name, err)
			console.Failed(name, err)
			failed++
		}
	}
	return failed
}
