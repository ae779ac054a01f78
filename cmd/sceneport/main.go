// Copyright 2025 walteh LLC
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

package main

import (
	"context"
	"os"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/walteh/sceneport/cmd/sceneport/commands"
	"github.com/walteh/sceneport/cmd/sceneport/opts"
	"github.com/walteh/sceneport/pkg/log"

	// Register the reference engine so config profiles can name it.
	_ "github.com/walteh/sceneport/pkg/engine/commandport"
)

func main() {
	rootCmd := newRootCmd()

	ctx := zlog.Logger.WithContext(context.Background())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		zlog.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// newRootCmd builds the root command. Commands share one RootOpts; it is
// filled in after cobra has parsed the persistent flags, and the console
// logger is threaded to subcommands through the command context.
func newRootCmd() *cobra.Command {
	o := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "sceneport",
		Short: "A tool for driving a host application's scene files over its command port",
		Long: `sceneport talks to a running host application over its command port and
drives scene file operations from the shell: opening, importing,
exporting, references, namespaces, and plugins.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()

			ro, err := newRootOpts(cmd.Context())
			if err != nil {
				return err
			}
			*o = *ro

			cmd.SetContext(log.NewContext(cmd.Context(), o.Logger))
			return nil
		},
	}

	addRootFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewOpenCmd(o),
		commands.NewImportCmd(o),
		commands.NewExportCmd(o),
		commands.NewSaveCmd(o),
		commands.NewRefsCmd(o),
		commands.NewNamespaceCmd(o),
		commands.NewInfoCmd(o),
		commands.NewPluginsCmd(o),
	)

	return rootCmd
}
