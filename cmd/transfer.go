/*
Copyright © 2025 The hdfs-ozone-migration authors

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package cmd

import (
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/kandula66/hdfs-ozone-migration/internal/migration"
	"github.com/kandula66/hdfs-ozone-migration/internal/runner"
)

// transferCmd represents the transfer command
var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Run the cross-cluster transfer pipeline",
	Long: `Run the full transfer pipeline for one manifest: assemble the
client environment, obtain a kerberos ticket, discover the Ozone Manager
leader, derive the destination path from the manifest, probe both
endpoints, and launch the distcp bulk-copy job.

Concurrent invocations against the same manifest basename are unsafe and
must be serialized by the operator.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, err := cmd.Flags().GetString("settings")
		if err != nil {
			return err
		}
		cfg, err := migration.LoadConfig(settings)
		if err != nil {
			return err
		}
		if err := applyTuningOverrides(cmd.Flags(), cfg); err != nil {
			return err
		}
		dryRun, err := cmd.Flags().GetBool("dry-run")
		if err != nil {
			return err
		}

		logger := klog.NewKlogr()
		pipeline := &migration.Pipeline{
			Config: cfg,
			Runner: &runner.ExecRunner{Logger: logger},
			Logger: logger,
			DryRun: dryRun,
		}
		return pipeline.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(transferCmd)

	transferCmd.Flags().StringP("settings", "s", "", "path to the KEY=value settings file")
	cobra.CheckErr(transferCmd.MarkFlagRequired("settings"))
	transferCmd.Flags().Bool("dry-run", false, "stop after printing the fully-determined job plan")
	transferCmd.Flags().String("bandwidth", "", "override the per-mapper bandwidth ceiling (MB)")
	transferCmd.Flags().String("mappers", "", "override the mapper count")
	transferCmd.Flags().String("mapper-memory", "", "override the per-mapper memory (MB)")
}
