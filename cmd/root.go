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
	"flag"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// migrateVersion value is set at build time via ldflags
var migrateVersion = "0.0.0"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ozone-migrate",
	Short: "Bulk data relocation from HDFS into a highly-available Ozone cluster",
	Long: `Orchestrate the bulk relocation of data from a legacy HDFS cluster
into a quorum-replicated Ozone cluster administered elsewhere.

The transfer subcommand assembles a client environment for the remote
service, discovers its current leader, verifies both endpoints are
reachable, and then launches and supervises a distcp bulk-copy job.`,
	Version:      migrateVersion,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). Pre-flight failures exit
// with a distinct code per category; a failed transfer exits with the copy
// engine's own code.
func Execute() {
	defer klog.Flush()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func init() {
	klog.InitFlags(nil)
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}
