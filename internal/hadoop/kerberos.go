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

// Package hadoop drives the source-cluster tooling: the ticket-granting
// login, the connectivity probes, manifest staging, and the distcp bulk-copy
// engine.
package hadoop

import (
	"context"
	"strings"

	"github.com/go-logr/logr"

	"github.com/kandula66/hdfs-ozone-migration/internal/runner"
)

// Login obtains a Kerberos ticket from the keytab. It runs once per
// invocation; ticket renewal over the life of a long copy is owned by the
// cluster's own configuration, not by the orchestrator.
func Login(ctx context.Context, r runner.Runner, keytab, principal string,
	logger logr.Logger) error {
	logger.Info("obtaining kerberos ticket", "principal", principal, "keytab", keytab)
	result, err := r.Run(ctx, runner.Command{
		Program: "kinit",
		Args:    []string{"-kt", keytab, principal},
	})
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return &LoginError{
			Principal: principal,
			Output:    strings.TrimSpace(result.Combined),
		}
	}
	return nil
}
