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
	"errors"

	"github.com/kandula66/hdfs-ozone-migration/internal/hadoop"
	"github.com/kandula66/hdfs-ozone-migration/internal/migration"
	"github.com/kandula66/hdfs-ozone-migration/internal/ozone"
)

// One exit code per pre-flight failure category. The transfer stage instead
// mirrors the copy engine's own exit code, propagated, not reinterpreted.
const (
	exitConfiguration  = 10
	exitEnvironment    = 11
	exitDiscovery      = 12
	exitPathDerivation = 13
	exitConnectivity   = 14
)

func exitCode(err error) int {
	var (
		missingParam *migration.MissingParameterError
		confErr      *migration.ConfigurationError
		pathErr      *migration.UnparseablePathError
		libErr       *ozone.MissingLibraryError
		envErr       *ozone.EnvironmentError
		leaderErr    *ozone.LeaderUnresolvedError
		loginErr     *hadoop.LoginError
		srcErr       *hadoop.SourceUnreachableError
		dstErr       *hadoop.DestinationUnreachableError
		xferErr      *hadoop.TransferFailedError
	)
	switch {
	case errors.As(err, &missingParam), errors.As(err, &confErr):
		return exitConfiguration
	case errors.As(err, &libErr), errors.As(err, &envErr), errors.As(err, &loginErr):
		return exitEnvironment
	case errors.As(err, &leaderErr):
		return exitDiscovery
	case errors.As(err, &pathErr):
		return exitPathDerivation
	case errors.As(err, &srcErr), errors.As(err, &dstErr):
		return exitConnectivity
	case errors.As(err, &xferErr):
		return xferErr.Code
	}
	return 1
}
