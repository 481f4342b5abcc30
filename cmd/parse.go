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
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/kandula66/hdfs-ozone-migration/internal/migration"
)

// Parse an optional positive-integer flag. Returns 0 if the flag was not set.
func parsePositiveInt(flagSet *pflag.FlagSet, flagName string) (int, error) {
	str, err := flagSet.GetString(flagName)
	if err != nil {
		return 0, err
	}
	if len(str) == 0 { // no option specified
		return 0, nil
	}
	val, err := strconv.Atoi(str)
	if err != nil || val <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer: %q", flagName, str)
	}
	return val, nil
}

// applyTuningOverrides lets command-line flags override the transfer tuning
// from the settings file.
func applyTuningOverrides(flagSet *pflag.FlagSet, cfg *migration.RunConfig) error {
	bandwidth, err := parsePositiveInt(flagSet, "bandwidth")
	if err != nil {
		return err
	}
	if bandwidth > 0 {
		cfg.BandwidthMB = bandwidth
	}

	mappers, err := parsePositiveInt(flagSet, "mappers")
	if err != nil {
		return err
	}
	if mappers > 0 {
		cfg.Mappers = mappers
	}

	memory, err := parsePositiveInt(flagSet, "mapper-memory")
	if err != nil {
		return err
	}
	if memory > 0 {
		cfg.MapperMemoryMB = memory
	}
	return nil
}
