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

package hadoop

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-logr/logr"

	"github.com/kandula66/hdfs-ozone-migration/internal/runner"
)

// TransferJob is the fully-determined parameter set for one bulk-copy
// invocation. Nothing in it changes once the pipeline reaches execution.
type TransferJob struct {
	StagedManifest string `yaml:"stagedManifest"`
	Destination    string `yaml:"destination"`
	BandwidthMB    int    `yaml:"bandwidthMBPerMapper"`
	Mappers        int    `yaml:"mapperCount"`
	MapperMemoryMB int    `yaml:"memoryMBPerMapper"`
	LogDir         string `yaml:"logDir"`
	TokenExclude   string `yaml:"tokenRenewalExclude"`
}

// Executor launches and supervises the distcp engine.
type Executor struct {
	Runner runner.Runner
	Env    map[string]string
	Logger logr.Logger
}

// Run blocks until the engine exits and classifies the result. Exit 0 is
// success; any nonzero status is returned as a TransferFailedError carrying
// the engine's own code. Run duration is bounded only by the engine itself.
func (e *Executor) Run(ctx context.Context, job *TransferJob) error {
	args := []string{
		"distcp",
		fmt.Sprintf("-Dmapreduce.map.memory.mb=%d", job.MapperMemoryMB),
		// The remote service is not a delegation-token renewal authority
		// from the source cluster's perspective.
		fmt.Sprintf("-Dmapreduce.job.hdfs-servers.token-renewal.exclude=%s", job.TokenExclude),
		// Source and destination checksum algorithms are incompatible
		// across the two storage systems.
		"-skipcrccheck",
		"-m", strconv.Itoa(job.Mappers),
		"-bandwidth", strconv.Itoa(job.BandwidthMB),
		"-log", job.LogDir,
		"-f", job.StagedManifest,
		job.Destination,
	}

	e.Logger.Info("launching bulk copy", "manifest", job.StagedManifest,
		"destination", job.Destination, "mappers", job.Mappers,
		"bandwidthMB", job.BandwidthMB)
	result, err := e.Runner.Run(ctx, runner.Command{
		Program: "hadoop",
		Args:    args,
		Env:     e.Env,
		Echo:    true,
	})
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return &TransferFailedError{Code: result.ExitCode, LogDir: job.LogDir}
	}
	e.Logger.Info("bulk copy completed", "destination", job.Destination)
	return nil
}
