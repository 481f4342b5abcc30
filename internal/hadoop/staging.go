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
	"path"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"

	"github.com/kandula66/hdfs-ozone-migration/internal/runner"
)

// StageManifest copies the local manifest file into the shared staging
// directory on the source filesystem so the copy engine's distributed
// workers can read it. Overwrite semantics make re-runs idempotent here, but
// concurrent runs against the same manifest basename are unsafe; serializing
// them is the operator's job.
func StageManifest(ctx context.Context, r runner.Runner, env map[string]string,
	localManifest, stagingDir string, logger logr.Logger) (string, error) {
	staged := path.Join(stagingDir, filepath.Base(localManifest))

	mkdir, err := r.Run(ctx, runner.Command{
		Program: "hdfs",
		Args:    []string{"dfs", "-mkdir", "-p", stagingDir},
		Env:     env,
	})
	if err != nil {
		return "", err
	}
	if mkdir.ExitCode != 0 {
		return "", fmt.Errorf("unable to create staging directory %s: %s",
			stagingDir, strings.TrimSpace(mkdir.Combined))
	}

	logger.Info("staging manifest", "local", localManifest, "staged", staged)
	put, err := r.Run(ctx, runner.Command{
		Program: "hdfs",
		Args:    []string{"dfs", "-put", "-f", localManifest, staged},
		Env:     env,
	})
	if err != nil {
		return "", err
	}
	if put.ExitCode != 0 {
		return "", fmt.Errorf("unable to stage manifest to %s: %s",
			staged, strings.TrimSpace(put.Combined))
	}
	return staged, nil
}
