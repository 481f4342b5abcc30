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
	"strings"

	"github.com/go-logr/logr"

	"github.com/kandula66/hdfs-ozone-migration/internal/runner"
)

// Prober performs the pre-flight read probes. Each probe is a bounded single
// attempt; transient blips are the underlying client's problem, whose
// retry/failover tuning is already in the assembled site configuration.
type Prober struct {
	Runner runner.Runner
	Env    map[string]string
	Logger logr.Logger
}

// sourceProbePath is the listing target for the source filesystem probe.
const sourceProbePath = "/"

// ProbeSource verifies the source filesystem answers a trivial listing.
func (p *Prober) ProbeSource(ctx context.Context) error {
	p.Logger.Info("probing source filesystem", "path", sourceProbePath)
	result, err := p.Runner.Run(ctx, runner.Command{
		Program: "hdfs",
		Args:    []string{"dfs", "-ls", sourceProbePath},
		Env:     p.Env,
	})
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return &SourceUnreachableError{
			Path:   sourceProbePath,
			Output: strings.TrimSpace(result.Combined),
		}
	}
	return nil
}

// ProbeDestination verifies the resolved leader answers a listing of the
// service root. On failure the probe's combined output is surfaced verbatim.
func (p *Prober) ProbeDestination(ctx context.Context, leaderAddress string) error {
	uri := fmt.Sprintf("ofs://%s/", leaderAddress)
	p.Logger.Info("probing destination service", "uri", uri)
	result, err := p.Runner.Run(ctx, runner.Command{
		Program: "hadoop",
		Args:    []string{"fs", "-ls", uri},
		Env:     p.Env,
	})
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return &DestinationUnreachableError{
			URI:    uri,
			Output: strings.TrimSpace(result.Combined),
		}
	}
	return nil
}
