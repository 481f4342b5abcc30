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

package migration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/kandula66/hdfs-ozone-migration/internal/hadoop"
	"github.com/kandula66/hdfs-ozone-migration/internal/ozone"
	"github.com/kandula66/hdfs-ozone-migration/internal/runner"
)

// Pipeline runs the transfer stages strictly in sequence: environment
// assembly, login, leader discovery, path derivation, connectivity probes,
// staging, bulk copy. Each stage's success is a precondition for the next;
// any failure aborts immediately and nothing is retried.
type Pipeline struct {
	Config *RunConfig
	Runner runner.Runner
	Logger logr.Logger

	// WorkDir overrides the generated per-run working directory.
	WorkDir string
	// DryRun stops after printing the fully-determined job plan.
	DryRun bool
	// Strategies overrides the leader discovery chain; nil builds the
	// default role-query-then-site-config chain.
	Strategies []ozone.Strategy
	// Out receives plan and diagnostic text; defaults to os.Stdout.
	Out io.Writer
}

func (p *Pipeline) Run(ctx context.Context) error {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	cfg := p.Config

	workDir, err := p.ensureWorkDir()
	if err != nil {
		return err
	}

	cluster := ozone.NewCluster(cfg.ServiceID, cfg.NodeIDs, cfg.NodeHosts,
		cfg.Port, cfg.KerberosEnabled)
	env, err := ozone.AssembleEnvironment(cluster, cfg.LibraryDir,
		cfg.LocalConfDir, workDir, p.Logger)
	if err != nil {
		return err
	}
	vars := env.Vars()

	if cfg.KerberosEnabled {
		if err := hadoop.Login(ctx, p.Runner, cfg.KeytabPath, cfg.Principal, p.Logger); err != nil {
			return err
		}
	}

	strategies := p.Strategies
	if strategies == nil {
		strategies = []ozone.Strategy{
			&ozone.RolesQuery{Runner: p.Runner, Env: vars,
				ServiceID: cfg.ServiceID, Port: cfg.Port},
			&ozone.SiteConfigFallback{SiteConfigPath: env.SiteConfigPath,
				ServiceID: cfg.ServiceID},
		}
	}
	leader, err := ozone.ResolveLeader(ctx, p.Logger, cfg.ServiceID, strategies...)
	if err != nil {
		return err
	}

	firstEntry, err := ReadManifestHead(cfg.ManifestPath)
	if err != nil {
		return err
	}
	suffix, err := DeriveDestination(firstEntry, cfg.SourceRoot)
	if err != nil {
		return err
	}

	basename := filepath.Base(cfg.ManifestPath)
	job := &hadoop.TransferJob{
		StagedManifest: path.Join(cfg.StagingDir, basename),
		Destination:    fmt.Sprintf("ofs://%s/%s", leader.Address, suffix),
		BandwidthMB:    cfg.BandwidthMB,
		Mappers:        cfg.Mappers,
		MapperMemoryMB: cfg.MapperMemoryMB,
		LogDir:         path.Join(cfg.StagingDir, "logs", basename),
		TokenExclude:   leader.Host,
	}
	plan, err := yaml.Marshal(job)
	if err != nil {
		return fmt.Errorf("unable to render job plan: %w", err)
	}
	fmt.Fprintf(out, "Transfer job plan:\n%s", plan)

	if p.DryRun {
		p.Logger.Info("dry run requested, stopping before connectivity probes")
		return nil
	}

	prober := &hadoop.Prober{Runner: p.Runner, Env: vars, Logger: p.Logger}
	if err := prober.ProbeSource(ctx); err != nil {
		return err
	}
	if err := prober.ProbeDestination(ctx, leader.Address); err != nil {
		return err
	}

	staged, err := hadoop.StageManifest(ctx, p.Runner, vars,
		cfg.ManifestPath, cfg.StagingDir, p.Logger)
	if err != nil {
		return err
	}
	job.StagedManifest = staged

	executor := &hadoop.Executor{Runner: p.Runner, Env: vars, Logger: p.Logger}
	if err := executor.Run(ctx, job); err != nil {
		var failed *hadoop.TransferFailedError
		if errors.As(err, &failed) {
			fmt.Fprintf(out, "\nTransfer failed (engine exit %d). Suggested follow-ups:\n", failed.Code)
			for _, g := range failed.Guidance() {
				fmt.Fprintf(out, "  - %s\n", g)
			}
		}
		return err
	}
	fmt.Fprintln(out, "Transfer completed successfully.")
	return nil
}

// ensureWorkDir creates the per-run scoped working directory that receives
// the synthetic site configuration. It is kept on failure so operators can
// inspect what was generated.
func (p *Pipeline) ensureWorkDir() (string, error) {
	if p.WorkDir != "" {
		if err := os.MkdirAll(p.WorkDir, 0755); err != nil {
			return "", fmt.Errorf("unable to create working directory %s: %w", p.WorkDir, err)
		}
		return p.WorkDir, nil
	}
	base := p.Config.WorkDir
	if base == "" {
		base = os.TempDir()
	}
	name := fmt.Sprintf("ozone-migration-%s-%s",
		time.Now().Format("20060102-150405"), uuid.New().String()[:8])
	dir := filepath.Join(base, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("unable to create working directory %s: %w", dir, err)
	}
	p.Logger.Info("created working directory", "dir", dir)
	return dir, nil
}
