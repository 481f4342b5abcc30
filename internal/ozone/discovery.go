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

package ozone

import (
	"context"
	"errors"
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-logr/logr"

	"github.com/kandula66/hdfs-ozone-migration/internal/runner"
)

// LeaderInfo is the routing target for all later network operations. Exactly
// one is produced per run; it is never re-discovered mid-transfer.
type LeaderInfo struct {
	Host    string
	Address string
}

// Strategy resolves the current OM leader. Discovery is best-effort rather
// than provably correct: a stale answer is caught by the connectivity probe
// before any data moves, so a failed strategy is a recoverable miss and the
// next strategy is tried.
type Strategy interface {
	Name() string
	Discover(ctx context.Context) (*LeaderInfo, error)
}

// RolesQuery asks the service's administrative role listing for the elected
// leader. The output is free text; a line tagged with the leader role carries
// the hostname in parentheses, e.g. "om2 : LEADER (om2.example.com)".
type RolesQuery struct {
	Runner    runner.Runner
	Env       map[string]string
	ServiceID string
	Port      int
}

var _ Strategy = &RolesQuery{}

var (
	leaderLineRegex = regexp.MustCompile(`\bLEADER\b`)
	leaderHostRegex = regexp.MustCompile(`\(([^)]+)\)`)
)

func (q *RolesQuery) Name() string { return "om-roles-query" }

func (q *RolesQuery) Discover(ctx context.Context) (*LeaderInfo, error) {
	result, err := q.Runner.Run(ctx, runner.Command{
		Program: "ozone",
		Args:    []string{"admin", "om", "roles", "--service-id=" + q.ServiceID},
		Env:     q.Env,
	})
	if err != nil {
		return nil, err
	}
	if result.ExitCode != 0 {
		return nil, fmt.Errorf("role query exited %d: %s", result.ExitCode,
			strings.TrimSpace(result.Combined))
	}

	for _, line := range strings.Split(result.Stdout, "\n") {
		if !leaderLineRegex.MatchString(line) {
			continue
		}
		if m := leaderHostRegex.FindStringSubmatch(line); len(m) > 1 {
			host := strings.TrimSpace(m[1])
			return &LeaderInfo{
				Host:    host,
				Address: net.JoinHostPort(host, strconv.Itoa(q.Port)),
			}, nil
		}
	}
	return nil, errors.New("no parseable leader line in role query output")
}

// SiteConfigFallback reads the first listed node address for the service out
// of the generated site document. It may name a follower or even a down node;
// that is acceptable because reachability is verified downstream.
type SiteConfigFallback struct {
	SiteConfigPath string
	ServiceID      string
}

var _ Strategy = &SiteConfigFallback{}

func (s *SiteConfigFallback) Name() string { return "site-config-fallback" }

func (s *SiteConfigFallback) Discover(_ context.Context) (*LeaderInfo, error) {
	address, err := FirstNodeAddress(s.SiteConfigPath, s.ServiceID)
	if err != nil {
		return nil, err
	}
	host := address
	if h, _, err := net.SplitHostPort(address); err == nil {
		host = h
	}
	return &LeaderInfo{Host: host, Address: address}, nil
}

// ResolveLeader walks the strategies in order and returns the first hit. A
// leader address is always produced, or the run aborts with
// LeaderUnresolvedError.
func ResolveLeader(ctx context.Context, logger logr.Logger, serviceID string,
	strategies ...Strategy) (*LeaderInfo, error) {
	for _, s := range strategies {
		info, err := s.Discover(ctx)
		if err != nil {
			logger.Info("leader discovery attempt failed",
				"strategy", s.Name(), "error", err.Error())
			continue
		}
		logger.Info("resolved OM leader",
			"strategy", s.Name(), "host", info.Host, "address", info.Address)
		return info, nil
	}
	return nil, &LeaderUnresolvedError{ServiceID: serviceID}
}
