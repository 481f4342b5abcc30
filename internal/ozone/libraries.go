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
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-logr/logr"
)

// Name patterns for the client libraries expected in the library directory.
// Only the filesystem client is strictly required; a missing optional jar is
// a degraded condition, not a fatal one.
const (
	patternClient          = "ozone-filesystem-hadoop3-*.jar"
	patternCommon          = "ozone-common-*.jar"
	patternHddsCommon      = "hdds-common-*.jar"
	patternRatisThirdparty = "ratis-thirdparty-misc-*.jar"
)

var optionalPatterns = []string{patternCommon, patternHddsCommon, patternRatisThirdparty}

// LibrarySet is the resolved set of client jars used to extend the hadoop
// classpath for ofs:// access.
type LibrarySet struct {
	Client    string
	Optionals []string
}

// Classpath joins the resolved jars into a HADOOP_CLASSPATH fragment.
func (l *LibrarySet) Classpath() string {
	parts := append([]string{l.Client}, l.Optionals...)
	return strings.Join(parts, ":")
}

// LocateClientLibraries resolves each library pattern in dir, preferring the
// newest-sorted match when several versions are present.
func LocateClientLibraries(dir string, logger logr.Logger) (*LibrarySet, error) {
	client := newestMatch(dir, patternClient)
	if client == "" {
		return nil, &MissingLibraryError{Pattern: patternClient, Dir: dir}
	}

	set := &LibrarySet{Client: client}
	for _, pattern := range optionalPatterns {
		match := newestMatch(dir, pattern)
		if match == "" {
			logger.Info("optional client library not found, continuing degraded",
				"pattern", pattern, "dir", dir)
			continue
		}
		set.Optionals = append(set.Optionals, match)
	}
	return set, nil
}

func newestMatch(dir, pattern string) string {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil || len(matches) == 0 {
		return ""
	}
	sort.Sort(sort.Reverse(sort.StringSlice(matches)))
	return matches[0]
}
