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
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadManifestHead returns the first non-blank line of the transfer manifest.
// Only the first entry is load-bearing for path derivation; the remaining
// entries are not validated. All entries in a manifest are assumed to share a
// directory ancestor one level above their final component; heterogeneous
// manifests are a caller error that this layer cannot detect.
func ReadManifestHead(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("unable to open transfer manifest: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("unable to read transfer manifest %s: %w", path, err)
	}
	return "", &UnparseablePathError{Entry: path, Reason: "manifest contains no entries"}
}

// DeriveDestination computes the relative destination path from the
// manifest's first entry: the scheme, authority, and well-known root segment
// are stripped, and the final path component (the leaf table or file) is
// dropped. Deriving twice from the same entry yields the same suffix.
//
// Example: "hdfs://ns1/data/fid2/raw/hive/hdfs_db4/csvtable1" with root
// "data" derives "fid2/raw/hive/hdfs_db4".
func DeriveDestination(firstEntry, rootDir string) (string, error) {
	rest := firstEntry
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+3:]
		j := strings.Index(rest, "/")
		if j < 0 {
			return "", &UnparseablePathError{Entry: firstEntry, Reason: "no path after authority"}
		}
		rest = rest[j+1:]
	} else {
		rest = strings.TrimPrefix(rest, "/")
	}

	if root := strings.Trim(rootDir, "/"); root != "" {
		if !strings.HasPrefix(rest, root+"/") {
			return "", &UnparseablePathError{
				Entry:  firstEntry,
				Reason: fmt.Sprintf("entry is not under the source root %q", root),
			}
		}
		rest = strings.TrimPrefix(rest, root+"/")
	}

	rest = strings.Trim(rest, "/")
	i := strings.LastIndex(rest, "/")
	if i <= 0 {
		return "", &UnparseablePathError{
			Entry:  firstEntry,
			Reason: "no directory structure remains after stripping the prefix",
		}
	}
	return rest[:i], nil
}
