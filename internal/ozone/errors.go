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

import "fmt"

// MissingLibraryError indicates the primary client library could not be
// located in the library directory.
type MissingLibraryError struct {
	Pattern string
	Dir     string
}

func (e *MissingLibraryError) Error() string {
	return fmt.Sprintf("no client library matching %q found in %s", e.Pattern, e.Dir)
}

// EnvironmentError wraps a failure while assembling the client environment.
type EnvironmentError struct {
	Op  string
	Err error
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("environment assembly failed while %s: %v", e.Op, e.Err)
}

func (e *EnvironmentError) Unwrap() error { return e.Err }

// LeaderUnresolvedError indicates every discovery strategy was exhausted
// without producing a leader address.
type LeaderUnresolvedError struct {
	ServiceID string
}

func (e *LeaderUnresolvedError) Error() string {
	return fmt.Sprintf("unable to resolve a leader address for OM service %q", e.ServiceID)
}
