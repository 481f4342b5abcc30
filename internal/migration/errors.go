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
	"fmt"
	"strings"
)

// MissingParameterError reports every required settings key that is absent
// from the settings file, not just the first one found.
type MissingParameterError struct {
	Keys []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required configuration parameters: %s", strings.Join(e.Keys, ", "))
}

// ConfigurationError reports a settings key whose value is present but
// unusable.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration parameter %s: %s", e.Key, e.Reason)
}

// UnparseablePathError indicates the transfer manifest's first entry did not
// have the expected scheme/authority/root shape.
type UnparseablePathError struct {
	Entry  string
	Reason string
}

func (e *UnparseablePathError) Error() string {
	return fmt.Sprintf("unable to derive destination path from %q: %s", e.Entry, e.Reason)
}
