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

import "fmt"

// LoginError indicates the ticket-granting login failed.
type LoginError struct {
	Principal string
	Output    string
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("kerberos login failed for %s: %s", e.Principal, e.Output)
}

// SourceUnreachableError indicates the source filesystem probe failed.
type SourceUnreachableError struct {
	Path   string
	Output string
}

func (e *SourceUnreachableError) Error() string {
	return fmt.Sprintf("source filesystem probe of %s failed: %s", e.Path, e.Output)
}

// DestinationUnreachableError indicates the remote endpoint probe failed. The
// probe's full diagnostic output is carried verbatim to aid triage.
type DestinationUnreachableError struct {
	URI    string
	Output string
}

func (e *DestinationUnreachableError) Error() string {
	return fmt.Sprintf("destination probe of %s failed:\n%s", e.URI, e.Output)
}

// TransferFailedError carries the copy engine's own exit status. It is fatal
// for this run but recoverable by an operator re-run once the root cause is
// fixed; the orchestrator never retries a partially-completed bulk copy.
type TransferFailedError struct {
	Code   int
	LogDir string
}

func (e *TransferFailedError) Error() string {
	return fmt.Sprintf("bulk copy engine exited with status %d", e.Code)
}

// Guidance lists the follow-ups an operator should work through before
// considering a re-run.
func (e *TransferFailedError) Guidance() []string {
	return []string{
		"inspect the YARN application logs for the distcp job",
		"inspect the distcp log directory: " + e.LogDir,
		"inspect the Ozone Manager logs on each peer node",
		"verify the access-control policy on the destination path",
	}
}
