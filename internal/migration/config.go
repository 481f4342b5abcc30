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

// Package migration holds the run configuration, the destination path
// derivation, and the sequential transfer pipeline.
package migration

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Settings keys expected in the flat KEY=value settings file.
const (
	KeyServiceID    = "OM_SERVICE_ID"
	KeyNodeIDs      = "OM_NODE_IDS"
	KeyNodeHosts    = "OM_NODE_HOSTS"
	KeyServicePort  = "OM_SERVICE_PORT"
	KeyManifest     = "DISTCP_SOURCE_FILE"
	KeyLibraryDir   = "OZONE_LIB_DIR"
	KeyLocalConfDir = "HADOOP_CONF_DIR"
	KeyKeytab       = "KEYTAB_PATH"
	KeyPrincipal    = "KERBEROS_PRINCIPAL"
	KeyBandwidth    = "DISTCP_BANDWIDTH_MB"
	KeyMappers      = "DISTCP_NUM_MAPPERS"
	KeyMapperMemory = "DISTCP_MAPPER_MEMORY_MB"
	KeyKerberos     = "KERBEROS_ENABLED"
	KeySourceRoot   = "SOURCE_ROOT_DIR"
	KeyStagingDir   = "STAGING_DIR"
	KeyWorkDir      = "WORK_DIR"
)

// requiredKeys must all be present and non-empty before any stage runs.
var requiredKeys = []string{
	KeyServiceID,
	KeyNodeIDs,
	KeyNodeHosts,
	KeyServicePort,
	KeyManifest,
	KeyLibraryDir,
	KeyLocalConfDir,
	KeyKeytab,
	KeyPrincipal,
	KeyBandwidth,
	KeyMappers,
	KeyMapperMemory,
}

// minimumNodes is the smallest OM quorum the orchestrator will address.
const minimumNodes = 3

// RunConfig is the immutable parameter set for a single transfer run. It is
// only ever produced fully validated; no stage sees a partial config.
type RunConfig struct {
	// Remote Ozone Manager service
	ServiceID string
	NodeIDs   []string
	NodeHosts []string
	Port      int

	// Inputs
	ManifestPath string
	LibraryDir   string
	LocalConfDir string

	// Credentials
	KerberosEnabled bool
	KeytabPath      string
	Principal       string

	// Transfer tuning
	BandwidthMB    int
	Mappers        int
	MapperMemoryMB int

	// Optional, defaulted
	SourceRoot string
	StagingDir string
	WorkDir    string
}

// LoadConfig reads the settings file and returns a fully validated RunConfig.
// Validation is all-or-nothing: every missing required key is reported in a
// single MissingParameterError.
func LoadConfig(path string) (*RunConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.SetDefault(KeyKerberos, true)
	v.SetDefault(KeySourceRoot, "data")
	v.SetDefault(KeyStagingDir, "/tmp/ozone-migration")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("unable to read settings file %s: %w", path, err)
	}

	var missing []string
	for _, key := range requiredKeys {
		if strings.TrimSpace(v.GetString(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingParameterError{Keys: missing}
	}

	cfg := &RunConfig{
		ServiceID:       strings.TrimSpace(v.GetString(KeyServiceID)),
		NodeIDs:         splitList(v.GetString(KeyNodeIDs)),
		NodeHosts:       splitList(v.GetString(KeyNodeHosts)),
		ManifestPath:    strings.TrimSpace(v.GetString(KeyManifest)),
		LibraryDir:      strings.TrimSpace(v.GetString(KeyLibraryDir)),
		LocalConfDir:    strings.TrimSpace(v.GetString(KeyLocalConfDir)),
		KerberosEnabled: v.GetBool(KeyKerberos),
		KeytabPath:      strings.TrimSpace(v.GetString(KeyKeytab)),
		Principal:       strings.TrimSpace(v.GetString(KeyPrincipal)),
		SourceRoot:      strings.Trim(v.GetString(KeySourceRoot), "/"),
		StagingDir:      strings.TrimSpace(v.GetString(KeyStagingDir)),
		WorkDir:         strings.TrimSpace(v.GetString(KeyWorkDir)),
	}

	for _, num := range []struct {
		key string
		dst *int
	}{
		{KeyServicePort, &cfg.Port},
		{KeyBandwidth, &cfg.BandwidthMB},
		{KeyMappers, &cfg.Mappers},
		{KeyMapperMemory, &cfg.MapperMemoryMB},
	} {
		val, err := strconv.Atoi(strings.TrimSpace(v.GetString(num.key)))
		if err != nil || val <= 0 {
			return nil, &ConfigurationError{
				Key:    num.key,
				Reason: fmt.Sprintf("must be a positive integer, got %q", v.GetString(num.key)),
			}
		}
		*num.dst = val
	}

	if len(cfg.NodeIDs) < minimumNodes {
		return nil, &ConfigurationError{
			Key:    KeyNodeIDs,
			Reason: fmt.Sprintf("at least %d node ids are required, got %d", minimumNodes, len(cfg.NodeIDs)),
		}
	}
	if len(cfg.NodeIDs) != len(cfg.NodeHosts) {
		return nil, &ConfigurationError{
			Key: KeyNodeHosts,
			Reason: fmt.Sprintf("%d hostnames for %d node ids; the lists must match",
				len(cfg.NodeHosts), len(cfg.NodeIDs)),
		}
	}
	seen := map[string]bool{}
	for _, id := range cfg.NodeIDs {
		if seen[id] {
			return nil, &ConfigurationError{
				Key:    KeyNodeIDs,
				Reason: fmt.Sprintf("duplicate node id %q", id),
			}
		}
		seen[id] = true
	}

	return cfg, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
