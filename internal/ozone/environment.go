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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
)

// Environment is the assembled client environment for addressing the remote
// service: a configuration directory holding the synthetic site document and
// the classpath extension carrying the client jars.
type Environment struct {
	ConfDir        string
	SiteConfigPath string
	Libraries      *LibrarySet
}

// Vars returns the process environment overrides for hadoop-family commands.
// HADOOP_CONF_DIR points exclusively at the per-run directory so the remote
// topology in use is exactly the one the operator specified; ambient
// configuration is not merged in after assembly.
func (e *Environment) Vars() map[string]string {
	return map[string]string{
		"HADOOP_CONF_DIR":  e.ConfDir,
		"HADOOP_CLASSPATH": e.Libraries.Classpath(),
	}
}

// AssembleEnvironment locates the client libraries, seeds the working
// directory with the local cluster's *.xml configuration, and writes the
// synthetic site document on top.
func AssembleEnvironment(c *Cluster, libraryDir, localConfDir, workDir string,
	logger logr.Logger) (*Environment, error) {
	libs, err := LocateClientLibraries(libraryDir, logger)
	if err != nil {
		return nil, err
	}

	if err := copyConfFiles(localConfDir, workDir); err != nil {
		return nil, &EnvironmentError{Op: "seeding configuration directory", Err: err}
	}

	sitePath, err := WriteSiteConfig(c, workDir)
	if err != nil {
		return nil, err
	}
	logger.Info("assembled client environment",
		"confDir", workDir, "siteConfig", sitePath, "clientLibrary", libs.Client)

	return &Environment{
		ConfDir:        workDir,
		SiteConfigPath: sitePath,
		Libraries:      libs,
	}, nil
}

// copyConfFiles copies the local cluster's *.xml configuration into the
// working directory. The generated site file is written afterward, so it
// always wins over any ozone-site.xml shipped with the source cluster.
func copyConfFiles(srcDir, dstDir string) error {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("unable to read configuration directory %s: %w", srcDir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(srcDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("unable to read %s: %w", entry.Name(), err)
		}
		if err := os.WriteFile(filepath.Join(dstDir, entry.Name()), data, 0644); err != nil {
			return fmt.Errorf("unable to copy %s: %w", entry.Name(), err)
		}
	}
	return nil
}
