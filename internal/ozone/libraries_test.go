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
	"errors"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client library location", func() {
	var libDir string

	BeforeEach(func() {
		libDir = GinkgoT().TempDir()
	})

	addJar := func(name string) {
		Expect(os.WriteFile(filepath.Join(libDir, name), []byte("jar"), 0644)).To(Succeed())
	}

	It("finds the primary client library", func() {
		addJar("ozone-filesystem-hadoop3-1.4.0.jar")
		set, err := LocateClientLibraries(libDir, logr.Discard())
		Expect(err).NotTo(HaveOccurred())
		Expect(set.Client).To(Equal(filepath.Join(libDir, "ozone-filesystem-hadoop3-1.4.0.jar")))
	})

	It("prefers the newest-sorted match when several versions exist", func() {
		addJar("ozone-filesystem-hadoop3-1.3.0.jar")
		addJar("ozone-filesystem-hadoop3-1.4.1.jar")
		addJar("ozone-filesystem-hadoop3-1.4.0.jar")
		set, err := LocateClientLibraries(libDir, logr.Discard())
		Expect(err).NotTo(HaveOccurred())
		Expect(set.Client).To(HaveSuffix("ozone-filesystem-hadoop3-1.4.1.jar"))
	})

	It("fails when the primary client library is absent", func() {
		addJar("ozone-common-1.4.0.jar")
		_, err := LocateClientLibraries(libDir, logr.Discard())
		var missing *MissingLibraryError
		Expect(errors.As(err, &missing)).To(BeTrue())
		Expect(missing.Pattern).To(Equal("ozone-filesystem-hadoop3-*.jar"))
	})

	It("degrades without the optional libraries", func() {
		addJar("ozone-filesystem-hadoop3-1.4.0.jar")
		set, err := LocateClientLibraries(libDir, logr.Discard())
		Expect(err).NotTo(HaveOccurred())
		Expect(set.Optionals).To(BeEmpty())
		Expect(set.Classpath()).To(HaveSuffix("ozone-filesystem-hadoop3-1.4.0.jar"))
	})

	It("collects the optional libraries when present", func() {
		addJar("ozone-filesystem-hadoop3-1.4.0.jar")
		addJar("ozone-common-1.4.0.jar")
		addJar("hdds-common-1.4.0.jar")
		addJar("ratis-thirdparty-misc-1.0.5.jar")
		set, err := LocateClientLibraries(libDir, logr.Discard())
		Expect(err).NotTo(HaveOccurred())
		Expect(set.Optionals).To(HaveLen(3))
		cp := set.Classpath()
		Expect(cp).To(ContainSubstring("ozone-common-1.4.0.jar"))
		Expect(cp).To(ContainSubstring("hdds-common-1.4.0.jar"))
		Expect(cp).To(ContainSubstring("ratis-thirdparty-misc-1.0.5.jar"))
	})
})

var _ = Describe("Environment assembly", func() {
	var tmpDir, libDir, confDir, workDir string

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
		libDir = filepath.Join(tmpDir, "lib")
		confDir = filepath.Join(tmpDir, "conf")
		workDir = filepath.Join(tmpDir, "work")
		for _, d := range []string{libDir, confDir, workDir} {
			Expect(os.MkdirAll(d, 0755)).To(Succeed())
		}
		Expect(os.WriteFile(filepath.Join(libDir, "ozone-filesystem-hadoop3-1.4.0.jar"),
			[]byte("jar"), 0644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(confDir, "core-site.xml"),
			[]byte("<configuration/>"), 0644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(confDir, "README.txt"),
			[]byte("not xml"), 0644)).To(Succeed())
	})

	It("seeds the working directory and writes the site file", func() {
		env, err := AssembleEnvironment(testCluster(), libDir, confDir, workDir, logr.Discard())
		Expect(err).NotTo(HaveOccurred())
		Expect(env.ConfDir).To(Equal(workDir))
		Expect(filepath.Join(workDir, "core-site.xml")).To(BeAnExistingFile())
		Expect(filepath.Join(workDir, SiteFileName)).To(BeAnExistingFile())
		// only configuration files are carried over
		Expect(filepath.Join(workDir, "README.txt")).NotTo(BeAnExistingFile())
	})

	It("lets the generated site file win over a shipped one", func() {
		Expect(os.WriteFile(filepath.Join(confDir, SiteFileName),
			[]byte("<configuration><property><name>stale</name><value>1</value></property></configuration>"),
			0644)).To(Succeed())
		env, err := AssembleEnvironment(testCluster(), libDir, confDir, workDir, logr.Discard())
		Expect(err).NotTo(HaveOccurred())
		content, err := os.ReadFile(env.SiteConfigPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).NotTo(ContainSubstring("stale"))
		Expect(string(content)).To(ContainSubstring("ozone.om.service.ids"))
	})

	It("exposes the conf dir and classpath as process environment", func() {
		env, err := AssembleEnvironment(testCluster(), libDir, confDir, workDir, logr.Discard())
		Expect(err).NotTo(HaveOccurred())
		vars := env.Vars()
		Expect(vars).To(HaveKeyWithValue("HADOOP_CONF_DIR", workDir))
		Expect(vars["HADOOP_CLASSPATH"]).To(ContainSubstring("ozone-filesystem-hadoop3-1.4.0.jar"))
	})

	It("fails when the local configuration directory is unreadable", func() {
		_, err := AssembleEnvironment(testCluster(), libDir,
			filepath.Join(tmpDir, "missing"), workDir, logr.Discard())
		var envErr *EnvironmentError
		Expect(errors.As(err, &envErr)).To(BeTrue())
	})
})
