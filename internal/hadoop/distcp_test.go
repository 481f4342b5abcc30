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

import (
	"context"
	"errors"
	"strings"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kandula66/hdfs-ozone-migration/internal/runner"
)

var _ = Describe("Transfer executor", func() {
	var rec *recordingRunner
	var executor *Executor
	var job *TransferJob

	BeforeEach(func() {
		rec = &recordingRunner{}
		executor = &Executor{
			Runner: rec,
			Env:    map[string]string{"HADOOP_CONF_DIR": "/work"},
			Logger: logr.Discard(),
		}
		job = &TransferJob{
			StagedManifest: "/tmp/ozone-migration/hdfs_db4_distcp_source.txt",
			Destination:    "ofs://h2.example.com:9862/fid2/raw/hive/hdfs_db4",
			BandwidthMB:    100,
			Mappers:        20,
			MapperMemoryMB: 4096,
			LogDir:         "/tmp/ozone-migration/logs/hdfs_db4_distcp_source.txt",
			TokenExclude:   "h2.example.com",
		}
	})

	It("builds the full distcp argument set", func() {
		Expect(executor.Run(context.Background(), job)).To(Succeed())
		Expect(rec.calls).To(HaveLen(1))
		cmd := rec.calls[0]
		Expect(cmd.Program).To(Equal("hadoop"))
		Expect(cmd.Args[0]).To(Equal("distcp"))
		joined := strings.Join(cmd.Args, " ")
		Expect(joined).To(ContainSubstring("-Dmapreduce.map.memory.mb=4096"))
		Expect(joined).To(ContainSubstring(
			"-Dmapreduce.job.hdfs-servers.token-renewal.exclude=h2.example.com"))
		Expect(joined).To(ContainSubstring("-skipcrccheck"))
		Expect(joined).To(ContainSubstring("-m 20"))
		Expect(joined).To(ContainSubstring("-bandwidth 100"))
		Expect(joined).To(ContainSubstring("-log /tmp/ozone-migration/logs/hdfs_db4_distcp_source.txt"))
		Expect(joined).To(ContainSubstring("-f /tmp/ozone-migration/hdfs_db4_distcp_source.txt"))
		// destination is the final argument
		Expect(cmd.Args[len(cmd.Args)-1]).To(Equal(job.Destination))
	})

	It("streams engine output to the console", func() {
		Expect(executor.Run(context.Background(), job)).To(Succeed())
		Expect(rec.calls[0].Echo).To(BeTrue())
	})

	It("treats engine exit 0 as success", func() {
		rec.respond = func(runner.Command) *runner.Result { return &runner.Result{ExitCode: 0} }
		Expect(executor.Run(context.Background(), job)).To(Succeed())
	})

	It("propagates a nonzero engine exit code untouched", func() {
		rec.respond = func(runner.Command) *runner.Result { return &runner.Result{ExitCode: 7} }
		err := executor.Run(context.Background(), job)
		var failed *TransferFailedError
		Expect(errors.As(err, &failed)).To(BeTrue())
		Expect(failed.Code).To(Equal(7))
		Expect(failed.Guidance()).To(ContainElement(
			"inspect the distcp log directory: " + job.LogDir))
	})
})
