package sarif_test

import (
	"bytes"
	"encoding/json"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dartsarif/dartsarif"
	"github.com/dartsarif/dartsarif/report/sarif"
)

func newReportInfo(lines ...string) *dartsarif.ReportInfo {
	GinkgoHelper()
	info, err := dartsarif.NewReader(nil).Read(strings.NewReader(strings.Join(lines, "\n")))
	Expect(err).ShouldNot(HaveOccurred())
	return info
}

func stringPtr(s string) *string {
	return &s
}

func decode(buf *bytes.Buffer) map[string]any {
	GinkgoHelper()
	var doc map[string]any
	Expect(json.Unmarshal(buf.Bytes(), &doc)).To(Succeed())
	return doc
}

var _ = Describe("Sarif Formatter", func() {
	var current sarif.Options

	BeforeEach(func() {
		current = sarif.Options{
			SourceRootURI: "file:///repo",
			Provenance:    &dartsarif.Provenance{},
		}
	})

	Context("when converting to Sarif issues", func() {
		It("should render a single issue relative to the source root", func() {
			info := newReportInfo("warning - lib/main.dart:10:3 - Unused import - unused_import")

			report, err := sarif.GenerateReport(info, current)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(report.Version).Should(Equal("2.1.0"))
			Expect(report.Runs).Should(HaveLen(1))

			run := report.Runs[0]
			Expect(run.Results).Should(HaveLen(1))
			result := run.Results[0]
			Expect(result.Level).Should(Equal(sarif.Warning))
			Expect(result.RuleID).Should(Equal("unused_import"))
			Expect(result.Message.Text).Should(Equal("Unused import"))
			Expect(result.Locations).Should(HaveLen(1))

			physical := result.Locations[0].PhysicalLocation
			Expect(physical.ArtifactLocation.URI).Should(Equal("lib/main.dart"))
			Expect(physical.ArtifactLocation.URIBaseID).Should(Equal("SRCROOT"))
			Expect(physical.Region.StartLine).Should(Equal(10))
			Expect(physical.Region.StartColumn).Should(Equal(3))

			Expect(run.OriginalURIBaseIDs).Should(HaveKey("SRCROOT"))
			Expect(run.OriginalURIBaseIDs["SRCROOT"].URI).Should(Equal("file:///repo"))
			Expect(run.OriginalURIBaseIDs["SRCROOT"].Description.Text).Should(Equal("The root directory for the source files."))

			Expect(run.Tool.Driver.Name).Should(Equal("dart analyze"))
			Expect(run.Tool.Driver.InformationURI).Should(Equal("https://dart.dev/tools/dart-analyze"))
		})

		It("should map the info severity to note and keep the others", func() {
			info := newReportInfo(
				"info - a.dart:1:1 - first - rule_a",
				"error - b.dart:2:2 - second - rule_b",
				"warning - c.dart:3:3 - third - rule_c",
			)

			report, err := sarif.GenerateReport(info, current)
			Expect(err).ShouldNot(HaveOccurred())

			levels := []sarif.Level{}
			for _, result := range report.Runs[0].Results {
				levels = append(levels, result.Level)
			}
			Expect(levels).Should(Equal([]sarif.Level{sarif.Note, sarif.Error, sarif.Warning}))
		})

		It("should pass unknown severities through unchanged", func() {
			info := newReportInfo("hint - a.dart:1:1 - something - rule_a")

			report, err := sarif.GenerateReport(info, current)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(report.Runs[0].Results[0].Level).Should(Equal(sarif.Level("hint")))
		})

		It("should keep the input order of the results", func() {
			info := newReportInfo(
				"info - z.dart:9:1 - last rule first - z_rule",
				"info - a.dart:1:1 - first rule last - a_rule",
			)

			report, err := sarif.GenerateReport(info, current)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(report.Runs[0].Results[0].RuleID).Should(Equal("z_rule"))
			Expect(report.Runs[0].Results[1].RuleID).Should(Equal("a_rule"))
		})

		It("sarif formatted report should have a rule catalog without duplicates", func() {
			info := newReportInfo(
				"info - a.dart:1:1 - m - avoid_print",
				"info - b.dart:1:1 - m - prefer_const_constructors",
				"info - c.dart:1:1 - m - avoid_print",
				"warning - d.dart:1:1 - m - unused_import",
				"info - e.dart:1:1 - m - prefer_const_constructors",
			)

			report, err := sarif.GenerateReport(info, current)
			Expect(err).ShouldNot(HaveOccurred())

			ids := []string{}
			for _, rule := range report.Runs[0].Tool.Driver.Rules {
				Expect(rule.Name).Should(Equal(rule.ID))
				ids = append(ids, rule.ID)
			}
			Expect(ids).Should(ConsistOf("avoid_print", "prefer_const_constructors", "unused_import"))
		})

		It("sarif formatted report should have proper rule index", func() {
			info := newReportInfo(
				"info - a.dart:1:1 - m - G404",
				"info - a.dart:1:1 - m - G101",
				"info - a.dart:1:1 - m - G102",
				"info - a.dart:1:1 - m - G404",
			)

			report, err := sarif.GenerateReport(info, current)
			Expect(err).ShouldNot(HaveOccurred())

			resultRuleIndexes := map[string]int{}
			for _, result := range report.Runs[0].Results {
				resultRuleIndexes[result.RuleID] = result.RuleIndex
			}
			driverRuleIndexes := map[string]int{}
			for ruleIndex, rule := range report.Runs[0].Tool.Driver.Rules {
				driverRuleIndexes[rule.ID] = ruleIndex
			}
			Expect(resultRuleIndexes).Should(Equal(driverRuleIndexes))
		})

		It("should register rules of issues missing from the rule set", func() {
			issue, err := dartsarif.ParseIssue("error - a.dart:1:1 - m - late_rule")
			Expect(err).ShouldNot(HaveOccurred())
			info := &dartsarif.ReportInfo{Issues: []*dartsarif.Issue{issue}}

			report, err := sarif.GenerateReport(info, current)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(report.Runs[0].Tool.Driver.Rules).Should(HaveLen(1))
			Expect(report.Runs[0].Results[0].RuleIndex).Should(Equal(0))
		})

		It("should produce a deterministic driver guid", func() {
			first, err := sarif.GenerateReport(newReportInfo(), current)
			Expect(err).ShouldNot(HaveOccurred())
			second, err := sarif.GenerateReport(newReportInfo(), sarif.Options{})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(first.Runs[0].Tool.Driver.GUID).ShouldNot(BeEmpty())
			Expect(first.Runs[0].Tool.Driver.GUID).Should(Equal(second.Runs[0].Tool.Driver.GUID))
		})
	})

	Context("when writing version control provenance", func() {
		It("should emit an empty object when nothing was supplied", func() {
			buf := new(bytes.Buffer)
			err := sarif.WriteReport(buf, newReportInfo("info - a.dart:1:1 - m - r"), current)
			Expect(err).ShouldNot(HaveOccurred())

			run := decode(buf)["runs"].([]any)[0].(map[string]any)
			Expect(run).Should(HaveKey("versionControlProvenance"))
			provenance := run["versionControlProvenance"].([]any)
			Expect(provenance).Should(HaveLen(1))
			Expect(provenance[0]).Should(BeEmpty())
		})

		It("should keep supplied keys with an empty value", func() {
			current.Provenance = &dartsarif.Provenance{Branch: stringPtr("")}
			buf := new(bytes.Buffer)
			err := sarif.WriteReport(buf, newReportInfo(), current)
			Expect(err).ShouldNot(HaveOccurred())

			run := decode(buf)["runs"].([]any)[0].(map[string]any)
			provenance := run["versionControlProvenance"].([]any)[0].(map[string]any)
			Expect(provenance).Should(Equal(map[string]any{"branch": ""}))
		})

		It("should emit only the supplied keys", func() {
			current.Provenance = &dartsarif.Provenance{
				RepositoryURI: stringPtr("https://github.com/org/app"),
				Branch:        stringPtr("main"),
			}
			buf := new(bytes.Buffer)
			err := sarif.WriteReport(buf, newReportInfo(), current)
			Expect(err).ShouldNot(HaveOccurred())

			run := decode(buf)["runs"].([]any)[0].(map[string]any)
			provenance := run["versionControlProvenance"].([]any)[0].(map[string]any)
			Expect(provenance).Should(Equal(map[string]any{
				"repositoryUri": "https://github.com/org/app",
				"branch":        "main",
			}))
		})
	})

	Context("when writing the legacy document shape", func() {
		It("should leave out the source root and the provenance", func() {
			buf := new(bytes.Buffer)
			err := sarif.WriteReport(buf, newReportInfo("error - lib/a.dart:4:2 - Broken - broken_rule"), sarif.Options{})
			Expect(err).ShouldNot(HaveOccurred())

			result := buf.String()
			Expect(result).ShouldNot(ContainSubstring("versionControlProvenance"))
			Expect(result).ShouldNot(ContainSubstring("originalUriBaseIds"))
			Expect(result).ShouldNot(ContainSubstring("uriBaseId"))
			Expect(result).Should(ContainSubstring(`"uri": "lib/a.dart"`))
		})
	})

	Context("when serializing", func() {
		It("should indent with two spaces", func() {
			buf := new(bytes.Buffer)
			err := sarif.WriteReport(buf, newReportInfo(), current)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(buf.String()).Should(HavePrefix("{\n  \""))
			Expect(buf.String()).Should(ContainSubstring("\"results\": []"))
		})

		It("should conform to the SARIF schema", func() {
			info := newReportInfo(
				"info - lib/main.dart:10:3 - Unused import - unused_import",
				`error - C:\src\app\lib\a.dart:12:5 - Undefined name 'x' - undefined_identifier`,
				"not a diagnostic",
			)
			current.Provenance = &dartsarif.Provenance{RevisionID: stringPtr("0123abcd")}

			report, err := sarif.GenerateReport(info, current)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(validateSarifSchema(report)).To(Succeed())

			legacy, err := sarif.GenerateReport(info, sarif.Options{})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(validateSarifSchema(legacy)).To(Succeed())
		})
	})
})
