// (c) Copyright 2016 Hewlett Packard Enterprise Development LP
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dartsarif/dartsarif"
	"github.com/dartsarif/dartsarif/report"
	"github.com/dartsarif/dartsarif/report/sarif"
)

const usageText = `dartsarif converts the output of "dart analyze" or "flutter analyze"
into a SARIF 2.1.0 document which can be uploaded to code scanning services.

Every line of the form

	<severity> - <path>:<line>:<column> - <message> - <rule>

becomes one SARIF result. Other lines are skipped. Artifact paths are
relative to the SRCROOT base URI, which points to source_root.

EXAMPLES:

	# Convert a report
	$ dart analyze > analyze.txt
	$ dartsarif analyze.txt analyze.sarif "$PWD" --repo-uri https://github.com/org/app --branch main

	# Take repository, revision and branch from the git checkout
	$ dartsarif analyze.txt analyze.sarif . --detect-vcs

	# Legacy form, writes to stdout unless --output-file is set
	$ dartsarif --input-file analyze.txt`

const versionTemplate = `{{ .Name }} version {{ .Version }}
Git tag: %s
Build date: %s
`

type options struct {
	repoURI      string
	revisionID   string
	branch       string
	debug        bool
	config       string
	detectVCS    bool
	format       string
	color        bool
	sort         bool
	excludeRules string

	// legacy invocation
	inputFile  string
	outputFile string
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "dartsarif <input_file> <output_file> <source_root>",
		Short:         "Convert dart analyze output to SARIF",
		Long:          usageText,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.inputFile != "" {
				if len(args) > 0 {
					return errors.New("positional arguments can not be combined with --input-file")
				}
				return nil
			}
			if opts.outputFile != "" {
				return errors.New("--output-file requires --input-file")
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert(cmd, opts, args, stdout, newLogger(stderr, opts.debug))
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate(fmt.Sprintf(versionTemplate, GitTag, BuildDate))

	flags := cmd.Flags()
	flags.StringVar(&opts.repoURI, "repo-uri", "", "URI of the repository")
	flags.StringVar(&opts.revisionID, "revision-id", "", "Revision ID of the repository")
	flags.StringVar(&opts.branch, "branch", "", "Branch of the repository")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&opts.config, "conf", "", "Path to optional YAML config file")
	flags.BoolVar(&opts.detectVCS, "detect-vcs", false, "Fill unset provenance fields from the git repository at source_root")
	flags.StringVar(&opts.format, "fmt", report.FormatSARIF, fmt.Sprintf("Output format, valid options are: %v", report.Formats))
	flags.BoolVar(&opts.color, "color", false, "Colorize the text format")
	flags.BoolVar(&opts.sort, "sort", false, "Sort issues by severity instead of keeping the input order")
	flags.StringVar(&opts.excludeRules, "exclude-rules", "", `Drop rules for matching paths, e.g. "test/.*:avoid_print;lib/gen/.*:*"`)
	flags.StringVar(&opts.inputFile, "input-file", "", "dart analyze output file (legacy form)")
	flags.StringVar(&opts.outputFile, "output-file", "", "SARIF output file (legacy form), stdout when empty")

	for _, f := range []string{"repo-uri", "revision-id", "branch", "detect-vcs"} {
		cmd.MarkFlagsMutuallyExclusive("input-file", f)
	}
	return cmd
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func convert(cmd *cobra.Command, opts *options, args []string, stdout io.Writer, logger *slog.Logger) error {
	config, err := dartsarif.LoadConfig(opts.config)
	if err != nil {
		return err
	}

	format := opts.format
	if !cmd.Flags().Changed("fmt") && config.Format != "" {
		format = config.Format
	}
	if !slices.Contains(report.Formats, format) {
		return fmt.Errorf("unknown output format %q, valid options are %v", format, report.Formats)
	}

	filter, err := loadFilter(opts.excludeRules, config)
	if err != nil {
		return err
	}

	inputFile, outputFile := opts.inputFile, opts.outputFile
	var sarifOpts sarif.Options
	if inputFile == "" {
		inputFile, outputFile = args[0], args[1]
		sarifOpts, err = sourceOptions(flagProvenance(cmd, opts), opts.detectVCS || config.DetectVCS, config, args[2], logger)
		if err != nil {
			return err
		}
	} else {
		logger.Debug("legacy invocation, source root and provenance are not written")
	}

	info, err := dartsarif.NewReader(logger).WithFilter(filter).ReadFile(inputFile)
	if err != nil {
		return err
	}

	if opts.sort {
		sortIssues(info.Issues)
	}

	if err := saveOutput(outputFile, format, opts.color, sarifOpts, info, stdout); err != nil {
		return err
	}
	logger.Info("report written", "issues", info.Stats.NumFound, "rules", len(info.Rules), "format", format)
	return nil
}

func loadFilter(cliRules string, config *dartsarif.Config) (*dartsarif.PathExclusionFilter, error) {
	rules, err := dartsarif.ParseCLIExcludeRules(cliRules)
	if err != nil {
		return nil, err
	}
	return dartsarif.NewPathExclusionFilter(dartsarif.MergeExcludeRules(config.ExcludeRules, rules))
}

// flagProvenance holds the provenance fields given on the command line.
// A flag set to an empty string is still supplied.
func flagProvenance(cmd *cobra.Command, opts *options) dartsarif.Provenance {
	var p dartsarif.Provenance
	if cmd.Flags().Changed("repo-uri") {
		p.RepositoryURI = &opts.repoURI
	}
	if cmd.Flags().Changed("revision-id") {
		p.RevisionID = &opts.revisionID
	}
	if cmd.Flags().Changed("branch") {
		p.Branch = &opts.branch
	}
	return p
}

// sourceOptions builds the SRCROOT mapping and the provenance. Explicit
// flags win over the config file, which wins over detection.
func sourceOptions(flags dartsarif.Provenance, detectVCS bool, config *dartsarif.Config, sourceRoot string, logger *slog.Logger) (sarif.Options, error) {
	rootURI, err := dartsarif.FileURI(sourceRoot)
	if err != nil {
		return sarif.Options{}, fmt.Errorf("source root %s: %w", sourceRoot, err)
	}

	provenance := flags.Merge(config.Provenance)

	if detectVCS {
		detected, err := dartsarif.DetectProvenance(sourceRoot)
		if err != nil {
			return sarif.Options{}, err
		}
		logger.Debug("detected provenance", "provenance", detected)
		provenance = provenance.Merge(detected)
	}

	if provenance.IsEmpty() {
		logger.Debug("no provenance supplied, writing an empty entry")
	}
	return sarif.Options{SourceRootURI: rootURI, Provenance: &provenance}, nil
}

func saveOutput(filename, format string, enableColor bool, opts sarif.Options, info *dartsarif.ReportInfo, stdout io.Writer) error {
	if filename == "" || filename == "-" {
		return report.CreateReport(stdout, format, enableColor, opts, info)
	}

	// #nosec G304
	outfile, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer outfile.Close()
	if err := report.CreateReport(outfile, format, enableColor, opts, info); err != nil {
		return err
	}
	return outfile.Close()
}

func main() {
	prepareVersionInfo()

	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err) // #nosec
		os.Exit(1)
	}
}
