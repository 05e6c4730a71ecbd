package testutils

var (
	// SampleDartAnalyze is the output of `dart analyze` on a small package
	SampleDartAnalyze = OutputSample{
		Name: "dart analyze",
		Output: `Analyzing todo_app...

  error - lib/src/store.dart:14:7 - The name 'TodoRepository' isn't a type, so it can't be used as a type argument. - non_type_as_type_argument
warning - lib/main.dart:3:8 - Unused import: 'dart:async'. - unused_import
   info - lib/main.dart:21:5 - Don't invoke 'print' in production code. - avoid_print
   info - test/store_test.dart:9:3 - Don't invoke 'print' in production code. - avoid_print

4 issues found.
`,
		Issues:  4,
		Rules:   3,
		Skipped: 4,
	}

	// SampleFlutterAnalyze is the output of `flutter analyze`, which reports
	// the elapsed time in its summary
	SampleFlutterAnalyze = OutputSample{
		Name: "flutter analyze",
		Output: `Analyzing flutter_app...

   info - lib/main.dart:12:14 - Use 'const' with the constructor to improve performance - prefer_const_constructors
   info - lib/widgets/card.dart:40:9 - Sort child properties last in widget instance creations - sort_child_properties_last
warning - lib/widgets/card.dart:7:10 - The value of the field '_count' isn't used - unused_field

3 issues found. (ran in 2.1s)
`,
		Issues:  3,
		Rules:   3,
		Skipped: 4,
	}

	// SampleWindowsPaths is analyzer output produced on Windows
	SampleWindowsPaths = OutputSample{
		Name: "windows paths",
		Output: "Analyzing app...\r\n" +
			"  error - C:\\src\\app\\lib\\main.dart:12:5 - Undefined name 'x'. - undefined_identifier\r\n" +
			"warning - D:\\work\\app\\lib\\a.dart:1:8 - Unused import: 'dart:io'. - unused_import\r\n" +
			"2 issues found.\r\n",
		Issues:  2,
		Rules:   2,
		Skipped: 2,
	}

	// SampleNoIssues is the output for a clean package
	SampleNoIssues = OutputSample{
		Name: "no issues",
		Output: `Analyzing clean_app...
No issues found!
`,
		Issues:  0,
		Rules:   0,
		Skipped: 2,
	}

	// OutputSamples lists every sample
	OutputSamples = []OutputSample{SampleDartAnalyze, SampleFlutterAnalyze, SampleWindowsPaths, SampleNoIssues}
)
