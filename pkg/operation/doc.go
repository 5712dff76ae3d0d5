// Package operation applies a natural-language command to many files at once.
//
//	+-------------+
//	|    Glob     |
//	| (doublestar)|
//	+------+------+
//	       |
//	+------+------+
//	|   Replace   |
//	| (per file)  |
//	+------+------+
//	       |
//	+------+------+
//	|  Write/Diff |
//	+-------------+
//
// 🎯 Purpose:
// - Expands glob patterns below a root directory
// - Resolves the command once and runs its rules against every matched file
// - Writes changed files back, or reports a diff in dry-run mode
//
// 🔄 Flow:
// 1. Parse the command into replacement rules
// 2. Match files with doublestar patterns
// 3. Replace text in each file through a text.TextReplacer
// 4. Log every file through pkg/log
//
// ⚡ Notes:
// - Files containing a NUL byte in their first block are treated as binary and skipped
// - File permissions are preserved on write
// - A failing file does not stop the batch; the failures are reported together
//
// 🔍 Example:
//
//	op, err := operation.NewApplyOperation(operation.Options{
//		Interpreter: command.New(vocab.Default()),
//		Command:     "replace colour to color",
//		Root:        ".",
//		Patterns:    []string{"docs/**/*.md"},
//		DryRun:      true,
//	})
//	if err != nil {
//		return err
//	}
//	err = operation.NewRunner(nil, false, 0).Run(ctx, op)
package operation
