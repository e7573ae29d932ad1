/*
Package runner implements the batch pipeline behind the command-line tools:
read a description, validate it, optionally synthesize its regular
expression, and write a report.

Reports are rendered by pluggable handlers. TextHandler reproduces the
plain-text report of the classic tools (optionally coloured or rendered as
markdown); JSONHandler emits one JSON object per report.

# Usage

	r := runner.New(
		runner.WithEngine(fsa.New()),
		runner.WithMode(runner.ModeRegex),
		runner.WithHandler(runner.NewJSONHandler()),
	)

	if err := r.Run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
*/
package runner
