package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/quickaccount/reportdsl"
)

// cmdDump parses one file and writes the span forest as indented JSON.
// On a parse failure the diagnostic goes to stderr as usual; with --json
// the structured diagnostic is written to stdout instead, for tooling.
func (c *cli) cmdDump(args []string) int {
	jsonErrors := false
	var files []string
	for _, arg := range args {
		if arg == "--json" {
			jsonErrors = true
			continue
		}
		files = append(files, arg)
	}

	if len(files) != 1 {
		printError("dump requires exactly one file")
		return exitError
	}

	data, err := os.ReadFile(files[0])
	if err != nil {
		printError("cannot read %s: %v", files[0], err)
		return exitError
	}

	spans, err := reportdsl.Parse(string(data), c.parseOptions()...)
	if err != nil {
		if jsonErrors {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if encErr := enc.Encode(err); encErr != nil {
				printError("encoding diagnostic: %v", encErr)
				return exitError
			}
		} else {
			fmt.Fprintf(os.Stderr, "%s:%s\n", files[0], err)
		}
		return exitParseError
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(spans); err != nil {
		printError("encoding spans: %v", err)
		return exitError
	}
	return exitOK
}
