package main

import (
	"fmt"
	"os"

	"github.com/quickaccount/reportdsl"
)

// cmdCheck parses each file and reports the first grammar violation found.
// All files are checked even when an earlier one fails; the exit code
// reflects the worst outcome.
func (c *cli) cmdCheck(args []string) int {
	if len(args) == 0 {
		printError("check requires at least one file")
		return exitError
	}

	opts := c.parseOptions()
	rc := exitOK
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			printError("cannot read %s: %v", path, err)
			rc = exitError
			continue
		}

		spans, err := reportdsl.Parse(string(data), opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s:%s\n", path, err)
			if rc == exitOK {
				rc = exitParseError
			}
			continue
		}

		ranges := 0
		for _, span := range spans {
			ranges += span.RangeCount()
		}
		fmt.Printf("%s: ok (%d spans, %d ranges)\n", path, len(spans), ranges)
	}
	return rc
}
