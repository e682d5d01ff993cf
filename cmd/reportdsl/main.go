// Command reportdsl is a CLI tool for checking and dumping report
// definition files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/quickaccount/reportdsl"
)

// Exit codes.
const (
	exitOK         = 0 // success
	exitError      = 1 // user error or I/O failure
	exitParseError = 2 // a definition failed to parse
)

const usage = `reportdsl - report definition parser

Usage:
  reportdsl <command> [options] [arguments]

Commands:
  check   Parse definition files and report the first error in each
  dump    Output a parsed definition as JSON
  version Show version

Common options:
  -d, --max-depth N  Override the block nesting limit
  -v, --verbose      Enable debug logging
  -vv                Enable trace logging (implies -v)
  -h, --help         Show help

Examples:
  reportdsl check annual-report.qad
  reportdsl dump -v annual-report.qad
`

type cli struct {
	verbose  int
	maxDepth int
	helpFlag bool
}

func main() {
	os.Exit(run())
}

func run() int {
	var c cli
	args := os.Args[1:]
	var cmdArgs []string
	var cmd string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			c.helpFlag = true
		case arg == "-v" || arg == "--verbose":
			if c.verbose < 1 {
				c.verbose = 1
			}
		case arg == "-vv":
			c.verbose = 2
		case arg == "-d" || arg == "--max-depth":
			if i+1 < len(args) {
				i++
				if _, err := fmt.Sscanf(args[i], "%d", &c.maxDepth); err != nil {
					printError("invalid max depth: %s", args[i])
					return exitError
				}
			}
		case len(arg) > 0 && arg[0] == '-':
			cmdArgs = append(cmdArgs, arg)
		default:
			if cmd == "" {
				cmd = arg
			} else {
				cmdArgs = append(cmdArgs, arg)
			}
		}
	}

	if c.helpFlag && cmd == "" {
		fmt.Fprint(os.Stdout, usage)
		return exitOK
	}

	if cmd == "" {
		fmt.Fprint(os.Stderr, usage)
		return exitError
	}

	switch cmd {
	case "check":
		return c.cmdCheck(cmdArgs)
	case "dump":
		return c.cmdDump(cmdArgs)
	case "version":
		printVersion()
		return exitOK
	case "help":
		fmt.Fprint(os.Stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		return exitError
	}
}

func (c *cli) setupLogger() *slog.Logger {
	if c.verbose == 0 {
		return nil
	}
	level := slog.LevelDebug
	if c.verbose >= 2 {
		level = reportdsl.LevelTrace
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func (c *cli) parseOptions() []reportdsl.ParseOption {
	var opts []reportdsl.ParseOption
	if logger := c.setupLogger(); logger != nil {
		opts = append(opts, reportdsl.WithLogger(logger))
	}
	if c.maxDepth > 0 {
		opts = append(opts, reportdsl.WithMaxDepth(c.maxDepth))
	}
	return opts
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("reportdsl %s\n", version)
}

func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
