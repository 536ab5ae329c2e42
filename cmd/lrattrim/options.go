package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/lrat-tools/lrattrim/logutil"
)

// version is set at link time, the way sqldef's cmd/*def.go binaries take
// theirs from a build-time ldflags variable rather than a version file.
var version = "0.1.0"

type cliOptions struct {
	Help      bool   `short:"h" long:"help" description:"print this command line option summary"`
	Force     bool   `short:"f" long:"force" description:"overwrite CNF alike second file with proof"`
	Forward   bool   `short:"S" long:"forward" description:"forward check all added clauses eagerly"`
	Quiet     bool   `short:"q" long:"quiet" description:"be quiet and do not print any messages"`
	Track     bool   `short:"t" long:"track" description:"track line information for clauses"`
	Verbose   bool   `short:"v" long:"verbose" description:"enable verbose messages"`
	Version   bool   `short:"V" long:"version" description:"print version only"`
	NoCheck   bool   `long:"no-check" description:"disable checking clauses (default without CNF)"`
	NoTrim    bool   `long:"no-trim" description:"disable trimming (assume all clauses used)"`
	StatsFile string `long:"stats-file" description:"write run statistics as YAML to this file" value-name:"path"`
	Log       bool   `short:"l" long:"log" description:"print all messages including internal diagnostics"`
}

func (o *cliOptions) verbosity() logutil.Verbosity {
	switch {
	case o.Quiet:
		return logutil.Quiet
	case o.Verbose, o.Log:
		return logutil.Verbose
	default:
		return logutil.Normal
	}
}

// parseOptions decodes the command line the way cmd/mysqldef/mysqldef.go's
// parseOptions does: a single flags.None-mode parser whose leftover
// positional arguments are the file list.
func parseOptions(args []string) (*cliOptions, []string) {
	var opts cliOptions
	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[options] <file> ..."
	files, err := parser.ParseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lrattrim: error: %s\n", err)
		os.Exit(1)
	}
	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}
	return &opts, files
}
