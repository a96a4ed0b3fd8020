package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/procost/evm/cmd"
)

func main() {
	// Shell completion: exits early when invoked by the completion hook.
	completion().Complete("evmr")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	csvFiles := predict.Files("*.csv")
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"report": {Flags: map[string]complete.Predictor{
				"i":        csvFiles,
				"o":        csvFiles,
				"bac":      predict.Nothing,
				"currency": predict.Nothing,
				"json":     predict.Files("*.json"),
			}},
			"check": {Flags: map[string]complete.Predictor{
				"i":        csvFiles,
				"currency": predict.Nothing,
			}},
			"topic": {},
		},
	}
}
