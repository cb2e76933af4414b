package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/tourops/tourledger/cmd"
)

func main() {
	// Shell completion: 'COMP_INSTALL=1 tlg' installs it.
	completion().Complete("tlg")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	entry := map[string]complete.Predictor{
		"d": predict.Nothing,
		"H": predict.Nothing,
		"a": predict.Nothing,
		"c": predict.Set{"EUR", "USD"},
		"n": predict.Nothing,
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"in":       {Flags: entry},
			"out":      {Flags: entry},
			"transfer": {Flags: entry},
			"exchange": {Flags: entry},
			"confirm":  {},
			"attach":   {},
			"balances": {},
			"bookings": {},
			"suggest":  {},
			"alerts":   {},
			"log":      {},
			"meals":    {},
			"rate":     {},
			"fmt":      {},
			"topic":    {},
			"assist":   {},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file":   predict.Files("*.jsonl"),
			"holders-file":  predict.Files("*.jsonl"),
			"bookings-file": predict.Files("*.jsonl"),
			"rate-file":     predict.Files("*.json"),
		},
	}
}
