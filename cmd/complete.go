package cmd

import (
	"flag"

	"github.com/etnz/pricetracker/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the commands registered in c.
//
// Running the main binary with COMP_INSTALL=1 installs it in the user's shell.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictors(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: predictors(fs)}
		if cmd.Name() == "topic" {
			sub.Args = predict.Set(topicNames())
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

// predictors returns a predictor for every flag in fs.
func predictors(fs *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch f.Name {
		case "data-file":
			m[f.Name] = predict.Files("*.csv")
		case "i":
			m[f.Name] = predict.Files("*.xlsx")
		case "currency":
			m[f.Name] = predict.Set{"NPR", "INR", "USD", "EUR"}
		case "top":
			m[f.Name] = predict.Set{"3", "5", "10"}
		default:
			if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
				m[f.Name] = predict.Nothing
			} else {
				m[f.Name] = predict.Something
			}
		}
	})
	return m
}

// topicNames lists the documentation topics.
func topicNames() []string {
	names := []string{"*"}
	if topics, err := docs.GetAllTopics(); err == nil {
		names = append(names, topics...)
	}
	return names
}
