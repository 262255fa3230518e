package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds everything parsed from the command line. Flags left unset
// fall back to the config file.
type cliFlags struct {
	config     string
	dbPath     string
	order      int
	seed       uint64
	file       string
	corpus     string
	importName string
	dump       bool
	list       bool

	set *flag.FlagSet
}

func parseFlags(args []string, stderr io.Writer) (*cliFlags, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("kgram", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVarP(&f.config, "config", "c", "./kgram.json", "path to the JSON config file")
	fs.StringVar(&f.dbPath, "db", "", "corpus database path (overrides config)")
	fs.IntVarP(&f.order, "order", "k", 0, "model order K (overrides config)")
	fs.Uint64Var(&f.seed, "seed", 0, "seed for reproducible sampling (overrides config)")
	fs.StringVarP(&f.file, "file", "f", "", "build the model from this file")
	fs.StringVar(&f.corpus, "corpus", "", "build the model from this stored corpus text")
	fs.StringVar(&f.importName, "import", "", "store --file in the corpus under this name and exit")
	fs.BoolVar(&f.dump, "dump", false, "print the full model mapping")
	fs.BoolVar(&f.list, "list", false, "list stored corpus texts and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	f.set = fs
	return f, nil
}

// changed reports whether the named flag was given explicitly.
func (f *cliFlags) changed(name string) bool {
	return f.set.Changed(name)
}
