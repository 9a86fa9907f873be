// FrontierCore is a deterministic, data-driven generator and explorer for
// frontier game worlds.
// Usage: frontiercore [--version] [--plain] [--seed <n>] [--regions <n>] [--script <file>] <pack_directory>
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nathoo/frontiercore/cli"
	"github.com/nathoo/frontiercore/engine/gen"
	"github.com/nathoo/frontiercore/engine/state"
	"github.com/nathoo/frontiercore/explore"
	"github.com/nathoo/frontiercore/loader"
	"github.com/nathoo/frontiercore/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	seed := int64(0)
	seedSet := false
	regions := 3
	var packDir string
	var scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("frontiercore %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--seed":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--seed requires a number\n")
				os.Exit(1)
			}
			i++
			n, err := strconv.ParseInt(args[i], 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid seed %q\n", args[i])
				os.Exit(1)
			}
			seed = n
			seedSet = true
		case "--regions":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--regions requires a number\n")
				os.Exit(1)
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 1 {
				fmt.Fprintf(os.Stderr, "invalid region count %q\n", args[i])
				os.Exit(1)
			}
			regions = n
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		default:
			if packDir == "" {
				packDir = args[i]
			}
		}
	}

	if packDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: frontiercore [--version] [--plain] [--seed <n>] [--regions <n>] [--script <file>] <pack_directory>\n")
		os.Exit(1)
	}

	// Load and compile the content pack.
	pack, err := loader.Load(packDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading pack: %v\n", err)
		os.Exit(1)
	}

	if !seedSet {
		seed = time.Now().UnixNano()
	}

	opts := gen.Options{Regions: regions, PlayerLevel: 1, GameHour: 12}
	world, ok := gen.World(pack, seed, opts)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: pack %q defines no region templates\n", pack.Name)
		os.Exit(1)
	}

	player := state.New(opts.PlayerLevel, opts.GameHour)
	session := explore.New(pack, &world, player)

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		fmt.Printf("%s v%s by %s\n\n", pack.Name, pack.Version, pack.Author)
		c := cli.New(session, pack)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		fmt.Printf("%s v%s by %s\n\n", pack.Name, pack.Version, pack.Author)
		cli.New(session, pack).Run()
		return
	}

	if err := tui.Run(session, pack); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
