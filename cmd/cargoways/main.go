package main

import (
	"bufio"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"os"

	"cargoways/internal/config"
	"cargoways/internal/game"
)

func main() {
	var (
		seedFlag   = flag.Uint64("seed", 0, "seed for deterministic world generation")
		nFlag      = flag.Int("n", 0, "number of airports in the generated world")
		cashFlag   = flag.Float64("c", 1_000_000, "starting cash for the player")
		configFlag = flag.String("config", "", "path to a world config file")
	)
	seedSet := false
	nSet := false
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			seedSet = true
		case "n":
			nSet = true
		}
	})

	engine, err := initGame(*configFlag, *seedFlag, seedSet, *nFlag, nSet, *cashFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	repl(engine)
}

// initGame builds the engine from flags: a config file, an explicit
// (seed, n) pair, or a randomly drawn world when neither is given.
func initGame(configPath string, seed uint64, seedSet bool, n int, nSet bool, cash float64) (*game.Engine, error) {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		return game.FromConfig(cfg)
	}
	switch {
	case seedSet && nSet:
		return game.New(seed, n, cash), nil
	case !seedSet && !nSet:
		return game.New(randomSeed(), 0, cash), nil
	default:
		return nil, errors.New("both --seed and --n must be specified")
	}
}

func randomSeed() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b[:])
}

func repl(engine *game.Engine) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()

		output, err := engine.Execute(line)
		switch {
		case errors.Is(err, game.ErrExit):
			return
		case err != nil:
			fmt.Println(err)
		case output != "":
			fmt.Print(output)
		}
		for _, msg := range engine.DrainLog() {
			fmt.Println(msg)
		}

		fmt.Print("> ")
	}
}
