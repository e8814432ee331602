package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"cargoways/internal/api"
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
	flag.Parse()

	var engine *game.Engine
	if *configFlag != "" {
		cfg, err := config.Load(*configFlag)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		engine, err = game.FromConfig(cfg)
		if err != nil {
			log.Fatalf("failed to build world: %v", err)
		}
	} else {
		engine = game.New(*seedFlag, *nFlag, *cashFlag)
	}

	handler := api.New(engine)

	port := getPort()
	log.Printf("server listening on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "4000"
}
