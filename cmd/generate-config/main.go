package main

import (
	"flag"
	"os"

	"gopkg.in/yaml.v2"
	"headsup-poker/internal/config"
)

var loaded = flag.Bool("loaded", false, "print the configuration after the file and environment overrides")

func main() {
	flag.Parse()

	cfg := config.DefaultConfig()
	if *loaded {
		cfg = config.Instance()
	}

	if err := yaml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
		panic(err)
	}
}
