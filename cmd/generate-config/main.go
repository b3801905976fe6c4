package main

import (
	"flag"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"ultimateholdem/internal/config"
)

var env = flag.Bool("env", false, "list the environment variables instead of printing YAML")

func main() {
	flag.Parse()

	cfg := config.DefaultConfig()
	if *env {
		if err := envconfig.Usage("uth", &cfg); err != nil {
			panic(err)
		}

		return
	}

	if err := yaml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
		panic(err)
	}
}
