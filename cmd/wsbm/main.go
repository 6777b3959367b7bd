package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gilchrisn/wsbm-sampler/pkg/validation"
	"github.com/gilchrisn/wsbm-sampler/pkg/wsbm"
)

func main() {
	// Define command-line flags
	input := flag.String("input", "", "Weight matrix file (CSV or JSON)")
	output := flag.String("output", "", "Output file for the posterior sample (JSON)")
	configFile := flag.String("config", "", "Optional configuration file")
	kMax := flag.Int("k_max", 8, "Truncation level: hard ceiling on the number of communities")
	eta0 := flag.Float64("eta0", 1.0, "Stick-breaking concentration parameter")
	iterations := flag.Int("iterations", 1000, "Number of MCMC iterations")
	seed := flag.Int64("seed", 0, "Random seed (0 = time-based)")
	store := flag.Bool("store", true, "Retain post-burn-in traces and the log-posterior series")

	flag.Usage = func() {
		fmt.Println("[wsbm-sampler]")
		fmt.Println("\tWeighted stochastic block model with stick-breaking prior over K")
		fmt.Println()
		fmt.Println("Options Description:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("./wsbm -input weights.csv -output posterior.json -k_max 8 -eta0 1.0 -iterations 1000")
	}

	flag.Parse()

	// Check required parameters
	if *input == "" || *output == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg := wsbm.NewConfig()
	if *configFile != "" {
		if err := cfg.LoadFromFile(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Set("sampler.k_max", *kMax)
	cfg.Set("sampler.eta0", *eta0)
	cfg.Set("sampler.iterations", *iterations)
	cfg.Set("sampler.store", *store)
	if *seed != 0 {
		cfg.Set("sampler.random_seed", *seed)
	}

	w, err := validation.LoadAndValidateMatrix(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid input: %v\n", err)
		os.Exit(1)
	}

	result, err := wsbm.Run(context.Background(), w, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sampler failed: %v\n", err)
		os.Exit(1)
	}

	if err := result.WriteJSON(*output); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write output: %v\n", err)
		os.Exit(1)
	}
}
