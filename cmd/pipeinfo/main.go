// Command pipeinfo prints the configuration of the simulated LED
// controller pipelines.
//
// Usage:
//
//	pipeinfo [flags] [pipeline-name ...]
//
// Without arguments it prints info for all three pipelines.
//
// Examples:
//
//	pipeinfo lwos
//	pipeinfo -leds 320 -gamma 2.8 emotiscope sensorybridge
//	pipeinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-ledsim/pipeline"
)

type pipelineEntry struct {
	name  string
	build func(ledCount int, opts ...pipeline.Option) (pipeline.Pipeline, error)
}

var registry = []pipelineEntry{
	{"emotiscope", func(n int, opts ...pipeline.Option) (pipeline.Pipeline, error) {
		return pipeline.NewEmotiscope(n, opts...)
	}},
	{"lwos", func(n int, opts ...pipeline.Option) (pipeline.Pipeline, error) {
		return pipeline.NewLWOS(n, opts...)
	}},
	{"sensorybridge", func(n int, opts ...pipeline.Option) (pipeline.Pipeline, error) {
		return pipeline.NewSensoryBridge(n, opts...)
	}},
}

func main() {
	leds := flag.Int("leds", 160, "LED count")
	gamma := flag.Float64("gamma", 2.2, "gamma exponent")
	seed := flag.Uint64("seed", 1, "quantiser state seed")
	list := flag.Bool("list", false, "list available pipeline names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pipeinfo [flags] [pipeline-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the stage chain and configuration of the simulated\n")
		fmt.Fprintf(os.Stderr, "LED controller pipelines. Without arguments, prints all.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching pipelines\n")
		os.Exit(1)
	}

	opts := []pipeline.Option{
		pipeline.WithGamma(*gamma),
		pipeline.WithSeed(*seed),
	}

	printInfo(entries, *leds, opts)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []pipelineEntry {
	byName := make(map[string]pipelineEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []pipelineEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown pipeline %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printInfo(entries []pipelineEntry, leds int, opts []pipeline.Option) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Pipeline\tLEDs\tGamma\tBayer\tTemporal\tBrightness\tIncand. Mix\tSeed\tDescription\n")
	fmt.Fprintf(tw, "--------\t----\t-----\t-----\t--------\t----------\t-----------\t----\t-----------\n")

	for _, e := range entries {
		p, err := e.build(leds, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			os.Exit(1)
		}

		cfg := p.Config()
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%t\t%t\t%.2f\t%.2f\t%d\t%s\n",
			p.Name(),
			cfg.LEDCount,
			cfg.Gamma,
			cfg.BayerEnabled,
			cfg.TemporalEnabled,
			cfg.Brightness,
			cfg.IncandescentMix,
			cfg.Seed,
			p.Description(),
		)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
