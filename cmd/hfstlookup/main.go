// Command hfstlookup is a thin, line-oriented front-end over the hfst
// runtime: open a transducer file once, then analyze either a single
// input given on the command line or one line at a time from stdin.
// It depends on the runtime only through Open, Lookup and SortByWeight.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/xyproto/env/v2"

	"github.com/Rootroo-ltd/pyhfst"
	"github.com/Rootroo-ltd/pyhfst/cache"
)

func main() {
	var (
		ranked  = flag.Bool("ranked", false, "sort each line's analyses by ascending weight")
		noCache = flag.Bool("no-cache", false, "disable per-input memoization")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] TRANSDUCER [INPUT]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	tr, err := hfst.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("open transducer: %v", err)
	}

	cacheSize := env.Int("HFSTLOOKUP_CACHE_SIZE", 4096)
	lookup := func(s string) []hfst.Analysis { return tr.Lookup(s) }
	if !*noCache && !env.Bool("HFSTLOOKUP_NO_CACHE") {
		c, err := cache.New(tr, cacheSize)
		if err != nil {
			log.Fatalf("build cache: %v", err)
		}
		lookup = c.Lookup
	}

	if flag.NArg() >= 2 {
		printAnalyses(flag.Arg(1), lookup(flag.Arg(1)), *ranked)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		printAnalyses(line, lookup(line), *ranked)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read stdin: %v", err)
	}
}

func printAnalyses(input string, results []hfst.Analysis, ranked bool) {
	if ranked {
		hfst.SortByWeight(results)
	}
	if len(results) == 0 {
		fmt.Printf("%s\t+?\n", input)
		return
	}
	for _, r := range results {
		fmt.Printf("%s\t%s\t%g\n", input, r.Output, r.Weight)
	}
}
