package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	classmerge "github.com/reoring/classmerge"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "merge":
		mergeCmd(os.Args[2:], true)
	case "join":
		mergeCmd(os.Args[2:], false)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "classmerge CLI\n\nUsage:\n  classmerge merge [-config file.(json|yaml)] [-prefix p] [-cache n] CLASSES...\n  classmerge join CLASSES...\n\nNotes:\n  - With no CLASSES arguments, lines are read from stdin and processed one per line.")
}

func mergeCmd(args []string, resolve bool) {
	fs := flag.NewFlagSet("merge", flag.ExitOnError)
	var configPath string
	var prefix string
	var cacheCap int
	fs.StringVar(&configPath, "config", "", "JSON or YAML config patch extending the default vocabulary")
	fs.StringVar(&prefix, "prefix", "", "required class prefix; unprefixed classes pass through")
	fs.IntVar(&cacheCap, "cache", -1, "memo cache capacity override (0 disables; negative keeps the built-in capacity)")
	_ = fs.Parse(args)

	process := classmerge.Join
	if resolve {
		merger, err := buildMerger(configPath, prefix, cacheCap)
		if err != nil {
			fmt.Fprintln(os.Stderr, "classmerge:", err)
			os.Exit(1)
		}
		process = func(in ...any) string { return merger.Merge(in...) }
	}

	if fs.NArg() > 0 {
		fmt.Println(process(strings.Join(fs.Args(), " ")))
		return
	}
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		fmt.Println(process(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "classmerge:", err)
		os.Exit(1)
	}
}

func buildMerger(configPath, prefix string, cacheCap int) (*classmerge.Merger, error) {
	cfg := classmerge.DefaultConfig()
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}
		var patch classmerge.ConfigPatch
		switch ext := filepath.Ext(configPath); ext {
		case ".yaml", ".yml":
			patch, err = classmerge.ExtendFromYAML(data)
		default:
			patch, err = classmerge.ExtendFromJSON(data)
		}
		if err != nil {
			return nil, err
		}
		cfg = cfg.Apply(patch)
	}
	if prefix != "" {
		cfg.Prefix = prefix
	}
	if cacheCap >= 0 {
		cfg.CacheCapacity = cacheCap
	}
	return classmerge.New(cfg)
}
