package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tmxparser "github.com/JiepengTan/tmx_parser"
	"github.com/JiepengTan/tmx_parser/atlas"
)

func main() {
	var inputFile = flag.String("input", "", "Input TMX file path")
	var outputFile = flag.String("output", "", "Output JSON file path")
	var gids = flag.String("gid", "", "Comma separated global tile ids to resolve")
	var verbose = flag.Bool("v", false, "Log debug output")
	flag.Parse()

	if *inputFile == "" {
		log.Fatal("Please provide input TMX file with -input flag")
	}
	if *verbose {
		tmxparser.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *outputFile == "" {
		ext := filepath.Ext(*inputFile)
		*outputFile = (*inputFile)[:len(*inputFile)-len(ext)] + "_map.json"
	}

	m, err := tmxparser.Parse(*inputFile)
	if err != nil {
		log.Fatalf("Error loading map: %v", err)
	}

	if *gids != "" {
		if err := resolve(m, *gids); err != nil {
			log.Fatalf("Error resolving gids: %v", err)
		}
	}

	jsonData, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling JSON: %v", err)
	}

	err = os.WriteFile(*outputFile, jsonData, 0644)
	if err != nil {
		log.Fatalf("Error writing output file: %v", err)
	}

	fmt.Printf("Successfully converted %s to %s\n", *inputFile, *outputFile)
}

func resolve(m *tmxparser.Map, list string) error {
	a, err := atlas.New(m)
	if err != nil {
		return err
	}
	for _, s := range strings.Split(list, ",") {
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
		if err != nil {
			return fmt.Errorf("bad gid %q: %w", s, err)
		}
		gid := uint32(n)
		ts, index, ok := m.TilesetFor(gid)
		if !ok {
			fmt.Printf("gid %d: no tileset\n", gid)
			continue
		}
		t, _ := a.Tile(gid)
		h, v, d := tmxparser.Flips(gid)
		fmt.Printf("gid %d: tileset %q tile %d rect %+v flips h=%t v=%t d=%t\n", gid, ts.Name, index, t.Rect, h, v, d)
	}
	return nil
}
