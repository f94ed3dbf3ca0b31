// Command modelpack converts a JSON factor dump exported by the offline
// trainer into the gob artifact the API loads at startup.
//
// Usage:
//
//	modelpack -in factors.json -out model_svd.gob
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"finpro/internal/scoring"
)

// factorEntry is one user or item in the trainer's JSON export.
type factorEntry struct {
	Bias    float64   `json:"bias"`
	Factors []float64 `json:"factors"`
}

// factorDump mirrors the JSON layout written by the offline trainer.
type factorDump struct {
	Name       string                 `json:"name"`
	GlobalMean float64                `json:"global_mean"`
	MinRating  float64                `json:"min_rating"`
	MaxRating  float64                `json:"max_rating"`
	Users      map[string]factorEntry `json:"users"`
	Items      map[string]factorEntry `json:"items"`
}

func main() {
	inPath := flag.String("in", "factors.json", "path to the trainer's JSON factor dump")
	outPath := flag.String("out", "model_svd.gob", "path to write the packed model artifact")
	flag.Parse()

	if err := run(*inPath, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "modelpack: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read factor dump: %w", err)
	}

	var dump factorDump
	if err := json.Unmarshal(data, &dump); err != nil {
		return fmt.Errorf("parse factor dump: %w", err)
	}

	artifact := buildArtifact(&dump)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create artifact file: %w", err)
	}
	defer out.Close()

	if err := scoring.Encode(out, artifact); err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}

	fmt.Printf("packed %d users and %d items into %s\n",
		len(artifact.UserIndex), len(artifact.ItemIndex), outPath)
	return nil
}

// buildArtifact lays the map-based dump out as index-aligned slices.
// Keys are sorted so repeated packing of the same dump is byte-identical.
func buildArtifact(dump *factorDump) *scoring.Artifact {
	artifact := &scoring.Artifact{
		Name:        dump.Name,
		GlobalMean:  dump.GlobalMean,
		MinRating:   dump.MinRating,
		MaxRating:   dump.MaxRating,
		UserIndex:   make(map[string]int, len(dump.Users)),
		ItemIndex:   make(map[string]int, len(dump.Items)),
		UserFactors: make([][]float64, 0, len(dump.Users)),
		ItemFactors: make([][]float64, 0, len(dump.Items)),
		UserBias:    make([]float64, 0, len(dump.Users)),
		ItemBias:    make([]float64, 0, len(dump.Items)),
	}

	for _, id := range sortedKeys(dump.Users) {
		entry := dump.Users[id]
		artifact.UserIndex[id] = len(artifact.UserFactors)
		artifact.UserFactors = append(artifact.UserFactors, entry.Factors)
		artifact.UserBias = append(artifact.UserBias, entry.Bias)
	}
	for _, id := range sortedKeys(dump.Items) {
		entry := dump.Items[id]
		artifact.ItemIndex[id] = len(artifact.ItemFactors)
		artifact.ItemFactors = append(artifact.ItemFactors, entry.Factors)
		artifact.ItemBias = append(artifact.ItemBias, entry.Bias)
	}

	return artifact
}

func sortedKeys(m map[string]factorEntry) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
