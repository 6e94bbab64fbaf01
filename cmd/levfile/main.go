// The levfile command inspects LVL scene archives.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/levtools/levfile/lvl"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "levfile",
		Short:         "Inspect LVL scene archives",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	statCmd := &cobra.Command{
		Use:   "stat [INPUT]",
		Short: "Print JSON statistics for an archive",
		Long: `Reads an LVL archive from INPUT and writes statistics for it to stdout
as JSON. If INPUT is "-" or unspecified, then stdin is used. Warnings and
errors are written to stderr.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runStat,
	}

	dumpCmd := &cobra.Command{
		Use:   "dump [INPUT]",
		Short: "Print a readable rendering of an archive's chunks",
		Long: `Reads an LVL archive from INPUT and writes a readable representation of
its chunks to stdout. If INPUT is "-" or unspecified, then stdin is used.
Warnings and errors are written to stderr.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDump,
	}

	rootCmd.AddCommand(statCmd, dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	in, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return in, nil
}

// Stats summarizes the content of one archive.
type Stats struct {
	// Number of chunks overall.
	ChunkCount int

	// Number of chunks per chunk type.
	Chunks map[string]int

	// Number of material records, and how many of their texture slots are
	// occupied.
	Materials     int
	TexturedSlots int

	// Number of mesh part records and their total vertex count.
	Parts    int
	Vertices int

	// World content, if a world chunk is present.
	HasWorld bool
	Floors   int `json:",omitempty"`
	Zones    int `json:",omitempty"`
}

func runStat(cmd *cobra.Command, args []string) error {
	in, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	f, warn, err := lvl.Decoder{}.Decode(in)
	if warn != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("warning: %w", warn))
	}
	if err != nil {
		return err
	}

	stats := Stats{
		ChunkCount: len(f.Chunks),
		Chunks:     map[string]int{},
	}
	for _, c := range f.Chunks {
		stats.Chunks[c.Type().String()]++
	}
	s, warn := f.Scene()
	if warn != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("warning: %w", warn))
	}
	stats.Materials = len(s.Materials)
	for _, m := range s.Materials {
		for _, t := range m.Textures {
			if t != nil {
				stats.TexturedSlots++
			}
		}
	}
	stats.Parts = len(s.Parts)
	for _, p := range s.Parts {
		stats.Vertices += len(p.Vertices)
	}
	if s.World != nil {
		stats.HasWorld = true
		stats.Floors = len(s.World.Floors)
		stats.Zones = int(s.World.ZoneCount)
	}

	je := json.NewEncoder(os.Stdout)
	je.SetIndent("", "\t")
	return je.Encode(stats)
}

func runDump(cmd *cobra.Command, args []string) error {
	in, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	warn, err := lvl.Decoder{}.Dump(os.Stdout, in)
	if warn != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("warning: %w", warn))
	}
	return err
}
