// Command wordlist inspects the embedded English word list: membership
// checks, enumeration by length, and index footprint statistics.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/standardbeagle/wordlist"
	"github.com/standardbeagle/wordlist/internal/version"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "wordlist",
		Usage:                  "query the embedded English word list",
		Version:                version.Version,
		UseShortOptionHandling: true,
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "test whether each argument is a valid word",
				ArgsUsage: "WORD [WORD...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "suppress output, report via exit code only",
					},
				},
				Action: checkCommand,
			},
			{
				Name:  "list",
				Usage: "print words, optionally filtered by length",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "len",
						Aliases: []string{"l"},
						Usage:   "only words of exactly this length",
					},
					&cli.IntFlag{
						Name:  "min",
						Usage: "minimum word length",
					},
					&cli.IntFlag{
						Name:  "max",
						Usage: "maximum word length",
					},
				},
				Action: listCommand,
			},
			{
				Name:  "stats",
				Usage: "show index footprint statistics",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "output statistics as JSON",
					},
				},
				Action: statsCommand,
			},
		},
	}
}

// checkCommand tests each argument. Exit code 0 when every argument is a
// word, 1 when any argument is not.
func checkCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("check requires at least one word argument", 2)
	}
	quiet := c.Bool("quiet")

	invalid := 0
	for _, arg := range c.Args().Slice() {
		ok := wordlist.Exists(arg)
		if !ok {
			invalid++
		}
		if !quiet {
			if ok {
				fmt.Printf("%s: ok\n", arg)
			} else {
				fmt.Printf("%s: not a word\n", arg)
			}
		}
	}
	if invalid > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func listCommand(c *cli.Context) error {
	if c.IsSet("len") && (c.IsSet("min") || c.IsSet("max")) {
		return cli.Exit("--len cannot be combined with --min/--max", 2)
	}

	seq := wordlist.Words()
	switch {
	case c.IsSet("len"):
		seq = wordlist.WordsByLen(c.Int("len"))
	case c.IsSet("min") || c.IsSet("max"):
		minLen := c.Int("min")
		maxLen := c.Int("max")
		if !c.IsSet("max") {
			maxLen = wordlist.IndexStats().MaxLen
		}
		seq = wordlist.WordsInRange(minLen, maxLen)
	}

	for w := range seq {
		fmt.Println(w)
	}
	return nil
}

// statsReport is the JSON shape for stats output.
type statsReport struct {
	Words         int                 `json:"words"`
	MinLen        int                 `json:"min_len"`
	MaxLen        int                 `json:"max_len"`
	BufferBytes   int                 `json:"buffer_bytes"`
	SlotBytes     int                 `json:"slot_bytes"`
	ResidentBytes int                 `json:"resident_bytes"`
	Buckets       []bucketStatsReport `json:"buckets"`
}

type bucketStatsReport struct {
	Len      int     `json:"len"`
	Count    int     `json:"count"`
	Capacity int     `json:"capacity"`
	Load     float64 `json:"load"`
}

func statsCommand(c *cli.Context) error {
	s := wordlist.IndexStats()

	if c.Bool("json") {
		report := statsReport{
			Words:         s.Words,
			MinLen:        s.MinLen,
			MaxLen:        s.MaxLen,
			BufferBytes:   s.BufferBytes,
			SlotBytes:     s.SlotBytes,
			ResidentBytes: s.BufferBytes + s.SlotBytes,
		}
		for _, b := range s.Buckets {
			report.Buckets = append(report.Buckets, bucketStatsReport(b))
		}
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Words:    %d (lengths %d-%d)\n", s.Words, s.MinLen, s.MaxLen)
	fmt.Printf("Resident: %d bytes (%d word buffer + %d slot tables)\n",
		s.BufferBytes+s.SlotBytes, s.BufferBytes, s.SlotBytes)
	fmt.Println()
	fmt.Printf("%6s %8s %9s %6s\n", "len", "words", "capacity", "load")
	for _, b := range s.Buckets {
		fmt.Printf("%6d %8d %9d %5.2f\n", b.Len, b.Count, b.Capacity, b.Load)
	}
	return nil
}
