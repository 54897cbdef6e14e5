package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/cheynewallace/tabby"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"

	"github.com/seqspell/internal/barcode"
	"github.com/seqspell/internal/config"
	"github.com/seqspell/internal/db"
	"github.com/seqspell/internal/debug"
	"github.com/seqspell/internal/scan"
	"github.com/seqspell/internal/web"
	"github.com/seqspell/internal/whitelist"
)

var (
	whitelistPath  string
	whitelistTable string
	maxDist        int
	partitionWidth int
	verbose        bool
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: could not load .env: %v", err)
	}

	rootCmd := &cobra.Command{
		Use:   "seqspell",
		Short: "Sequencing barcode correction",
		Long:  `Corrects noisy sequencing barcodes against a known whitelist, tolerating bounded substitution and indel errors`,
	}

	rootCmd.PersistentFlags().StringVarP(&whitelistPath, "whitelist", "w", config.GetEnv("SEQSPELL_WHITELIST", ""), "barcode whitelist file (optionally gzipped)")
	rootCmd.PersistentFlags().StringVar(&whitelistTable, "table", config.GetEnv("SEQSPELL_TABLE", ""), "load whitelist from this postgres table instead of a file")
	rootCmd.PersistentFlags().IntVarP(&maxDist, "max-dist", "d", config.GetEnvInt("SEQSPELL_MAX_DIST", 2), "maximum tolerated edit distance")
	rootCmd.PersistentFlags().IntVarP(&partitionWidth, "partition-width", "p", config.GetEnvInt("SEQSPELL_PARTITION_WIDTH", 16), "index partition width (performance only)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", config.GetEnvBool("SEQSPELL_VERBOSE", false), "enable debug output")

	rootCmd.AddCommand(createCheckCmd())
	rootCmd.AddCommand(createCorrectCmd())
	rootCmd.AddCommand(createScanCmd())
	rootCmd.AddCommand(createStatsCmd())
	rootCmd.AddCommand(createServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// buildSet constructs the barcode set from the configured whitelist source
func buildSet() (*barcode.Set, error) {
	defer debug.Timing(verbose, "building barcode set")()

	if whitelistTable != "" {
		conn, err := db.NewConnection()
		if err != nil {
			return nil, err
		}
		defer conn.Close()

		barcodes, err := whitelist.FromDB(conn.DB, whitelistTable)
		if err != nil {
			return nil, err
		}
		return barcode.New(barcodes, maxDist, partitionWidth)
	}

	if whitelistPath == "" {
		return nil, fmt.Errorf("either --whitelist or --table is required")
	}
	return barcode.Load(whitelistPath, maxDist, partitionWidth)
}

// createCheckCmd creates a diagnostic command: one query against the whitelist
func createCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check QUERY",
		Short: "Look up a single query and print the closest barcodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := buildSet()
			if err != nil {
				return err
			}

			debug.Output(verbose, "Searching for %s", args[0])
			suggestions := set.Lookup(args[0])
			if len(suggestions) == 0 {
				fmt.Println("No barcode within range")
				return nil
			}

			t := tabby.New()
			t.AddHeader("BARCODE", "QUERY", "DISTANCE")
			for _, sg := range suggestions {
				t.AddLine(sg.Term, sg.Query, sg.Distance)
			}
			t.Print()
			return nil
		},
	}
}

// createCorrectCmd creates the bulk correction command
func createCorrectCmd() *cobra.Command {
	var queriesFile string
	var mode string

	correctCmd := &cobra.Command{
		Use:   "correct",
		Short: "Correct queries from a file or stdin",
		Long:  `Reads one query per line and writes "barcode<TAB>query<TAB>distance" for every match. Modes: single (closest match per query), batch (all queries resolved together), substrings (scan each query for an embedded barcode)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := buildSet()
			if err != nil {
				return err
			}

			fh, err := xopen.Ropen(queriesFile)
			if err != nil {
				return fmt.Errorf("opening queries %s: %w", queriesFile, err)
			}
			defer fh.Close()

			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()

			emit := func(suggestions []barcode.Suggestion) {
				for _, sg := range suggestions {
					fmt.Fprintf(out, "%s\t%s\t%d\n", sg.Term, sg.Query, sg.Distance)
				}
			}

			scanner := bufio.NewScanner(fh)
			switch mode {
			case "single":
				for scanner.Scan() {
					emit(set.Lookup(scanner.Text()))
				}
			case "substrings":
				for scanner.Scan() {
					emit(set.LookupSubstrings(scanner.Text()))
				}
			case "batch":
				queries := mapset.NewThreadUnsafeSet[string]()
				for scanner.Scan() {
					queries.Add(scanner.Text())
				}
				emit(set.LookupBatch(queries))
			default:
				return fmt.Errorf("unknown mode %q", mode)
			}
			return scanner.Err()
		},
	}

	correctCmd.Flags().StringVarP(&queriesFile, "queries", "q", "-", "query file, - for stdin")
	correctCmd.Flags().StringVarP(&mode, "mode", "m", "single", "lookup mode: single, batch or substrings")

	return correctCmd
}

// createScanCmd creates the FASTQ scanning command
func createScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan READS",
		Short: "Scan FASTQ/FASTA reads for embedded whitelist barcodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := buildSet()
			if err != nil {
				return err
			}

			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()

			defer debug.Timing(verbose, "scanning reads")()
			return scan.File(set, args[0], func(r scan.Result) error {
				return scan.WriteTSV(out, r)
			})
		},
	}
}

// createStatsCmd creates the dictionary statistics command
func createStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print whitelist and index statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := buildSet()
			if err != nil {
				return err
			}

			stats := set.Stats()
			t := tabby.New()
			t.AddLine("Barcodes", stats.TermCount)
			t.AddLine("Barcode length", set.BarcodeLength())
			t.AddLine("Max distance", set.MaxDist())
			t.AddLine("Partition width", set.PartitionWidth())
			t.AddLine("Partitions", stats.PartitionCount)
			t.Print()
			return nil
		},
	}
}

// createServeCmd creates the HTTP API command
func createServeCmd() *cobra.Command {
	var configFile string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the correction API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := web.DefaultConfig()
			if configFile != "" {
				loaded, err := web.LoadConfig(configFile)
				if err != nil {
					return fmt.Errorf("loading config %s: %w", configFile, err)
				}
				cfg = loaded
			} else {
				cfg.Whitelist.Path = whitelistPath
				cfg.Whitelist.MaxDist = maxDist
				cfg.Whitelist.PartitionWidth = partitionWidth
			}

			server, err := web.NewServer(cfg)
			if err != nil {
				return err
			}
			return server.Start()
		},
	}

	serveCmd.Flags().StringVarP(&configFile, "config", "c", "", "server config JSON file")

	return serveCmd
}
