package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/botirk38/simetrics"
	"github.com/botirk38/simetrics/options"
	"github.com/botirk38/simetrics/similarity"
)

var (
	useTokens bool
	redisURL  string
	capacity  int
)

var rootCmd = &cobra.Command{
	Use:   "simetrics",
	Short: "CLI for string and numeric similarity metrics",
	Long:  `A command-line front end for the simetrics library: edit distance, Hamming distance, absolute difference, percent change, and population standard deviation.`,
}

var levenshteinCmd = &cobra.Command{
	Use:   "levenshtein <a> <b>",
	Short: "Compute the Levenshtein edit distance between two strings",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		comparer, err := newComparer()
		if err != nil {
			return err
		}
		defer comparer.Close()

		d, err := comparer.Distance(context.Background(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to compute distance: %w", err)
		}

		fmt.Println(d)
		return nil
	},
}

var hammingCmd = &cobra.Command{
	Use:   "hamming <a> <b>",
	Short: "Compute the Hamming distance between two strings",
	Long:  `Compute the Hamming distance between two strings. Comparison truncates to the shorter string; trailing characters of the longer one are ignored.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(similarity.HammingDistance(args[0], args[1]))
		return nil
	},
}

var hammingMaxCmd = &cobra.Command{
	Use:   "hamming-max <word>...",
	Short: "Compute the maximum pairwise Hamming distance of a word collection",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(similarity.MaxHammingDistance(args))
		return nil
	},
}

var absdiffCmd = &cobra.Command{
	Use:   "absdiff <a> <b>",
	Short: "Compute the absolute difference of two integers",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b, err := parseIntPair(args)
		if err != nil {
			return err
		}

		d, ok := similarity.AbsoluteDifference(a, b)
		if !ok {
			return fmt.Errorf("absolute difference is undefined for %d and %d (overflow)", a, b)
		}

		fmt.Println(d)
		return nil
	},
}

var percentChangeCmd = &cobra.Command{
	Use:   "percent-change <a> <b>",
	Short: "Compute the percent change from a to b",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b, err := parseIntPair(args)
		if err != nil {
			return err
		}

		p, ok := similarity.PercentChange(a, b)
		if !ok {
			return fmt.Errorf("percent change is undefined for baseline %d", a)
		}

		fmt.Printf("%g\n", p)
		return nil
	},
}

var stddevCmd = &cobra.Command{
	Use:   "stddev <number>...",
	Short: "Compute the population standard deviation of numbers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		numbers := make([]float64, 0, len(args))
		for _, arg := range args {
			x, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("invalid number %q: %w", arg, err)
			}
			numbers = append(numbers, x)
		}

		sd, ok := similarity.PopulationStdDev(numbers)
		if !ok {
			return fmt.Errorf("standard deviation is undefined for an empty collection")
		}

		fmt.Printf("%g\n", sd)
		return nil
	},
}

var closestCmd = &cobra.Command{
	Use:   "closest <target> <candidate>...",
	Short: "Find the candidate with the smallest edit distance to target",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		comparer, err := newComparer()
		if err != nil {
			return err
		}
		defer comparer.Close()

		match, err := comparer.Closest(context.Background(), args[0], args[1:])
		if err != nil {
			return fmt.Errorf("failed to rank candidates: %w", err)
		}

		fmt.Printf("%s\t%d\n", match.Candidate, match.Distance)
		return nil
	},
}

// newComparer builds a comparer from the global flags.
func newComparer() (*simetrics.Comparer, error) {
	opts := []options.Option{}
	if useTokens {
		opts = append(opts, options.WithTokenUnits())
	}
	if redisURL != "" {
		opts = append(opts, options.WithRedisBackend(redisURL))
	} else if capacity > 0 {
		opts = append(opts, options.WithLRUBackend(capacity))
	}

	comparer, err := simetrics.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create comparer: %w", err)
	}
	return comparer, nil
}

func parseIntPair(args []string) (int, int, error) {
	a, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid integer %q: %w", args[0], err)
	}
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid integer %q: %w", args[1], err)
	}
	return a, b, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&useTokens, "tokens", false, "compare BPE token units instead of characters")
	rootCmd.PersistentFlags().StringVar(&redisURL, "redis", "", "memoize results in Redis at this URL or address")
	rootCmd.PersistentFlags().IntVar(&capacity, "cache", 0, "memoize results in an in-process LRU of this capacity")

	rootCmd.AddCommand(levenshteinCmd)
	rootCmd.AddCommand(hammingCmd)
	rootCmd.AddCommand(hammingMaxCmd)
	rootCmd.AddCommand(absdiffCmd)
	rootCmd.AddCommand(percentChangeCmd)
	rootCmd.AddCommand(stddevCmd)
	rootCmd.AddCommand(closestCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
