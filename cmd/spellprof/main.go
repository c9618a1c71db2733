package main

import (
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"spellprof/internal/batch"
	"spellprof/internal/checker"
	"spellprof/internal/customdict"
	"spellprof/internal/dictionary"
	"spellprof/internal/report"
	"spellprof/internal/tagger"
	"spellprof/pkg/options"
)

var (
	dictPath        string
	outPath         string
	redisAddr       string
	maxEditDistance int
	verbose         bool
)

var rootCmd = &cobra.Command{
	Use:   "spellprof <input-dir>",
	Short: "Batch spell checking and error profiling for plain-text files",
	Long: `spellprof corrects the spelling of every .txt file in a directory and
profiles the errors it found. The output is a single ZIP bundle with one
corrected copy per input file, a per-file summary CSV (word count, error
count, error rate) and a part-of-speech breakdown of all misspelled words.`,
	Args:         cobra.ExactArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&dictPath, "dict", "en.txt", "frequency dictionary, one \"word count\" pair per line")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "spelling_check_results.zip", "path of the result bundle")
	rootCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address of the custom dictionary (disabled when empty)")
	rootCmd.Flags().IntVar(&maxEditDistance, "max-edit-distance", options.DefaultOptions.MaxEditDistance, "maximum edit distance for suggestions")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if verbose {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	// All collaborator handles are built once, up front; nothing below this
	// block performs lazy initialization.
	dict, err := dictionary.Load(dictPath, options.WithMaxEditDistance(maxEditDistance))
	if err != nil {
		return err
	}
	log.Debug().Str("path", dictPath).Int("words", dict.Len()).Msg("dictionary loaded")

	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		words, err := customdict.New(client).All(cmd.Context())
		if err != nil {
			return fmt.Errorf("load custom words: %w", err)
		}
		dict.AddCustomWords(words)
		log.Debug().Int("words", len(words)).Msg("custom words merged")
	}

	docs, err := batch.LoadDir(args[0])
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		log.Warn().Str("dir", args[0]).Msg("no .txt files found")
		return nil
	}

	proc := batch.NewProcessor(checker.New(dict), tagger.New(), log)
	res, err := proc.Run(docs)
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create bundle: %w", err)
	}
	if err := report.WriteBundle(f, res.Documents, res.Profile); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close bundle: %w", err)
	}

	log.Info().
		Str("bundle", outPath).
		Int("files", len(res.Documents)).
		Int("misspellings", res.Profile.Total()).
		Msg("analysis complete")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
