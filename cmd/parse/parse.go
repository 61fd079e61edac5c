package parse

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	header "github.com/parsekit/goheader"
	"github.com/parsekit/goheader/cmd/utils"
	"github.com/remeh/sizedwaitgroup"
	"github.com/spf13/cobra"
)

// decodeCacheSize bounds the per-file decode memoization cache enabled by
// --cache.
const decodeCacheSize = 4096

// Command represents the parse command
var Command = &cobra.Command{
	Use:   "parse",
	Short: "Parses one or many header dump file(s)",
	Long: `Parses one or many header dump file(s) and prints the normalized
headers. Dumps compressed with gzip, bzip2, xz or zstd are decompressed
transparently.`,
	Args: cobra.MinimumNArgs(1),
	Run:  parse,
}

func init() {
	Command.Flags().IntP("threads", "t", 1, "Number of threads to use for parsing")
	Command.Flags().StringP("format", "f", "raw", "Output format: raw, json or flat")
	Command.Flags().Bool("cache", false, "Memoize decoded values for repeated header lines")
}

func parse(cmd *cobra.Command, files []string) {
	threads := utils.GetThreadsFlag(cmd)
	format, _ := cmd.Flags().GetString("format")
	useCache, _ := cmd.Flags().GetBool("cache")

	swg := sizedwaitgroup.New(threads)
	resultsChan := make(chan string)
	done := make(chan struct{})

	go func(c chan string) {
		for result := range c {
			fmt.Println(result)
		}
		close(done)
	}(resultsChan)

	for _, filepath := range files {
		swg.Add()
		go processFile(filepath, format, useCache, resultsChan, &swg)
	}

	swg.Wait()
	close(resultsChan)
	<-done
}

func processFile(filepath, format string, useCache bool, results chan<- string, swg *sizedwaitgroup.SizedWaitGroup) {
	defer swg.Done()

	f, err := os.Open(filepath)
	if err != nil {
		slog.Error("failed to open dump", "err", err.Error(), "file", filepath)
		return
	}
	defer f.Close()

	store := header.NewHeaderStore()
	store.SetLogger(slog.Default())
	if useCache {
		if err := store.EnableDecodeCache(decodeCacheSize); err != nil {
			slog.Error("failed to enable decode cache", "err", err.Error())
			return
		}
		defer store.Close()
	}

	if err := store.ParseReader(f); err != nil {
		slog.Error("failed to parse dump", "err", err.Error(), "file", filepath)
		return
	}

	out, err := render(store, format)
	if err != nil {
		slog.Error("failed to render dump", "err", err.Error(), "file", filepath)
		return
	}
	results <- out
}

func render(store *header.HeaderStore, format string) (string, error) {
	switch format {
	case "json":
		encoded, err := json.MarshalIndent(store.ToMap(true), "", "  ")
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	case "flat":
		flat := store.ClientHeaders()
		lines := make([]string, 0, len(flat))
		for _, name := range store.Names() {
			lines = append(lines, name+": "+flat[name])
		}
		return strings.Join(lines, "\n"), nil
	default:
		return store.ToRaw(), nil
	}
}
