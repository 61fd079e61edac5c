package fingerprint

import (
	"fmt"
	"log/slog"
	"os"

	header "github.com/parsekit/goheader"
	"github.com/parsekit/goheader/cmd/utils"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Command represents the fingerprint command
var Command = &cobra.Command{
	Use:   "fingerprint",
	Short: "Prints a stable digest of one or many header dump file(s)",
	Long: `Prints a stable digest of the normalized header content of one or
many header dump file(s). Two dumps carrying the same headers produce the
same digest regardless of line order.`,
	Args: cobra.MinimumNArgs(1),
	Run:  fingerprint,
}

func init() {
	Command.Flags().IntP("threads", "t", 1, "Number of threads to use")
	Command.Flags().StringP("algorithm", "a", "blake3", "Digest algorithm: sha1, sha256, sha256-32 or blake3")
}

func fingerprint(cmd *cobra.Command, files []string) {
	algoName, _ := cmd.Flags().GetString("algorithm")
	algorithm, err := header.ParseDigestAlgorithm(algoName)
	if err != nil {
		slog.Error("invalid digest algorithm", "algorithm", algoName)
		os.Exit(1)
	}

	digests := make([]string, len(files))
	g := new(errgroup.Group)
	g.SetLimit(utils.GetThreadsFlag(cmd))

	for i, filepath := range files {
		i, filepath := i, filepath
		g.Go(func() error {
			digest, err := digestFile(filepath, algorithm)
			if err != nil {
				return fmt.Errorf("%s: %w", filepath, err)
			}
			digests[i] = digest
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Error("failed to fingerprint dump", "err", err.Error())
		os.Exit(1)
	}

	for i, filepath := range files {
		fmt.Printf("%s  %s\n", digests[i], filepath)
	}
}

func digestFile(filepath string, algorithm header.DigestAlgorithm) (string, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	store := header.NewHeaderStore()
	if err := store.ParseReader(f); err != nil {
		return "", err
	}
	return store.Fingerprint(algorithm)
}
