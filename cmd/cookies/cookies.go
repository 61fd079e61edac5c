package cookies

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	header "github.com/parsekit/goheader"
	"github.com/spf13/cobra"
)

// Command represents the cookies command
var Command = &cobra.Command{
	Use:   "cookies",
	Short: "Extracts the cookie pairs from one or many header dump file(s)",
	Long:  `Extracts the cookie pairs from one or many header dump file(s)`,
	Args:  cobra.MinimumNArgs(1),
	Run:   cookies,
}

func init() {
	Command.Flags().Bool("pairs", false, "Output cookies as JSON pairs instead of a Cookie header value")
}

func cookies(cmd *cobra.Command, files []string) {
	asPairs, _ := cmd.Flags().GetBool("pairs")

	for _, filepath := range files {
		f, err := os.Open(filepath)
		if err != nil {
			slog.Error("failed to open dump", "err", err.Error(), "file", filepath)
			continue
		}

		store := header.NewHeaderStore()
		err = store.ParseReader(f)
		f.Close()
		if err != nil {
			slog.Error("failed to parse dump", "err", err.Error(), "file", filepath)
			continue
		}

		if asPairs {
			encoded, err := json.MarshalIndent(store.CookieMap(), "", "  ")
			if err != nil {
				slog.Error("failed to render cookies", "err", err.Error(), "file", filepath)
				continue
			}
			fmt.Println(string(encoded))
			continue
		}
		fmt.Println(store.CookieHeader())
	}
}
