package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/plazaterm/plaza/internal/errors"
	"github.com/plazaterm/plaza/internal/metadata"
)

var nowTimeout int

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Show the current track without playing",
	Long:  `Fetches the currently playing track from the station API and prints it.`,
	RunE:  runNow,
}

func init() {
	nowCmd.Flags().IntVar(&nowTimeout, "timeout", 10, "fetch timeout in seconds")
	rootCmd.AddCommand(nowCmd)
}

func runNow(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(nowTimeout)*time.Second)
	defer cancel()

	poller := metadata.NewPoller(cfg.Metadata, metadata.NewCell())
	np, ok := poller.FetchOnce(ctx)
	if !ok {
		return errors.WithSuggestion(errors.ErrNoMetadata,
			"Check your internet connection and try again")
	}

	if JSONOutput() {
		out, err := json.MarshalIndent(np, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(np.Display())
	if Verbose() && np.ArtURL != "" {
		fmt.Printf("  artwork: %s\n", np.ArtURL)
	}
	return nil
}
