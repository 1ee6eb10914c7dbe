package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/plazaterm/plaza/internal/metadata"
	"github.com/plazaterm/plaza/internal/tail"
)

var (
	tailInterval  int
	tailTimestamp bool
	tailNoEmoji   bool
	tailFormat    string
)

var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Follow track changes as they happen",
	Long: `Follows the station's broadcast and prints a line for each track change.

A custom format template can reference {{.Artist}}, {{.Title}}, {{.ArtURL}},
{{.Type}}, {{.Emoji}} and {{.Time}}.`,
	RunE: runTail,
}

func init() {
	tailCmd.Flags().IntVar(&tailInterval, "interval", 1, "poll interval in seconds")
	tailCmd.Flags().BoolVarP(&tailTimestamp, "timestamp", "t", false, "show timestamps")
	tailCmd.Flags().BoolVar(&tailNoEmoji, "no-emoji", false, "disable emoji output")
	tailCmd.Flags().StringVarP(&tailFormat, "format", "f", "", "custom format template")
	rootCmd.AddCommand(tailCmd)
}

func runTail(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cell := metadata.NewCell()
	poller := metadata.NewPoller(cfg.Metadata, cell)
	go poller.Run(ctx)

	watcher := tail.NewWatcher(cell, time.Duration(tailInterval)*time.Second)
	go func() {
		_ = watcher.Start(ctx)
	}()

	formatter := tail.NewFormatter(
		tail.WithEmoji(!tailNoEmoji),
		tail.WithTimestamp(tailTimestamp),
		tail.WithTemplate(tailFormat),
	)

	for event := range watcher.Events() {
		if JSONOutput() {
			out, err := json.Marshal(event.Current)
			if err != nil {
				continue
			}
			fmt.Println(string(out))
			continue
		}
		fmt.Println(formatter.Format(event))
	}

	return nil
}
