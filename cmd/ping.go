package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/quillan/threadline/internal/config"
	"github.com/quillan/threadline/internal/transport"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the agent server is reachable",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		url := cfg.EffectiveServerURL()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := transport.NewClient(url).Ping(ctx); err != nil {
			log.Fatalf("%s is not responding: %v", url, err)
		}
		fmt.Printf("%s is up\n", url)
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
