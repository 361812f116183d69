package cmd

import (
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/quillan/threadline/internal/config"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Manage the agent server endpoint",
}

var showServerCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configured server URL",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fmt.Printf("Server URL: %s\n", cfg.EffectiveServerURL())
		fmt.Printf("Mode: %s\n", cfg.Mode)
	},
}

var setServerCmd = &cobra.Command{
	Use:   "set [url]",
	Short: "Set the server base URL",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var url string
		if len(args) > 0 {
			url = args[0]
		} else {
			prompt := promptui.Prompt{
				Label:   "Server URL",
				Default: cfg.EffectiveServerURL(),
			}
			url, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		cfg.ServerURL = url
		cfg.Mode = config.ModeServer
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Server URL set to %s\n", url)
	},
}

func init() {
	serverCmd.AddCommand(showServerCmd)
	serverCmd.AddCommand(setServerCmd)
	rootCmd.AddCommand(serverCmd)
}
