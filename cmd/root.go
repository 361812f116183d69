package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillan/threadline/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "threadline",
	Short: "Terminal client for a tool-calling agent server",
	Long: `Threadline is a terminal chat client for a tool-calling agent server.
It resumes the previous conversation across runs and reveals replies as they
would have streamed, badging replies produced with the aid of a tool.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: run the chat application
		application, err := app.NewApplication()
		if err != nil {
			log.Fatalf("Failed to create application: %v", err)
		}
		defer application.Stop()

		if err := application.Start(); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}
