package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/quillan/threadline/internal/config"
	"github.com/quillan/threadline/internal/session"
)

var threadCmd = &cobra.Command{
	Use:   "thread",
	Short: "Inspect or reset the persisted conversation",
}

var showThreadCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current thread id",
	Run: func(cmd *cobra.Command, args []string) {
		id, err := threadManager().Load()
		if err != nil {
			log.Fatalf("Failed to load session: %v", err)
		}

		if id == "" {
			fmt.Println("No conversation in progress")
			return
		}
		fmt.Printf("Thread: %s\n", id)
	},
}

var resetThreadCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the current thread so the next chat starts fresh",
	Run: func(cmd *cobra.Command, args []string) {
		if err := threadManager().Save(""); err != nil {
			log.Fatalf("Failed to reset session: %v", err)
		}
		fmt.Println("Conversation reset")
	},
}

func threadManager() *session.Manager {
	statePath, err := config.StatePath()
	if err != nil {
		log.Fatalf("Failed to resolve state path: %v", err)
	}
	return session.NewManager(session.NewFileStore(statePath))
}

func init() {
	threadCmd.AddCommand(showThreadCmd)
	threadCmd.AddCommand(resetThreadCmd)
	rootCmd.AddCommand(threadCmd)
}
