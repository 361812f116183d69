package cmd

import (
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/quillan/threadline/internal/config"
)

var directCmd = &cobra.Command{
	Use:   "direct",
	Short: "Manage direct mode (OpenAI-compatible endpoint, no agent server)",
	Long: `Direct mode talks straight to an OpenAI-compatible API instead of the
agent server. History stays in the client for the run; no thread is resumed.`,
}

var setupDirectCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure and enable direct mode",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Prompt for API Key
		apiKeyPrompt := promptui.Prompt{
			Label: "API Key",
			Mask:  '*',
		}
		cfg.Direct.APIKey, err = apiKeyPrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		// Prompt for Model
		modelPrompt := promptui.Prompt{
			Label:   "Model",
			Default: cfg.Direct.Model,
		}
		cfg.Direct.Model, err = modelPrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		// Prompt for Base URL (empty keeps the provider default)
		baseURLPrompt := promptui.Prompt{
			Label:   "Base URL (optional)",
			Default: cfg.Direct.BaseURL,
		}
		cfg.Direct.BaseURL, err = baseURLPrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		cfg.Mode = config.ModeDirect
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Println("Direct mode configured and enabled")
	},
}

var onDirectCmd = &cobra.Command{
	Use:   "on",
	Short: "Switch to direct mode",
	Run: func(cmd *cobra.Command, args []string) {
		switchMode(config.ModeDirect)
	},
}

var offDirectCmd = &cobra.Command{
	Use:   "off",
	Short: "Switch back to the agent server",
	Run: func(cmd *cobra.Command, args []string) {
		switchMode(config.ModeServer)
	},
}

func switchMode(mode string) {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if mode == config.ModeDirect && !cfg.DirectConfigured() {
		log.Fatalf("Direct mode is not configured. Run: threadline direct setup")
	}

	cfg.Mode = mode
	if err := cfg.Save(); err != nil {
		log.Fatalf("Failed to save config: %v", err)
	}

	fmt.Printf("Mode set to %s\n", mode)
}

func init() {
	directCmd.AddCommand(setupDirectCmd)
	directCmd.AddCommand(onDirectCmd)
	directCmd.AddCommand(offDirectCmd)
	rootCmd.AddCommand(directCmd)
}
