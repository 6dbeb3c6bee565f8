package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/motibot/motibot/internal/config"
	"github.com/motibot/motibot/internal/email"
	"github.com/motibot/motibot/internal/logger"
	"github.com/motibot/motibot/internal/quote"
	"github.com/motibot/motibot/internal/service"
)

var toEmail string

var rootCmd = &cobra.Command{
	Use:   "motictl",
	Short: "Operations tool for motibot",
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Generate a quote and send it once, without starting the server",
	RunE:  runSend,
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the email for a sample quote to stdout, no network calls",
	RunE:  runPreview,
}

func init() {
	sendCmd.Flags().StringVar(&toEmail, "to", "", "override the configured recipients with a single address")
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(previewCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(cfg.Log.Level, "console")
	for _, warning := range cfg.Warnings() {
		log.Warn().Msg(warning)
	}

	ctx := cmd.Context()

	sender, err := email.NewSender(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	gen := quote.NewGroqGenerator(cfg.Groq, log)
	dispatchSvc := service.NewDispatchService(gen, sender, cfg, log)

	result, err := dispatchSvc.Dispatch(ctx, toEmail)
	if err != nil {
		return err
	}

	fmt.Printf("Sent to: %s\n", strings.Join(result.Delivered(), ", "))
	fmt.Printf("Quote: %s\n", result.Quote)
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	sample := "Crois en tes rêves et ils se réaliseront. L'énergie suit l'intention. — Tony Robbins"
	fmt.Printf("Subject: %s\n\n", email.Subject)
	fmt.Println(email.MotivationEmailHTML(sample, cfg.Email.SenderName, time.Now()))
	return nil
}
