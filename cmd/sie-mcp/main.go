// Package main provides the sie-mcp entry point: an MCP server exposing
// Bank of Mexico economic data series as tools over stdio.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sie-mcp/internal/config"
	"sie-mcp/internal/health"
	"sie-mcp/internal/mcp"
	"sie-mcp/internal/sie"
	"sie-mcp/internal/tool"
)

const (
	serverName = "sie-mcp"
	version    = "1.0.0"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sie-mcp",
		Short: "MCP server for Bank of Mexico SIE economic data",
		Long: `sie-mcp exposes the Bank of Mexico SIE API (exchange rates,
inflation, interest rates, reserves, unemployment) as MCP tools over
JSON-RPC 2.0 on stdio.

Set BANXICO_API_TOKEN before serving; see .env.example for all settings.`,
		RunE: runServe,
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the MCP server on stdio",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "tools",
			Short: "Print the tool catalog",
			Run:   runTools,
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the server version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("%s %s\n", serverName, version)
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// stdout carries JSON-RPC frames; all logging goes to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	var backend tool.Backend
	if cfg.Token != "" {
		client, err := sie.NewClient(cfg.BaseURL, cfg.Token,
			sie.WithTimeout(cfg.Timeout),
			sie.WithLogger(logger),
		)
		if err != nil {
			return err
		}
		backend = tool.Backend{Fetcher: client, HasToken: true}
	} else {
		logger.Warn("BANXICO_API_TOKEN is not set; data tools will return a configuration error")
	}

	tools := tool.Catalog(backend)
	server := mcp.NewServer(serverName, version, tools, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("shutdown signal received, exiting")
		cancel()
	}()

	if cfg.HealthPort > 0 {
		go func() {
			addr := fmt.Sprintf(":%d", cfg.HealthPort)
			if err := health.Serve(ctx, addr, logger); err != nil {
				logger.Error("health listener failed", "error", err)
			}
		}()
	}

	logger.Info("starting MCP server on stdio", "name", serverName, "version", version, "tools", len(tools))
	if err := server.Serve(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runTools(cmd *cobra.Command, args []string) {
	for _, t := range tool.Catalog(tool.Backend{}) {
		fmt.Printf("%s\t%s\n", t.Name(), t.Description())
	}
}
