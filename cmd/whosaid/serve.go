// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/speakerlab/whosaid/internal/tool"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the classifier as MCP tools over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		server := tool.NewServer(version)
		slog.Info("mcp server starting", "version", version)
		return server.Run(cmd.Context(), &mcp.StdioTransport{})
	},
}
