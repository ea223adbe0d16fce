package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	apiURL := os.Getenv("VITALS_API_URL")
	if apiURL == "" {
		apiURL = "http://127.0.0.1:8080"
	}
	// Only needed when the server runs with VITALS_AUTH_ENABLED.
	apiKey := os.Getenv("VITALS_API_KEY")

	s := server.NewMCPServer(
		"vitals",
		"0.1.0",
		server.WithToolCapabilities(false),
	)

	analyzeTool := mcp.NewTool("analyze_url",
		mcp.WithDescription("Run a mobile PageSpeed performance audit for a web page. Returns LCP, FCP, CLS and TTFB, the overall performance score and up to five prioritized recommendations."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The URL of the web page to audit"),
		),
	)
	s.AddTool(analyzeTool, handleAnalyzeURL(&apiClient{
		baseURL: apiURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 120 * time.Second},
	}))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func handleAnalyzeURL(client *apiClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError("url is required"), nil
		}

		result, err := client.analyze(ctx, url)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(renderResult(result)), nil
	}
}
