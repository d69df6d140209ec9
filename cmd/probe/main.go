// Probe is a one-shot smoke client for the assistant server: it connects,
// lists tools, and runs a single find_jobs call.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	ctx := context.Background()

	endpoint := os.Getenv("MCP_URL")
	if endpoint == "" {
		endpoint = "http://localhost:8080/mcp/stream"
	}

	query := "Looking for a developer in Austin"
	if len(os.Args) > 1 {
		query = strings.Join(os.Args[1:], " ")
	}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "findwork-assistant-probe",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)", session.ID())

	toolsResp, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		log.Fatalf("ListTools failed: %v", err)
	}
	for _, tool := range toolsResp.Tools {
		log.Printf("tool: %s - %s", tool.Name, tool.Description)
	}

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "find_jobs",
		Arguments: map[string]any{
			"input": query,
		},
	})
	if err != nil {
		log.Fatalf("find_jobs failed: %v", err)
	}

	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			fmt.Println(text.Text)
		}
	}
}
