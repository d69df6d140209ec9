package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/generative-ai-go/genai"
	_ "github.com/joho/godotenv/autoload"
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/option"

	"findwork-assistant/internal/domain"
	"findwork-assistant/internal/transcript"
)

const systemPrompt = `You are a job search assistant helping users find job listings through natural language.

YOUR ROLE:
- Understand free-text job search requests and call the find_jobs tool with the right parameters
- Summarize tool results for the user; never invent listings

AVAILABLE TOOL:
- find_jobs: searches the Findwork job board. Accepts either the user's request verbatim (input) or explicit parameters (search, location, sort_by, page)

TOOL USAGE GUIDELINES:
1. When the user names a role and/or location, pass explicit parameters.
   Example: "Find software engineering jobs in Toronto" ->
   {"search": "software engineer", "location": "Toronto", "sort_by": "date", "page": 1}
2. When the request is vague, pass it verbatim as input and let the server parse it.
3. Default sort_by is "date"; use "relevance" only when the user asks for it.
4. Always request page 1 unless the user explicitly asks for another page.
5. If the tool reports a failure, tell the user plainly and suggest retrying later.

Answer general questions about your capabilities directly without calling tools.`

const maxIterations = 10

// Agent drives a Gemini function-calling loop over the assistant's MCP
// tools and keeps the session transcript.
type Agent struct {
	mcpSession *mcp.ClientSession
	gemini     *genai.Client
	model      *genai.GenerativeModel
	tools      []*mcp.Tool
	history    *transcript.Log

	// lastPayload holds the structured result of the most recent
	// find_jobs call within the current query, if any.
	lastPayload any
}

func NewAgent(ctx context.Context, mcpEndpoint, apiKey, model string) (*Agent, error) {
	mcpClient := mcp.NewClient(&mcp.Implementation{
		Name:    "findwork-assistant-agent",
		Version: "0.1.0",
	}, nil)

	session, err := mcpClient.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: mcpEndpoint,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MCP server at %s: %w", mcpEndpoint, err)
	}

	geminiClient, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		_ = session.Close()
		return nil, fmt.Errorf("failed to initialize Gemini: %w", err)
	}

	geminiModel := geminiClient.GenerativeModel(model)
	geminiModel.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	agent := &Agent{
		mcpSession: session,
		gemini:     geminiClient,
		model:      geminiModel,
		history:    transcript.New(),
	}

	toolsResp, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		_ = geminiClient.Close()
		_ = session.Close()
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	agent.tools = toolsResp.Tools

	return agent, nil
}

func (a *Agent) Close() error {
	var errs []string

	if err := a.gemini.Close(); err != nil {
		errs = append(errs, fmt.Sprintf("gemini close: %v", err))
	}
	if err := a.mcpSession.Close(); err != nil {
		errs = append(errs, fmt.Sprintf("mcp session close: %v", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during close: %s", strings.Join(errs, "; "))
	}
	return nil
}

// RunQuery runs one user request to completion and returns the classified
// outcome. The transcript records both sides of the turn.
func (a *Agent) RunQuery(ctx context.Context, userQuery string) (domain.AgentResponse, error) {
	a.history.Append(domain.RoleUser, userQuery)
	a.lastPayload = nil

	if tools := a.buildGeminiTools(); len(tools) > 0 {
		a.model.Tools = tools
	}

	chat := a.model.StartChat()
	currentParts := []genai.Part{genai.Text(userQuery)}

	for iteration := 1; iteration <= maxIterations; iteration++ {
		select {
		case <-ctx.Done():
			return domain.AgentResponse{}, ctx.Err()
		default:
		}

		resp, err := chat.SendMessage(ctx, currentParts...)
		if err != nil {
			if ctx.Err() != nil {
				return domain.AgentResponse{}, ctx.Err()
			}
			return domain.AgentResponse{}, fmt.Errorf("gemini API error: %w", err)
		}

		hasFunctionCall := false
		var responseText strings.Builder
		var functionResponses []genai.Part

		for _, candidate := range resp.Candidates {
			if candidate.Content == nil {
				continue
			}

			for _, part := range candidate.Content.Parts {
				switch p := part.(type) {
				case genai.FunctionCall:
					hasFunctionCall = true
					functionResponses = append(functionResponses, a.dispatchToolCall(ctx, p))
				case genai.Text:
					responseText.WriteString(string(p))
				}
			}
		}

		if hasFunctionCall && len(functionResponses) > 0 {
			currentParts = functionResponses
			continue
		}

		if responseText.Len() > 0 {
			outcome := a.classifyOutcome(responseText.String())
			a.history.Append(domain.RoleAssistant, renderResponse(outcome))
			return outcome, nil
		}

		if len(resp.Candidates) == 0 {
			return domain.AgentResponse{}, fmt.Errorf("unexpected response format from Gemini")
		}
	}

	return domain.AgentResponse{}, fmt.Errorf("max iterations reached")
}

// classifyOutcome prefers the structured payload of a find_jobs call over
// the model's prose, so listings render through the typed path.
func (a *Agent) classifyOutcome(finalText string) domain.AgentResponse {
	if a.lastPayload != nil {
		if outcome := domain.Classify(a.lastPayload); outcome.Kind == domain.ResponseListings {
			return outcome
		}
	}
	return domain.Classify(finalText)
}

func (a *Agent) dispatchToolCall(ctx context.Context, call genai.FunctionCall) genai.Part {
	args := call.Args
	if args == nil {
		args = make(map[string]any)
	}

	fmt.Printf("\n[Tool] Calling %s...\n", call.Name)

	result, err := a.callMCPTool(ctx, call.Name, args)
	if err != nil {
		fmt.Printf("[Error] Tool error: %v\n", err)
		return genai.FunctionResponse{
			Name:     call.Name,
			Response: map[string]any{"error": err.Error()},
		}
	}

	fmt.Printf("[Success] %s completed\n", call.Name)

	return genai.FunctionResponse{
		Name:     call.Name,
		Response: result,
	}
}

func (a *Agent) callMCPTool(ctx context.Context, toolName string, args map[string]any) (map[string]any, error) {
	var tool *mcp.Tool
	for _, t := range a.tools {
		if t.Name == toolName {
			tool = t
			break
		}
	}
	if tool == nil {
		return nil, fmt.Errorf("tool %s not found", toolName)
	}

	toolCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	result, err := a.mcpSession.CallTool(toolCtx, &mcp.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		return nil, err
	}

	if result.StructuredContent != nil && toolName == "find_jobs" {
		a.lastPayload = result.StructuredContent
	}

	var resultTexts []string
	for _, content := range result.Content {
		if textContent, ok := content.(*mcp.TextContent); ok {
			resultTexts = append(resultTexts, textContent.Text)
		}
	}

	resultMap := make(map[string]any)
	if len(resultTexts) > 0 {
		resultMap["result"] = strings.Join(resultTexts, "\n")
	} else {
		resultMap["result"] = "Tool executed successfully"
	}

	return resultMap, nil
}

func (a *Agent) buildGeminiTools() []*genai.Tool {
	var geminiTools []*genai.Tool

	for _, tool := range a.tools {
		declaration := &genai.FunctionDeclaration{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  convertSchema(schemaAsMap(tool.InputSchema)),
		}

		geminiTools = append(geminiTools, &genai.Tool{
			FunctionDeclarations: []*genai.FunctionDeclaration{declaration},
		})
	}

	return geminiTools
}

// schemaAsMap round-trips an MCP tool schema through JSON so conversion
// works regardless of the concrete schema type the SDK hands back.
func schemaAsMap(schema any) map[string]any {
	if schema == nil {
		return nil
	}

	raw, err := json.Marshal(schema)
	if err != nil {
		return nil
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func convertSchema(schemaMap map[string]any) *genai.Schema {
	if schemaMap == nil {
		return &genai.Schema{Type: genai.TypeObject}
	}

	result := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: make(map[string]*genai.Schema),
	}

	if typeVal, ok := schemaMap["type"].(string); ok {
		switch typeVal {
		case "string":
			result.Type = genai.TypeString
		case "number", "integer":
			result.Type = genai.TypeNumber
		case "boolean":
			result.Type = genai.TypeBoolean
		case "array":
			result.Type = genai.TypeArray
		case "object":
			result.Type = genai.TypeObject
		}
	}

	if required, ok := schemaMap["required"].([]any); ok {
		for _, req := range required {
			if reqStr, ok := req.(string); ok {
				result.Required = append(result.Required, reqStr)
			}
		}
	}

	if properties, ok := schemaMap["properties"].(map[string]any); ok {
		for name, prop := range properties {
			propMap, _ := prop.(map[string]any)
			result.Properties[name] = convertSchema(propMap)
		}
	}

	if items, ok := schemaMap["items"].(map[string]any); ok {
		result.Items = convertSchema(items)
	}

	return result
}

// renderResponse turns the tagged outcome into display text. The switch
// is exhaustive over ResponseKind.
func renderResponse(resp domain.AgentResponse) string {
	switch resp.Kind {
	case domain.ResponseListings:
		if len(resp.Listings) == 0 {
			return "❌ No jobs found for your query."
		}

		var b strings.Builder
		b.WriteString("📋 Job Listings\n")
		for _, job := range resp.Listings {
			remote := "No"
			if job.Remote {
				remote = "Yes"
			}
			fmt.Fprintf(&b, "\n🏢 **%s** - %s\n", job.CompanyName, job.Role)
			fmt.Fprintf(&b, "📍 **Location:** %s\n", job.Location)
			fmt.Fprintf(&b, "🌍 **Remote:** %s\n", remote)
			fmt.Fprintf(&b, "📅 **Posted On:** %s\n", job.DatePosted)
			fmt.Fprintf(&b, "🔗 %s\n", job.URL)
		}
		return b.String()

	case domain.ResponsePlainText:
		return fmt.Sprintf("📡 Response: %s", resp.Text)

	case domain.ResponseUnrecognized:
		return "❌ No valid response received."

	default:
		return "❌ No valid response received."
	}
}

func printHistory(history *transcript.Log) {
	fmt.Println("\n💬 Conversation History")
	if history.Len() == 0 {
		fmt.Println("(empty)")
		return
	}
	for _, entry := range history.Entries() {
		who := "🧑‍💼 You"
		if entry.Role == domain.RoleAssistant {
			who = "🤖 Assistant"
		}
		fmt.Printf("%s: %s\n", who, entry.Content)
	}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nShutting down...")
		cancel()
	}()

	mcpEndpoint := os.Getenv("MCP_URL")
	if mcpEndpoint == "" {
		mcpEndpoint = "http://localhost:8080"
	}
	if !strings.HasSuffix(mcpEndpoint, "/mcp/stream") {
		mcpEndpoint = strings.TrimSuffix(mcpEndpoint, "/") + "/mcp/stream"
	}

	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		log.Fatal("GOOGLE_API_KEY or GEMINI_API_KEY environment variable must be set")
	}

	model := os.Getenv("GOOGLE_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}

	agent, err := NewAgent(ctx, mcpEndpoint, apiKey, model)
	if err != nil {
		log.Fatalf("Failed to create agent: %v", err)
	}
	defer func() { _ = agent.Close() }()

	fmt.Printf("Connected to MCP server (session ID: %s)\n", agent.mcpSession.ID())
	fmt.Printf("Loaded %d tool(s)\n", len(agent.tools))

	if len(os.Args) > 1 {
		query := strings.Join(os.Args[1:], " ")
		outcome, err := agent.RunQuery(ctx, query)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		fmt.Println("\n" + renderResponse(outcome))
		return
	}

	fmt.Println("\n💼 Find a Job - interactive mode")
	fmt.Println("🔍 Use natural language to search for jobs.")
	fmt.Println("Type 'history' to review the conversation, 'quit' to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	inputChan := make(chan string)
	go func() {
		for scanner.Scan() {
			inputChan <- scanner.Text()
		}
		close(inputChan)
	}()

	for {
		fmt.Print("\n📝 Your request: ")

		select {
		case <-ctx.Done():
			fmt.Println("\nShutdown complete.")
			return

		case input, ok := <-inputChan:
			if !ok {
				return
			}

			input = strings.TrimSpace(input)
			if input == "" {
				fmt.Println("⚠️ Please enter a job search query.")
				continue
			}

			switch strings.ToLower(input) {
			case "quit", "exit", "q":
				fmt.Println("\nGoodbye.")
				return
			case "history":
				printHistory(agent.history)
				continue
			}

			outcome, err := agent.RunQuery(ctx, input)
			if err != nil {
				if err == context.Canceled || err == context.DeadlineExceeded {
					return
				}
				fmt.Printf("\nAn error occurred: %v\n", err)
				continue
			}

			fmt.Println("\n" + renderResponse(outcome))
		}
	}
}
