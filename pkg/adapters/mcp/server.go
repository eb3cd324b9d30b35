package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/algotrace"
	"github.com/aretw0/algotrace/internal/dto"
	"github.com/aretw0/algotrace/pkg/complexity"
	"github.com/aretw0/algotrace/pkg/domain"
)

const (
	algorithmsURI = "algotrace://algorithms"
	historyURI    = "algotrace://history"
)

// Engine defines the interface required by the MCP server.
type Engine interface {
	Execute(ctx context.Context, req algotrace.ExecuteRequest) (*domain.Execution, error)
	Analyze(ctx context.Context, algorithm string, n int) (*domain.Analysis, error)
	Ask(ctx context.Context, query, algorithmContext string) (*domain.Answer, error)
	History(ctx context.Context, filter domain.HistoryFilter) (*domain.HistoryPage, error)
	Algorithms() []complexity.Info
}

// AlgorithmList is the structured output of list_algorithms.
type AlgorithmList struct {
	Algorithms []complexity.Info `json:"algorithms" jsonschema_description:"Supported algorithms with their complexity"`
}

// Server wraps the engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		engine:    engine,
		logger:    logger,
		mcpServer: server.NewMCPServer("algotrace-mcp", strings.TrimSpace(algotrace.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on port until ctx is canceled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	ids := make([]string, len(domain.AlgorithmIDs()))
	for i, id := range domain.AlgorithmIDs() {
		ids[i] = id.String()
	}

	// TOOL: execute_algorithm
	executeTool := mcp.NewTool("execute_algorithm",
		mcp.WithDescription("Run a sorting or searching algorithm and return every intermediate step with comparison and swap counters."),
		mcp.WithString("algorithm_type", mcp.Required(), mcp.Enum(ids...), mcp.Description("Algorithm identifier")),
		mcp.WithArray("array", mcp.Required(), mcp.Items(map[string]any{"type": "integer"}), mcp.Description("Integers to process")),
		mcp.WithNumber("search_target", mcp.Description("Value to find (required for linear and binary)")),
		mcp.WithOutputSchema[domain.Execution](),
	)
	s.mcpServer.AddTool(executeTool, mcp.NewStructuredToolHandler(s.handleExecute))

	// TOOL: analyze_complexity
	analyzeTool := mcp.NewTool("analyze_complexity",
		mcp.WithDescription("Return the asymptotic complexity of an algorithm and estimated operation counts for an input size."),
		mcp.WithString("algorithm_type", mcp.Required(), mcp.Enum(ids...), mcp.Description("Algorithm identifier")),
		mcp.WithNumber("array_size", mcp.Required(), mcp.Min(1), mcp.Description("Input size n")),
		mcp.WithOutputSchema[domain.Analysis](),
	)
	s.mcpServer.AddTool(analyzeTool, mcp.NewStructuredToolHandler(s.handleAnalyze))

	// TOOL: list_algorithms
	listTool := mcp.NewTool("list_algorithms",
		mcp.WithDescription("List every supported algorithm with its complexity classes."),
		mcp.WithOutputSchema[AlgorithmList](),
	)
	s.mcpServer.AddTool(listTool, mcp.NewStructuredToolHandler(s.handleList))

	// TOOL: ask_assistant
	askTool := mcp.NewTool("ask_assistant",
		mcp.WithDescription("Ask the algorithm learning assistant a question."),
		mcp.WithString("user_query", mcp.Required(), mcp.Description("The question")),
		mcp.WithString("context", mcp.Description("Algorithm currently being studied (optional)")),
	)
	s.mcpServer.AddTool(askTool, s.handleAsk)
}

// Handler methods for structured tools

func (s *Server) handleExecute(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Execution, error) {
	var in dto.ExecuteArgs
	if err := dto.Decode(args, &in); err != nil {
		return domain.Execution{}, err
	}

	exec, err := s.engine.Execute(ctx, algotrace.ExecuteRequest{
		Algorithm: in.AlgorithmType,
		Array:     in.Array,
		Target:    in.SearchTarget,
	})
	if err != nil {
		s.logger.Warn("MCP execute_algorithm rejected", "algorithm", in.AlgorithmType, "err", err)
		return domain.Execution{}, err
	}
	return *exec, nil
}

func (s *Server) handleAnalyze(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Analysis, error) {
	var in dto.AnalyzeArgs
	if err := dto.Decode(args, &in); err != nil {
		return domain.Analysis{}, err
	}

	analysis, err := s.engine.Analyze(ctx, in.AlgorithmType, in.ArraySize)
	if err != nil {
		return domain.Analysis{}, err
	}
	return *analysis, nil
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (AlgorithmList, error) {
	return AlgorithmList{Algorithms: s.engine.Algorithms()}, nil
}

func (s *Server) handleAsk(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in dto.AskArgs
	if err := dto.Decode(request.GetArguments(), &in); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	answer, err := s.engine.Ask(ctx, in.Query, in.Context)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("assistant failed: %v", err)), nil
	}
	return mcp.NewToolResultText(answer.Response), nil
}

func (s *Server) registerResources() {
	// EXPOSE: algotrace://algorithms
	s.mcpServer.AddResource(mcp.NewResource(algorithmsURI, "Supported Algorithms",
		mcp.WithResourceDescription("Metadata and complexity for every algorithm"),
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return jsonResource(algorithmsURI, AlgorithmList{Algorithms: s.engine.Algorithms()})
	})

	// EXPOSE: algotrace://history
	s.mcpServer.AddResource(mcp.NewResource(historyURI, "Execution History",
		mcp.WithResourceDescription("Most recent executions, newest first"),
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		page, err := s.engine.History(ctx, domain.HistoryFilter{})
		if err != nil {
			return nil, fmt.Errorf("failed to read history: %w", err)
		}
		return jsonResource(historyURI, page)
	})
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
