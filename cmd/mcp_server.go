package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhowell728/fsb/internal/config"
	"github.com/jhowell728/fsb/internal/model"
	"github.com/jhowell728/fsb/internal/output"
	"github.com/jhowell728/fsb/internal/platform"
	"github.com/jhowell728/fsb/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// mcpServer wraps the MCP server with the platform provider and cache.
type mcpServer struct {
	provider   *platform.Provider
	config     config.Config
	cache      *mcpListCache
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer creates and configures an MCP server with all fsb tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	loaded, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return newMCPServerWithProvider(provider, loaded.Config, cfg.CacheTTL), nil
}

func newMCPServerWithProvider(provider *platform.Provider, cfg config.Config, cacheTTL time.Duration) *mcpServer {
	s := &mcpServer{
		provider: provider,
		config:   cfg,
		cache:    newMCPListCache(cacheTTL),
	}
	s.mcp = mcpserver.NewMCPServer(
		"fsb",
		version.Version,
	)
	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// list
	s.mcp.AddTool(
		mcp.NewTool("list",
			mcp.WithDescription("List top-level windows with PID, handle, title, class, state and bounds. Hidden and blank-titled windows are filtered per the fsb config unless all is set."),
			mcp.WithBoolean("all", mcp.Description("Include hidden and blank-titled windows")),
			mcp.WithBoolean("include-tools", mcp.Description("Include tool windows")),
			mcp.WithNumber("pid", mcp.Description("Filter by process ID")),
			mcp.WithString("window", mcp.Description("Filter by window title substring")),
			mcp.WithString("state", mcp.Description("Filter by state: normal, maximized, minimized")),
		),
		s.handleList,
	)

	// fullscreen
	s.mcp.AddTool(
		mcp.NewTool("fullscreen",
			mcp.WithDescription("Remove a window's border and caption and resize it to cover the primary display. Target by window-id, pid, or window title."),
			mcp.WithNumber("window-id", mcp.Description("Target window by handle")),
			mcp.WithNumber("pid", mcp.Description("Target window by process ID")),
			mcp.WithString("window", mcp.Description("Target window by title substring")),
			mcp.WithBoolean("all", mcp.Description("Also match hidden and blank-titled windows")),
		),
		s.handleFullscreen,
	)
}

func (s *mcpServer) handleList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	opts := listOptions(s.config,
		BoolParam(params, "all", false),
		BoolParam(params, "include-tools", false),
		IntParam(params, "pid", 0),
		StringParam(params, "window", ""),
	)
	if state := StringParam(params, "state", ""); state != "" {
		parsed, err := model.ParseWindowState(state)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		opts.ByState, opts.State = true, parsed
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	windows, err := s.cache.listWindows(s.provider, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := output.YAML(output.ListResult{Count: len(windows), Windows: windows})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *mcpServer) handleFullscreen(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	target := platform.TargetOptions{
		WindowID: uintptr(IntParam(params, "window-id", 0)),
		PID:      IntParam(params, "pid", 0),
		Window:   StringParam(params, "window", ""),
	}
	opts := listOptions(s.config, BoolParam(params, "all", false), false, 0, "")

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	result, err := applyFullscreen(s.provider, opts, target)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.cache.invalidateAll()
	text, err := output.YAML(result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}
