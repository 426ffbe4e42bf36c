// ABOUTME: MCP server setup for the fitness tracker.
// ABOUTME: Wraps the session engine and store behind MCP tools and resources.
package mcp

import (
	"context"

	"github.com/harperreed/fittrack/internal/catalog"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with the application state and store.
type Server struct {
	mcpServer *mcp.Server
	state     *models.AppState
	gateway   store.Gateway
	engine    *session.Engine
}

// NewServer creates a new MCP server over the given state and store.
func NewServer(state *models.AppState, gateway store.Gateway) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fittrack",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		state:     state,
		gateway:   gateway,
		engine:    session.NewEngine(state),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// resolved returns the current merged exercise catalog.
func (s *Server) resolved() []models.Exercise {
	return catalog.Resolve(s.state.CustomExercises, s.state.ExerciseOverrides)
}

// persist writes the state through the gateway after a mutation.
func (s *Server) persist() error {
	return s.gateway.Save(s.state)
}
