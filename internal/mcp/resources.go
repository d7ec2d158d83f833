// ABOUTME: MCP resource implementations for energy-balance views.
// ABOUTME: Provides balance://today, balance://recent, and balance://trend resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// balance://today - today's energy-balance summary
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "balance://today",
		Name:        "Today's Energy Balance",
		Description: "Calories eaten, burned, and NET for today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// balance://recent - last 14 tracked days
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "balance://recent",
		Name:        "Recent History",
		Description: "Daily summaries for the last 14 tracked days",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// balance://trend - weight trend with estimate
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "balance://trend",
		Name:        "Weight Trend",
		Description: "Logged weights plus the estimated trend from cumulative NET calories",
		MIMEType:    "application/json",
	}, s.handleTrendResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sum, err := s.engine.Today()
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}
	return jsonResource("balance://today", sum)
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	history, err := s.engine.History()
	if err != nil {
		return nil, fmt.Errorf("failed to compute history: %w", err)
	}
	if len(history) > 14 {
		history = history[:14]
	}
	return jsonResource("balance://recent", history)
}

func (s *Server) handleTrendResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	trend, err := s.engine.WeightProjection()
	if err != nil {
		return nil, fmt.Errorf("failed to compute weight trend: %w", err)
	}
	return jsonResource("balance://trend", trend)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
