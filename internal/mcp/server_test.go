// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/harperreed/balance/internal/repo"
	"github.com/harperreed/balance/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func setupServer(t *testing.T) (*Server, *repo.Store) {
	t.Helper()
	store := repo.NewStore(storage.NewMemoryGateway(), "default")
	server, err := NewServer(store)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return server, store
}

func TestNewServer(t *testing.T) {
	server, _ := setupServer(t)
	if server.mcpServer == nil {
		t.Error("expected non-nil mcpServer")
	}
	if server.store == nil || server.engine == nil {
		t.Error("expected store and engine to be wired")
	}
}

func TestHandleLogFood(t *testing.T) {
	server, store := setupServer(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   logFoodInput
		wantErr bool
	}{
		{
			name:  "calories only",
			input: logFoodInput{Name: "oatmeal", Calories: 320},
		},
		{
			name:  "with macros and serving",
			input: logFoodInput{Name: "yogurt", Calories: 120, Protein: 10, ServingSize: "1 cup"},
		},
		{
			name:  "backdated",
			input: logFoodInput{Name: "dinner", Calories: 700, Date: "2026-08-20"},
		},
		{
			name:    "negative calories",
			input:   logFoodInput{Name: "bad", Calories: -1},
			wantErr: true,
		},
		{
			name:    "invalid date",
			input:   logFoodInput{Name: "bad", Calories: 100, Date: "20-08-2026"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleLogFood(ctx, &mcp.CallToolRequest{}, tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output.Timestamp == 0 || output.Message == "" {
				t.Errorf("output = %+v", output)
			}
			if tt.input.Date != "" && output.Date != tt.input.Date {
				t.Errorf("Date = %s, want %s", output.Date, tt.input.Date)
			}
		})
	}

	entries, _ := store.ListFood()
	if len(entries) != 3 {
		t.Errorf("len = %d, want 3 logged entries", len(entries))
	}
}

func TestHandleLogExercise(t *testing.T) {
	server, store := setupServer(t)
	ctx := context.Background()

	_, output, err := server.handleLogExercise(ctx, &mcp.CallToolRequest{}, logExerciseInput{
		Name:           "squats",
		CaloriesBurned: 180,
		Sets:           5,
		Reps:           5,
		Weight:         100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Message == "" {
		t.Error("expected non-empty message")
	}

	entries, _ := store.ListExercise()
	if len(entries) != 1 || entries[0].Sets != 5 {
		t.Errorf("entries = %+v", entries)
	}

	_, _, err = server.handleLogExercise(ctx, &mcp.CallToolRequest{}, logExerciseInput{
		Name:           "bad",
		CaloriesBurned: -10,
	})
	if err == nil {
		t.Error("expected error for negative calories")
	}
}

func TestHandleLogWeight(t *testing.T) {
	server, store := setupServer(t)
	ctx := context.Background()

	_, output, err := server.handleLogWeight(ctx, &mcp.CallToolRequest{}, logWeightInput{WeightKg: 81.4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Timestamp == 0 {
		t.Error("expected timestamp")
	}

	weights, _ := store.ListWeights()
	if len(weights) != 1 || weights[0].WeightKg != 81.4 {
		t.Errorf("weights = %+v", weights)
	}

	if _, _, err := server.handleLogWeight(ctx, &mcp.CallToolRequest{}, logWeightInput{WeightKg: 0}); err == nil {
		t.Error("expected error for zero weight")
	}
}

func TestHandleDailySummary(t *testing.T) {
	server, _ := setupServer(t)
	ctx := context.Background()

	if _, _, err := server.handleLogFood(ctx, &mcp.CallToolRequest{}, logFoodInput{
		Name: "meal", Calories: 1800, Date: "2026-08-20",
	}); err != nil {
		t.Fatal(err)
	}

	_, output, err := server.handleDailySummary(ctx, &mcp.CallToolRequest{}, dailySummaryInput{Date: "2026-08-20"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output == nil {
		t.Fatal("expected non-nil summary")
	}

	if _, _, err := server.handleDailySummary(ctx, &mcp.CallToolRequest{}, dailySummaryInput{Date: "bad"}); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestHandleWeeklyStats(t *testing.T) {
	server, _ := setupServer(t)
	ctx := context.Background()

	for _, monthly := range []bool{false, true} {
		_, output, err := server.handleWeeklyStats(ctx, &mcp.CallToolRequest{}, weeklyStatsInput{Monthly: monthly})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output == nil {
			t.Error("expected non-nil output")
		}
	}
}

func TestHandleDeleteEntry(t *testing.T) {
	server, store := setupServer(t)
	ctx := context.Background()

	_, logged, err := server.handleLogFood(ctx, &mcp.CallToolRequest{}, logFoodInput{Name: "meal", Calories: 500})
	if err != nil {
		t.Fatal(err)
	}

	_, output, err := server.handleDeleteEntry(ctx, &mcp.CallToolRequest{}, deleteEntryInput{
		Kind:      "food",
		Timestamp: logged.Timestamp,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Message == "" {
		t.Error("expected non-empty message")
	}

	entries, _ := store.ListFood()
	if len(entries) != 0 {
		t.Errorf("len = %d, want 0", len(entries))
	}

	if _, _, err := server.handleDeleteEntry(ctx, &mcp.CallToolRequest{}, deleteEntryInput{
		Kind:      "metric",
		Timestamp: 1,
	}); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestHandleTodayResource(t *testing.T) {
	server, _ := setupServer(t)
	ctx := context.Background()

	result, err := server.handleTodayResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Contents) == 0 {
		t.Fatal("expected non-empty contents")
	}
	if result.Contents[0].URI != "balance://today" {
		t.Errorf("URI = %s, want balance://today", result.Contents[0].URI)
	}
	if result.Contents[0].MIMEType != "application/json" {
		t.Errorf("MIMEType = %s, want application/json", result.Contents[0].MIMEType)
	}
}

func TestHandleRecentResource(t *testing.T) {
	server, _ := setupServer(t)
	ctx := context.Background()

	if _, _, err := server.handleLogFood(ctx, &mcp.CallToolRequest{}, logFoodInput{
		Name: "meal", Calories: 2000, Date: "2026-08-20",
	}); err != nil {
		t.Fatal(err)
	}

	result, err := server.handleRecentResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.Contents[0].Text, "2026-08-20") {
		t.Error("expected logged date in recent history")
	}
}

func TestHandleTrendResource(t *testing.T) {
	server, _ := setupServer(t)
	ctx := context.Background()

	result, err := server.handleTrendResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Contents[0].URI != "balance://trend" {
		t.Errorf("URI = %s, want balance://trend", result.Contents[0].URI)
	}
}
