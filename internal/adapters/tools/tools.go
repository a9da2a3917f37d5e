// Package tools exposes the scouting service to agents as MCP tools served over
// streamable HTTP.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	service "github.com/okian/scout/internal/app"
	"github.com/okian/scout/internal/domain/analysis"
	"github.com/okian/scout/internal/domain/catalog"
	"github.com/okian/scout/internal/domain/filter"
	"github.com/okian/scout/internal/domain/scoring"
	"github.com/okian/scout/pkg/metrics"
)

// Tool names.
const (
	ToolListPositions    = "list_positions"
	ToolListProfiles     = "list_profiles"
	ToolDescribeProfile  = "describe_profile"
	ToolDescribeDataset  = "describe_dataset"
	ToolRankPlayers      = "rank_players"
	ToolCorrelateMetrics = "correlate_metrics"
)

// Dependencies is the part of the service the tools call into.
type Dependencies interface {
	Catalog() *catalog.Catalog
	DatasetInfo(ctx context.Context, id string) (service.DatasetInfo, error)
	Analyze(ctx context.Context, req service.AnalysisRequest) (*service.Analysis, error)
	Correlate(ctx context.Context, req service.AnalysisRequest, x, y string) (*analysis.Correlation, error)
}

// ProfilesArgs selects the profiles of one position.
type ProfilesArgs struct {
	Position string `json:"position,omitempty" jsonschema:"Position name; empty lists every profile"`
}

// ProfileArgs names one profile.
type ProfileArgs struct {
	Profile string `json:"profile" jsonschema:"Profile name (required)"`
}

// DatasetArgs names one uploaded dataset.
type DatasetArgs struct {
	DatasetID string `json:"dataset_id" jsonschema:"Dataset id returned by the upload (required)"`
}

// RankArgs mirrors the rankings query of the HTTP API.
type RankArgs struct {
	DatasetID  string   `json:"dataset_id" jsonschema:"Dataset id returned by the upload (required)"`
	Position   string   `json:"position" jsonschema:"Position name (required)"`
	Profile    string   `json:"profile,omitempty" jsonschema:"Profile name (default: first profile of the position)"`
	Top        int      `json:"top,omitempty" jsonschema:"Number of players to return (default 10)"`
	MinAge     *float64 `json:"min_age,omitempty" jsonschema:"Minimum age, inclusive"`
	MaxAge     *float64 `json:"max_age,omitempty" jsonschema:"Maximum age, inclusive"`
	MinMinutes *float64 `json:"min_minutes,omitempty" jsonschema:"Minimum minutes played, inclusive"`
	MaxMinutes *float64 `json:"max_minutes,omitempty" jsonschema:"Maximum minutes played, inclusive"`
	Passport   string   `json:"passport,omitempty" jsonschema:"Passport country, case-insensitive substring"`
}

// CorrelateArgs is RankArgs plus the two metrics to correlate.
type CorrelateArgs struct {
	DatasetID string `json:"dataset_id" jsonschema:"Dataset id returned by the upload (required)"`
	Position  string `json:"position" jsonschema:"Position name (required)"`
	Profile   string `json:"profile,omitempty" jsonschema:"Profile name (default: first profile of the position)"`
	Top       int    `json:"top,omitempty" jsonschema:"Number of ranked players to correlate over (default 10)"`
	X         string `json:"x" jsonschema:"First metric name (required)"`
	Y         string `json:"y" jsonschema:"Second metric name (required)"`
}

func (a CorrelateArgs) request() service.AnalysisRequest {
	return RankArgs{DatasetID: a.DatasetID, Position: a.Position, Profile: a.Profile, Top: a.Top}.request()
}

func (a RankArgs) request() service.AnalysisRequest {
	return service.AnalysisRequest{
		DatasetID: a.DatasetID,
		Position:  a.Position,
		Profile:   a.Profile,
		TopN:      a.Top,
		Criteria: filter.Criteria{
			MinAge:     a.MinAge,
			MaxAge:     a.MaxAge,
			MinMinutes: a.MinMinutes,
			MaxMinutes: a.MaxMinutes,
			Passport:   a.Passport,
		},
	}
}

// NewServer builds an MCP server with every scouting tool registered.
func NewServer(deps Dependencies, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "scout", Version: version}, nil)

	addTool(server, &mcp.Tool{
		Name:        ToolListPositions,
		Description: "Positions with their position codes and the profiles each offers",
	}, func(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
		return toolJSON(deps.Catalog().Positions(), nil)
	})

	addTool(server, &mcp.Tool{
		Name:        ToolListProfiles,
		Description: "Profile names offered by a position, or every profile",
	}, func(_ context.Context, _ *mcp.CallToolRequest, args ProfilesArgs) (*mcp.CallToolResult, any, error) {
		c := deps.Catalog()
		if args.Position == "" {
			return toolJSON(c.Profiles(), nil)
		}
		return toolJSON(c.ProfilesFor(args.Position))
	})

	addTool(server, &mcp.Tool{
		Name:        ToolDescribeProfile,
		Description: "Description and signed metric weights of a profile; negative weights reward low values",
	}, func(_ context.Context, _ *mcp.CallToolRequest, args ProfileArgs) (*mcp.CallToolResult, any, error) {
		if args.Profile == "" {
			return toolError(errors.New("profile is required")), nil, nil
		}
		return toolJSON(deps.Catalog().Profile(args.Profile))
	})

	addTool(server, &mcp.Tool{
		Name:        ToolDescribeDataset,
		Description: "Rows, columns and players per position of an uploaded dataset",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args DatasetArgs) (*mcp.CallToolResult, any, error) {
		return toolJSON(deps.DatasetInfo(ctx, args.DatasetID))
	})

	addTool(server, &mcp.Tool{
		Name:        ToolRankPlayers,
		Description: "Filter a dataset to a position and rank its players 0-10 under a profile",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args RankArgs) (*mcp.CallToolResult, any, error) {
		return toolJSON(deps.Analyze(ctx, args.request()))
	})

	addTool(server, &mcp.Tool{
		Name:        ToolCorrelateMetrics,
		Description: "Pearson correlation of two profile metrics over the ranked players",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args CorrelateArgs) (*mcp.CallToolResult, any, error) {
		if args.X == "" || args.Y == "" {
			return toolError(errors.New("x and y are required")), nil, nil
		}
		return toolJSON(deps.Correlate(ctx, args.request(), args.X, args.Y))
	})

	return server
}

// Handler serves server over streamable HTTP with JSON responses.
func Handler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
}

// addTool registers a tool and records the outcome of every call.
func addTool[T any](server *mcp.Server, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	name := tool.Name
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args T) (*mcp.CallToolResult, any, error) {
		res, out, err := handler(ctx, req, args)
		outcome := metrics.OutcomeOK
		if err != nil || (res != nil && res.IsError) {
			outcome = metrics.OutcomeError
		}
		metrics.RecordToolCall(name, outcome)
		return res, out, err
	})
}

func toolJSON(v any, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("encode tool result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	var ime *scoring.InsufficientMetricsError
	text := fmt.Sprintf("error: %v", err)
	if errors.As(err, &ime) {
		text = fmt.Sprintf("error: %v; choose another profile or upload a dataset with these columns", err)
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
