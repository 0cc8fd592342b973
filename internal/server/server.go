package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/codemend/codemend/internal/analyzer"
	"github.com/codemend/codemend/internal/config"
	"github.com/codemend/codemend/internal/findings"
	"github.com/codemend/codemend/internal/rectify"
	"github.com/codemend/codemend/internal/rules"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server and connects it to the analysis engine.
type Server struct {
	mcp     *mcp.Server
	eng     *analyzer.Engine
	catalog *rules.Catalog
	cfg     *config.Config
}

// New creates a new MCP server wired to the given engine and catalog.
func New(eng *analyzer.Engine, catalog *rules.Catalog, cfg *config.Config) (*Server, error) {
	s := &Server{
		eng:     eng,
		catalog: catalog,
		cfg:     cfg,
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "codemend",
		Version: "0.1.0",
	}, nil)

	s.mcp = mcpServer
	s.registerResources()
	s.registerTools()

	return s, nil
}

// Run starts the MCP server on the stdio transport.
func (s *Server) Run(ctx context.Context) error {
	log.Println("[server] starting MCP server on stdio transport")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// registerResources adds MCP resources describing the rule catalog.
func (s *Server) registerResources() {
	s.mcp.AddResource(&mcp.Resource{
		URI:         "codemend://rules/catalog",
		Name:        "Detection Rule Catalog",
		Description: "All detection rules per language: pattern, category, message, and fix template",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		content, err := s.catalogJSON()
		if err != nil {
			return nil, fmt.Errorf("rendering catalog: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: req.Params.URI, Text: string(content), MIMEType: "application/json"},
			},
		}, nil
	})
}

// catalogJSON renders the rule catalog as indented JSON, keyed by language.
func (s *Server) catalogJSON() ([]byte, error) {
	type ruleInfo struct {
		Pattern  string            `json:"pattern"`
		Category findings.Category `json:"category"`
		Message  string            `json:"message"`
		Fix      string            `json:"fix"`
	}

	out := make(map[string][]ruleInfo)
	for _, lang := range s.catalog.Languages() {
		for _, r := range s.catalog.Rules(lang) {
			out[string(lang)] = append(out[string(lang)], ruleInfo{
				Pattern:  r.Pattern(),
				Category: r.Category(),
				Message:  r.Message(),
				Fix:      r.FixTemplate(),
			})
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

// analyzeCodeArgs are the arguments for the analyze_code tool.
type analyzeCodeArgs struct {
	Code     string `json:"code" jsonschema:"required,Source code to analyze"`
	Language string `json:"language" jsonschema:"required,Programming language: Python, Java, C++, or JavaScript"`
}

// rectifyBugArgs are the arguments for the rectify_bug tool.
type rectifyBugArgs struct {
	Code    string           `json:"code" jsonschema:"required,Source code to rewrite"`
	Finding findings.Finding `json:"finding" jsonschema:"required,The finding whose fix should be applied"`
}

// rectifyAllArgs are the arguments for the rectify_all tool.
type rectifyAllArgs struct {
	Code     string             `json:"code" jsonschema:"required,Source code to rewrite"`
	Findings []findings.Finding `json:"findings" jsonschema:"required,Findings whose fixes should be applied"`
}

// registerTools adds MCP tools for detection and rectification.
func (s *Server) registerTools() {
	// Tool: analyze_code
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "analyze_code",
		Description: "Detect probable defects in source code. Runs per-line pattern rules and, for Python, a structural checker. Returns findings with suggested line fixes.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args analyzeCodeArgs) (*mcp.CallToolResult, any, error) {
		lang, ok := findings.ParseLanguage(args.Language)
		if !ok {
			return errorResult(fmt.Sprintf("unknown language %q", args.Language)), nil, nil
		}

		report := s.eng.Analyze(args.Code, lang)
		log.Printf("[server] analyze_code: %d finding(s) in %d line(s)", report.Count, len(findings.Split(args.Code)))

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return errorResult(fmt.Sprintf("failed to marshal report: %v", err)), nil, nil
		}
		return textResult(string(data)), nil, nil
	})

	// Tool: rectify_bug
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "rectify_bug",
		Description: "Apply one finding's fix to the source code. The targeted line is replaced with the fix text; an out-of-range line leaves the code unchanged.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args rectifyBugArgs) (*mcp.CallToolResult, any, error) {
		fixed, replaced, applied := rectify.One(args.Code, args.Finding)

		result := struct {
			Code     string `json:"code"`
			Replaced string `json:"replaced,omitempty"`
			Applied  bool   `json:"applied"`
		}{Code: fixed, Replaced: replaced, Applied: applied}

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return errorResult(fmt.Sprintf("failed to marshal result: %v", err)), nil, nil
		}
		return textResult(string(data)), nil, nil
	})

	// Tool: rectify_all
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "rectify_all",
		Description: "Apply every finding's fix to the source code and return the rewritten text. Re-run analyze_code afterwards: previous findings are stale once the code changes.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args rectifyAllArgs) (*mcp.CallToolResult, any, error) {
		fixed := rectify.All(args.Code, args.Findings)
		return textResult(fixed), nil, nil
	})
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}
