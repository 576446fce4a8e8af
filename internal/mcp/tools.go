package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchContentTool defines the search_content MCP tool.
var searchContentTool = mcp.NewTool("search_content",
	mcp.WithDescription("Search the case-study pages. Returns every section whose digest contains the query, with matches wrapped in ** markers."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Literal text to look for, compared case-insensitively"),
	),
	mcp.WithString("page",
		mcp.Description("Only search this page slug"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of sections to return (default 10)"),
	),
)

// listPagesTool defines the list_pages MCP tool.
var listPagesTool = mcp.NewTool("list_pages",
	mcp.WithDescription("List every page of the site with its sections."),
)

// getSectionTool defines the get_section MCP tool.
var getSectionTool = mcp.NewTool("get_section",
	mcp.WithDescription("Get the full text of one section."),
	mcp.WithString("page",
		mcp.Required(),
		mcp.Description("Page slug, e.g. trial"),
	),
	mcp.WithString("section",
		mcp.Required(),
		mcp.Description("Section id, e.g. verdict"),
	),
	mcp.WithString("query",
		mcp.Description("Optional text to highlight with ** markers"),
	),
)
