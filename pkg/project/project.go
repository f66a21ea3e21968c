package project

// Name is the server name reported to MCP clients
const Name = "calculator-mcp"

// Version is overridden at build time with -ldflags "-X ...project.Version=..."
var Version = "dev"
