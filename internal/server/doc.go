// Package server implements an MCP (Model Context Protocol) server for
// splitting images into tiles and merging them back.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_dimensions: Width, height and format of an image
//   - image_background_color: Most frequent border color
//   - image_split: Cut an image into a grid of tiles on disk
//   - image_merge: Rebuild an image from its tiles on disk
//
// Tools follow the same file naming contract as the split-image command,
// so tiles written by one can be merged by the other.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure), -32700 (unparseable line) or
//     standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(server.Config{})
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
