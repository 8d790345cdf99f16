package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/split-image/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg := server.Config{}

	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version", "-v", "version":
			fmt.Printf("split-image-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("split-image-mcp - MCP server for splitting images into tiles")
			fmt.Println()
			fmt.Println("Usage: split-image-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --load-large-images  Disable the decompression bomb pixel guard")
			fmt.Println("  --version, -v        Print version information")
			fmt.Println("  --help, -h           Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  IMAGE_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		case "--load-large-images":
			cfg.LoadLargeImages = true
		default:
			fmt.Fprintf(os.Stderr, "unknown option: %s\n", arg)
			os.Exit(2)
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("IMAGE_MCP_LOG_LEVEL") == "debug" {
		log.Printf("Split Image MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	server.Version = Version
	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
