// Package main is the entry point for the mosaic map editor.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/mosaic/internal/editor"
	"github.com/samdwyer/mosaic/internal/telemetry"
)

func main() {
	// Load .env for local development so collector credentials are
	// available without exporting them by hand.
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Editor will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := editor.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ed, err := editor.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize editor: %v", err)
	}

	if err := ed.Run(ctx); err != nil {
		log.Fatalf("Editor error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env
// vars when a collector API key is present.
func setupOTelEnv() {
	endpoint := os.Getenv("MOSAIC_OTLP_ENDPOINT")
	if endpoint == "" {
		endpoint = "https://api.honeycomb.io"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", endpoint)

	apiKey := os.Getenv("HONEYCOMB_MOSAIC_API_KEY")
	dataset := os.Getenv("HONEYCOMB_MOSAIC_DATASET")
	if dataset == "" {
		dataset = "mosaic" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
