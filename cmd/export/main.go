// Command export writes the full dataset to full_database_export.json in
// the working directory. It is the offline counterpart of the admin
// /export/download route.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/spiconsulting/consultancy-website/internal/core/service"
	"github.com/spiconsulting/consultancy-website/internal/infrastructure/config"
	"github.com/spiconsulting/consultancy-website/internal/infrastructure/db/mongo"
	"github.com/spiconsulting/consultancy-website/pkg/logger"
)

const defaultOutput = "full_database_export.json"

func main() {
	output := flag.String("o", defaultOutput, "output file path")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: true})

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	exporter := service.NewExportService(
		mongo.NewUserRepository(db),
		mongo.NewPostRepository(db),
		mongo.NewJobRepository(db),
	)

	doc, err := exporter.Export(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		log.Fatal().Err(err).Msg("encode failed")
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatal().Err(err).Msg("write failed")
	}

	log.Info().
		Str("file", *output).
		Int("users", len(doc.Users)).
		Int("posts", len(doc.Posts)).
		Int("jobs", len(doc.Jobs)).
		Msg("export complete")
}
