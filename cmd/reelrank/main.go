// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/reelrank"
	"github.com/poiesic/reelrank/config"
	"github.com/poiesic/reelrank/core"
	"github.com/poiesic/reelrank/ingestion"
	"github.com/poiesic/reelrank/model"
	"github.com/poiesic/reelrank/normalize"
	"github.com/poiesic/reelrank/storage/badger"
	"github.com/poiesic/reelrank/vectorize"
)

func main() {
	app := &cli.App{
		Name:  "reelrank",
		Usage: "Movie recommendations from storyline similarity",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (default ~/.reelrank/config.toml)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "import",
				Usage:  "Import a catalog CSV file into the movie database",
				Action: importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to catalog CSV file",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "catalog",
						Aliases: []string{"d"},
						Usage:   "Path to catalog database directory",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for normalization",
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N records",
						Value: 100,
					},
				},
			},
			{
				Name:   "train",
				Usage:  "Train a recommendation model from the movie database",
				Action: trainCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "catalog",
						Aliases: []string{"d"},
						Usage:   "Path to catalog database directory",
					},
					&cli.StringFlag{
						Name:    "model",
						Aliases: []string{"m"},
						Usage:   "Path to write the model artifact",
					},
					&cli.IntFlag{
						Name:  "max-features",
						Usage: "Vocabulary size cap (0 for config default)",
					},
					&cli.IntFlag{
						Name:  "min-df",
						Usage: "Minimum document frequency for vocabulary terms",
					},
					&cli.Float64Flag{
						Name:  "max-df-ratio",
						Usage: "Maximum document frequency ratio for vocabulary terms",
					},
				},
			},
			{
				Name:      "similar",
				Usage:     "Recommend movies similar to a catalog title",
				ArgsUsage: "<title>",
				Action:    similarCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "model",
						Aliases: []string{"m"},
						Usage:   "Path to the model artifact",
					},
					&cli.IntFlag{
						Name:    "top",
						Aliases: []string{"n"},
						Usage:   "Number of recommendations to return",
					},
				},
			},
			{
				Name:      "match",
				Usage:     "Recommend movies matching a free-text description",
				ArgsUsage: "<description>",
				Action:    matchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "model",
						Aliases: []string{"m"},
						Usage:   "Path to the model artifact",
					},
					&cli.IntFlag{
						Name:    "top",
						Aliases: []string{"n"},
						Usage:   "Number of recommendations to return",
					},
				},
			},
			{
				Name:   "info",
				Usage:  "Show model artifact statistics",
				Action: infoCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "model",
						Aliases: []string{"m"},
						Usage:   "Path to the model artifact",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads the config file and overlays any flags the user set.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return cfg, err
	}

	if c.IsSet("catalog") {
		cfg.Data.CatalogPath = c.String("catalog")
	}
	if c.IsSet("model") {
		cfg.Data.ModelPath = c.String("model")
	}
	if c.IsSet("max-features") {
		cfg.Engine.MaxFeatures = c.Int("max-features")
	}
	if c.IsSet("min-df") {
		cfg.Engine.MinDocFreq = c.Int("min-df")
	}
	if c.IsSet("max-df-ratio") {
		cfg.Engine.MaxDocFreqRatio = c.Float64("max-df-ratio")
	}
	if c.IsSet("top") {
		cfg.Engine.TopN = c.Int("top")
	}
	return cfg, nil
}

func importCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	file, err := os.Open(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	backend, err := badger.OpenBackend(cfg.Data.CatalogPath, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewMovieRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	movies, err := ingestion.ReadCatalog(file)
	if err != nil {
		return fmt.Errorf("failed to parse catalog: %w", err)
	}

	tracker := ingestion.NewProgressTracker(os.Stderr, len(movies), c.Int("report-interval"))
	opts := []ingestion.Option{ingestion.WithProgress(tracker)}
	if c.IsSet("pool-size") {
		opts = append(opts, ingestion.WithPoolSize(c.Int("pool-size")))
	}

	normalizer := normalize.New(normalize.WithMinTokenLen(cfg.Engine.MinTokenLen))
	pipeline, err := ingestion.NewPipeline(repo, normalizer, opts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	stats, err := pipeline.Import(ctx, movies)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Read:       %d\n", stats.Read)
	fmt.Printf("Inserted:   %d\n", stats.Inserted)
	fmt.Printf("Duplicates: %d\n", stats.Duplicates)
	fmt.Printf("Invalid:    %d\n", stats.Invalid)
	return nil
}

func trainCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	backend, err := badger.OpenBackend(cfg.Data.CatalogPath, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewMovieRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	movies, err := repo.AllMovies(ctx)
	if err != nil {
		return fmt.Errorf("failed to load movies: %w", err)
	}

	engine, err := reelrank.Train(movies, vectorize.Config{
		MaxFeatures:     cfg.Engine.MaxFeatures,
		MinDocFreq:      cfg.Engine.MinDocFreq,
		MaxDocFreqRatio: cfg.Engine.MaxDocFreqRatio,
	})
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	if err := engine.SaveModel(cfg.Data.ModelPath); err != nil {
		return fmt.Errorf("failed to save model: %w", err)
	}

	fmt.Printf("Trained on %d movies with %d features\n",
		engine.MovieCount(), engine.FeatureCount())
	fmt.Printf("Model written to %s\n", cfg.Data.ModelPath)
	return nil
}

func similarCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	title := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if title == "" {
		return fmt.Errorf("a movie title is required")
	}

	engine, err := reelrank.LoadEngine(cfg.Data.ModelPath)
	if err != nil {
		return fmt.Errorf("failed to load model: %w", err)
	}

	recs, err := engine.RecommendByTitle(title, cfg.Engine.TopN)
	if err != nil {
		return err
	}

	printRecommendations(recs)
	return nil
}

func matchCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if text == "" {
		return fmt.Errorf("a description is required")
	}

	engine, err := reelrank.LoadEngine(cfg.Data.ModelPath)
	if err != nil {
		return fmt.Errorf("failed to load model: %w", err)
	}

	recs, err := engine.RecommendByText(text, cfg.Engine.TopN)
	if err != nil {
		return err
	}

	printRecommendations(recs)
	return nil
}

func infoCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	artifact, err := model.Load(cfg.Data.ModelPath)
	if err != nil {
		return fmt.Errorf("failed to load model: %w", err)
	}

	fmt.Printf("Artifact:       %s\n", cfg.Data.ModelPath)
	fmt.Printf("Format version: %d\n", model.ArtifactVersion)
	fmt.Printf("Movies:         %d\n", len(artifact.Movies))
	fmt.Printf("Features:       %d\n", len(artifact.Terms))
	return nil
}

func printRecommendations(recs []core.Recommendation) {
	if len(recs) == 0 {
		fmt.Println("No recommendations found")
		return
	}
	for i, rec := range recs {
		storyline := rec.Storyline
		if len(storyline) > 80 {
			storyline = storyline[:77] + "..."
		}
		fmt.Printf("%2d. %s (%.2f%%)\n    %s\n", i+1, rec.Name, rec.ScorePercent, storyline)
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
