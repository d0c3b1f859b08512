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
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/reelrank"
	"github.com/poiesic/reelrank/core"
	"github.com/poiesic/reelrank/ingestion"
	"github.com/poiesic/reelrank/normalize"
	"github.com/poiesic/reelrank/storage/badger"
	"github.com/poiesic/reelrank/vectorize"
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

var sampleMovies = []*core.Movie{
	{Name: "Spellbound", Storyline: "A young wizard boy discovers his powers and fights a dark lord threatening his school of magic."},
	{Name: "The Last Grimoire", Storyline: "An apprentice wizard steals a forbidden grimoire and must battle the dark sorcerer who wants it back."},
	{Name: "Rising Crust", Storyline: "A down on his luck chef moves to a small town and rebuilds his life by opening a bakery."},
	{Name: "Dough and Order", Storyline: "A strict pastry chef mentors a rebellious young baker as they compete for the town's baking prize."},
	{Name: "Starfall Station", Storyline: "The crew of a derelict space station must repair their reactor before their orbit decays into the planet below."},
	{Name: "Redline Horizon", Storyline: "A disgraced pilot takes one last cargo run across hostile space to clear her name."},
}

func main() {
	ctx := context.Background()

	backend, err := badger.OpenBackend("./catalog_db", false)
	if err != nil {
		panic(err)
	}
	defer backend.Close()

	repo, err := badger.NewMovieRepository(backend)
	if err != nil {
		panic(err)
	}
	defer repo.Close()

	pipeline, err := ingestion.NewPipeline(repo, normalize.New())
	if err != nil {
		panic(err)
	}
	defer pipeline.Release()

	stats, err := pipeline.Import(ctx, sampleMovies)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Seeded %d movies (%d duplicates)\n", stats.Inserted, stats.Duplicates)

	movies, err := repo.AllMovies(ctx)
	if err != nil {
		panic(err)
	}

	engine, err := reelrank.Train(movies, vectorize.Config{MinDocFreq: 1, MaxDocFreqRatio: 1.0})
	if err != nil {
		panic(err)
	}

	query := "Spellbound"
	if len(os.Args) > 1 {
		query = strings.Join(os.Args[1:], " ")
	}

	recs, err := engine.RecommendByTitle(query, 3)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Found %d hits for '%s'\n", len(recs), query)
	for i, rec := range recs {
		fmt.Printf("%d: '%s' [%0.2f%%]\n", i, rec.Name, rec.ScorePercent)
	}
}
