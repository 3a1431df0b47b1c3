// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/danielhkuo/eurovision-table/roster"
	"github.com/danielhkuo/eurovision-table/store"
)

// Stage names created by the seed, in display order.
var StageNames = []string{"Semi-final 1", "Semi-final 2", "Final"}

// DummyCountries are used when real contest data is not requested.
var DummyCountries = []string{
	"Sweden", "Norway", "Denmark", "Finland", "Iceland",
	"Italy", "Spain", "Germany", "France", "Netherlands",
}

type Options struct {
	// UseRealData loads the 2023 rosters instead of random dummy assignments.
	UseRealData bool
	// Rand drives dummy assignment; nil uses a randomly seeded source.
	Rand *rand.Rand
}

// Run creates the stages and replaces every stage roster. Existing grades
// and users are left alone.
func Run(ctx context.Context, s *store.Store, opts Options) error {
	if opts.UseRealData {
		slog.Info("seeding with real Eurovision 2023 data")
	} else {
		slog.Info("seeding with dummy data")
	}

	rosters := dummyRosters(opts.Rand)
	if opts.UseRealData {
		rosters = Eurovision2023
	}

	err := s.WithTx(ctx, func(tx *store.Store) error {
		txManager := roster.New(roster.FromStore(tx))
		for _, name := range StageNames {
			stage, err := tx.FindOrCreateStage(ctx, name)
			if err != nil {
				return err
			}

			if _, err := txManager.LoadRoster(ctx, stage.ID, rosters[name], true); err != nil {
				return fmt.Errorf("stage %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	counts, err := s.Counts(ctx)
	if err != nil {
		return err
	}
	slog.Info("database seeded",
		"stages", counts.Stages,
		"countries", counts.Countries,
		"stage_countries", counts.StageCountries,
	)
	return nil
}

// dummyRosters puts each dummy country into one or two random stages,
// appending it after the stage's current last position.
func dummyRosters(rng *rand.Rand) map[string][]roster.Entry {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	rosters := make(map[string][]roster.Entry, len(StageNames))
	for _, country := range DummyCountries {
		k := 1 + rng.IntN(2)
		for _, i := range rng.Perm(len(StageNames))[:k] {
			stage := StageNames[i]
			rosters[stage] = append(rosters[stage], roster.Entry{
				Country:  country,
				Artist:   "Artist " + country,
				Song:     "Song " + country,
				Position: len(rosters[stage]) + 1,
			})
		}
	}
	return rosters
}
