// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/eurovision-table/store"
	"github.com/danielhkuo/eurovision-table/testutil"
)

func TestRun_RealData(t *testing.T) {
	ctx := context.Background()
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)

	require.NoError(t, Run(ctx, s, Options{UseRealData: true}))

	want := map[string]int{"Semi-final 1": 15, "Semi-final 2": 15, "Final": 26}
	for name, n := range want {
		stage, err := s.FindOrCreateStage(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, n, testutil.CountRows(t, conn, "stage_country", stage.ID), name)
	}

	counts, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, counts.Stages)
	assert.Equal(t, 37, counts.Countries)

	final, err := s.FindOrCreateStage(ctx, "Final")
	require.NoError(t, err)
	roster, err := s.ListStageCountries(ctx, final.ID)
	require.NoError(t, err)
	require.NotEmpty(t, roster)
	assert.Equal(t, "Sweden", roster[0].DisplayName)
	require.NotNil(t, roster[0].Order)
	assert.Equal(t, 1, *roster[0].Order)
}

func TestRun_Idempotent(t *testing.T) {
	ctx := context.Background()
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)

	require.NoError(t, Run(ctx, s, Options{UseRealData: true}))
	require.NoError(t, Run(ctx, s, Options{UseRealData: true}))

	counts, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, counts.Stages)
	assert.Equal(t, 37, counts.Countries)
	assert.Equal(t, 56, counts.StageCountries)
}

func TestRun_DummyData(t *testing.T) {
	ctx := context.Background()
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)

	rng := rand.New(rand.NewPCG(1, 2))
	require.NoError(t, Run(ctx, s, Options{Rand: rng}))

	counts, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, counts.Stages)
	assert.Equal(t, len(DummyCountries), counts.Countries)
	assert.GreaterOrEqual(t, counts.StageCountries, len(DummyCountries))
	assert.LessOrEqual(t, counts.StageCountries, 2*len(DummyCountries))
}

func TestDummyRosters_Positions(t *testing.T) {
	rosters := dummyRosters(rand.New(rand.NewPCG(7, 7)))

	seen := map[string]int{}
	for _, entries := range rosters {
		for i, e := range entries {
			assert.Equal(t, i+1, e.Position)
			seen[e.Country]++
		}
	}
	for _, c := range DummyCountries {
		assert.Contains(t, []int{1, 2}, seen[c], c)
	}
}
