// Package repository defines the result store interface and errors.
package repository

import (
	"context"

	"github.com/parkfit/parkfit/internal/domain/model"
	"github.com/parkfit/parkfit/internal/domain/types"
)

// Store provides read/write access to scored hitter-stadium results.
type Store interface {
	// Add records a finished result. A result for the same hitter-stadium
	// pair replaces the previous one.
	Add(ctx context.Context, result model.MatchResult) error

	// All returns every stored result, ordered by hitter id then
	// stadium id.
	All(ctx context.Context) ([]model.MatchResult, error)

	// Get returns the result for one hitter-stadium pair.
	// Returns ErrNotFound if the pair was never scored.
	Get(ctx context.Context, hitterID, stadiumID string) (model.MatchResult, error)

	// TopStadiums ranks a hitter's stadiums by overall score desc.
	// Returns ErrNotFound if the hitter has no results.
	TopStadiums(ctx context.Context, hitterID string, n int) ([]types.StadiumRank, error)

	// TopHitters ranks a stadium's hitters by overall score desc.
	// Returns ErrNotFound if the stadium has no results.
	TopHitters(ctx context.Context, stadiumID string, n int) ([]types.HitterRank, error)

	// StadiumAverages summarizes each park's mean overall score across all
	// scored hitters, ordered by mean score desc.
	StadiumAverages(ctx context.Context) ([]types.StadiumAverage, error)

	// Count returns the number of stored results.
	Count(ctx context.Context) int

	// Reset drops all stored results.
	Reset(ctx context.Context)
}
