// Package sample generates deterministic synthetic hitter profiles for
// local runs and load experiments when no real profile file is configured.
package sample

import (
	"fmt"
	"math/rand"

	"github.com/parkfit/parkfit/internal/domain/model"
)

// Archetype cases. The mix skews toward average hitters the way real
// populations do, with sluggers and elite contact hitters rarer.
const (
	caseAverageHitter = iota
	caseSlugger
	caseContactHitter
	caseGroundBaller
	casePullHitter
	caseFlyBaller
	archetypeCount
)

// Generation ranges per archetype, mph / degrees / feet.
const (
	averageEVMin, averageEVRange = 84.0, 14.0
	sluggerEVMin, sluggerEVRange = 98.0, 16.0
	contactEVMin, contactEVRange = 82.0, 10.0

	averageLAMin, averageLARange = 0.0, 30.0
	groundLAMin, groundLARange   = -25.0, 25.0
	flyLAMin, flyLARange         = 25.0, 25.0

	sprayFullMin, sprayFullRange = -44.0, 88.0
	sprayPullMin, sprayPullRange = -44.0, 30.0

	distancePerMPH = 3.2
	distanceBase   = -150.0
	distanceJitter = 40.0
)

const (
	minEventsPerHitter = 40
	eventsPerHitterVar = 160
	minPA              = 150
	paVariance         = 500

	// A slice of events is emitted without spray or distance so the
	// exclusion accounting paths always have something to count.
	missingFieldOdds = 12
)

// Config controls synthetic profile generation.
type Config struct {
	// Hitters is the number of profiles to generate.
	Hitters int

	// Seed drives the generator. The same seed always produces the same
	// profiles.
	Seed int64
}

// Profiles builds Config.Hitters synthetic profiles.
func Profiles(cfg Config) []model.HitterProfile {
	rng := rand.New(rand.NewSource(cfg.Seed))
	profiles := make([]model.HitterProfile, cfg.Hitters)
	for i := range profiles {
		profiles[i] = generateProfile(rng, i)
	}
	return profiles
}

func generateProfile(rng *rand.Rand, index int) model.HitterProfile {
	archetype := rng.Intn(archetypeCount)
	n := minEventsPerHitter + rng.Intn(eventsPerHitterVar)
	events := make([]model.BattedBallEvent, n)
	for i := range events {
		events[i] = generateEvent(rng, archetype)
	}
	return model.HitterProfile{
		ID:               fmt.Sprintf("sample-%04d", index),
		Name:             fmt.Sprintf("Sample Hitter %d", index),
		PlateAppearances: minPA + rng.Intn(paVariance),
		Events:           events,
	}
}

func generateEvent(rng *rand.Rand, archetype int) model.BattedBallEvent {
	var ev, la float64
	switch archetype {
	case caseSlugger:
		ev = sluggerEVMin + rng.Float64()*sluggerEVRange
		la = averageLAMin + rng.Float64()*averageLARange
	case caseContactHitter:
		ev = contactEVMin + rng.Float64()*contactEVRange
		la = averageLAMin + rng.Float64()*averageLARange
	case caseGroundBaller:
		ev = averageEVMin + rng.Float64()*averageEVRange
		la = groundLAMin + rng.Float64()*groundLARange
	case caseFlyBaller:
		ev = averageEVMin + rng.Float64()*averageEVRange
		la = flyLAMin + rng.Float64()*flyLARange
	default:
		ev = averageEVMin + rng.Float64()*averageEVRange
		la = averageLAMin + rng.Float64()*averageLARange
	}

	event := model.BattedBallEvent{ExitVelocity: ev, LaunchAngle: la}

	if rng.Intn(missingFieldOdds) == 0 {
		return event
	}

	spray := sprayFullMin + rng.Float64()*sprayFullRange
	if archetype == casePullHitter {
		spray = sprayPullMin + rng.Float64()*sprayPullRange
	}
	dist := distanceBase + ev*distancePerMPH + rng.Float64()*distanceJitter
	if dist < 0 {
		dist = 0
	}
	event.SprayAngle = model.Float(spray)
	event.Distance = model.Float(dist)
	return event
}
