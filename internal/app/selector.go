// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
package app

import (
	"math/rand/v2"
	"time"

	"github.com/jsamuelsen/motivation-page/internal/domain"
)

// DateSeed derives the selection seed from a calendar date.
// The seed reads as the date itself: August 29, 2026 becomes 20260829.
// Everyone who visits on the same day therefore sees the same selection,
// and the selection changes when the date does.
func DateSeed(date time.Time) uint64 {
	return uint64(date.Year())*10000 + uint64(date.Month())*100 + uint64(date.Day())
}

// SelectForDate picks the quote and poem for a calendar date.
//
// Both picks come from a single generator seeded with DateSeed, and the
// quote is always drawn before the poem. The order is load-bearing: the
// poem pick consumes the second value of the stream only when a quote
// was drawn, so adding quotes can change the day's poem but re-running
// the selection for the same store and date never does.
//
// Empty collections are skipped, not drawn from; a nil Quote or Poem in
// the result means that collection was empty.
func SelectForDate(store *domain.Store, date time.Time) *domain.DailySelection {
	rng := rand.New(rand.NewPCG(DateSeed(date), 0))

	sel := &domain.DailySelection{Date: date}

	if len(store.Quotes) > 0 {
		sel.Quote = &store.Quotes[rng.IntN(len(store.Quotes))]
	}
	if len(store.Poems) > 0 {
		sel.Poem = &store.Poems[rng.IntN(len(store.Poems))]
	}

	return sel
}
