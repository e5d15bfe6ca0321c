// Package generator builds believable fake personal and financial records on
// top of a refdata.Store.
package generator

import (
	"time"

	"github.com/n0rdy/mockdata/refdata"
)

const (
	DefaultFirstNameMaxRank        = 250
	DefaultLastNameMaxRank         = 250
	DefaultSecondaryLineLikelihood = DefaultLikelihood
	DefaultSelfEmployedLikelihood  = 5
)

type Generator struct {
	store                   refdata.Store
	rnd                     *Random
	now                     func() time.Time
	firstNameMaxRank        int
	lastNameMaxRank         int
	secondaryLineLikelihood int
	selfEmployedLikelihood  int
}

type Option func(*Generator)

// WithRandom replaces the randomly seeded source.
func WithRandom(r *Random) Option {
	return func(g *Generator) {
		if r != nil {
			g.rnd = r
		}
	}
}

func WithFirstNameMaxRank(rank int) Option {
	return func(g *Generator) {
		g.firstNameMaxRank = rank
	}
}

func WithLastNameMaxRank(rank int) Option {
	return func(g *Generator) {
		g.lastNameMaxRank = rank
	}
}

// WithSecondaryLineLikelihood sets the booleanLikely factor deciding whether an
// address gets a line_2.
func WithSecondaryLineLikelihood(likely int) Option {
	return func(g *Generator) {
		g.secondaryLineLikelihood = likely
	}
}

// WithSelfEmployedLikelihood sets the booleanLikely factor deciding whether a
// person's company is named after them.
func WithSelfEmployedLikelihood(likely int) Option {
	return func(g *Generator) {
		g.selfEmployedLikelihood = likely
	}
}

// WithClock sets the time source the default date ranges are relative to.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

func New(store refdata.Store, opts ...Option) *Generator {
	g := &Generator{
		store:                   store,
		now:                     time.Now,
		firstNameMaxRank:        DefaultFirstNameMaxRank,
		lastNameMaxRank:         DefaultLastNameMaxRank,
		secondaryLineLikelihood: DefaultSecondaryLineLikelihood,
		selfEmployedLikelihood:  DefaultSelfEmployedLikelihood,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = NewRandom(0)
	}
	return g
}

func (g *Generator) Random() *Random {
	return g.rnd
}
