package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextAggregateFirstVote(t *testing.T) {
	rating, votes := NextAggregate(0, 0, 4)
	assert.Equal(t, 4.0, rating)
	assert.Equal(t, 1, votes)
}

func TestNextAggregateWeightedMean(t *testing.T) {
	// 5, then 4, then 3 averages to 4.0 over three votes.
	rating, votes := NextAggregate(0, 0, 5)
	rating, votes = NextAggregate(rating, votes, 4)
	rating, votes = NextAggregate(rating, votes, 3)

	assert.Equal(t, 4.0, rating)
	assert.Equal(t, 3, votes)
}

func TestNextAggregateRoundsToOneDecimal(t *testing.T) {
	// (5 + 4) / 2 = 4.5, then (4.5*2 + 4) / 3 = 4.333... -> 4.3
	rating, votes := NextAggregate(5, 1, 4)
	assert.Equal(t, 4.5, rating)

	rating, votes = NextAggregate(rating, votes, 4)
	assert.Equal(t, 4.3, rating)
	assert.Equal(t, 3, votes)
}
