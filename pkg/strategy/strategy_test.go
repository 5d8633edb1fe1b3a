package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wreien/beeeees/pkg/game"
)

func TestRandomMovesOnlyOwnBees(t *testing.T) {
	entities := &game.Entities{
		Bees: []game.Bee{
			{ID: 1, Player: 3},
			{ID: 2, Player: 4},
			{ID: 3, Player: 3},
		},
	}

	moves := Random(3, nil, entities)
	require.Len(t, moves, 2)
	assert.NotContains(t, moves, game.BeeID(2))
	for bee, dir := range moves {
		assert.Contains(t, cardinals, dir, "bee %d", bee)
	}
}

func TestNearestFlower(t *testing.T) {
	hive := game.Hive{Player: 3, Position: game.Position{X: 0, Y: 0}}

	tests := []struct {
		name     string
		bee      game.Bee
		flowers  []game.Flower
		wantMove game.Direction
	}{
		{
			name:     "no flowers and already home",
			bee:      game.Bee{ID: 1, Player: 3, Position: game.Position{X: 0, Y: 0}},
			wantMove: game.DirectionNone,
		},
		{
			name:     "no flowers heads home",
			bee:      game.Bee{ID: 1, Player: 3, Position: game.Position{X: 2, Y: 0}},
			wantMove: game.DirectionWest,
		},
		{
			name: "moves toward the only flower",
			bee:  game.Bee{ID: 1, Player: 3, Position: game.Position{X: 0, Y: 0}},
			flowers: []game.Flower{
				{Position: game.Position{X: 0, Y: 3}},
			},
			wantMove: game.DirectionNorth,
		},
		{
			name: "prefers the closer flower",
			bee:  game.Bee{ID: 1, Player: 3, Position: game.Position{X: 2, Y: 2}},
			flowers: []game.Flower{
				{Position: game.Position{X: 8, Y: 2}},
				{Position: game.Position{X: 2, Y: 1}},
			},
			wantMove: game.DirectionSouth,
		},
		{
			name: "carrying pollen heads home despite flowers",
			bee:  game.Bee{ID: 1, Player: 3, Pollen: 2, Position: game.Position{X: 1, Y: 0}},
			flowers: []game.Flower{
				{Position: game.Position{X: 1, Y: 1}},
			},
			wantMove: game.DirectionWest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := &game.Entities{
				Bees:    []game.Bee{tt.bee},
				Flowers: tt.flowers,
				Hives:   []game.Hive{hive},
			}
			moves := NearestFlower(3, nil, entities)
			require.Len(t, moves, 1)
			assert.Equal(t, tt.wantMove, moves[tt.bee.ID])
		})
	}
}

func TestNearestFlowerIgnoresOtherPlayers(t *testing.T) {
	entities := &game.Entities{
		Bees: []game.Bee{
			{ID: 1, Player: 3, Position: game.Position{X: 1, Y: 1}},
			{ID: 2, Player: 4, Position: game.Position{X: 1, Y: 1}},
		},
		Hives: []game.Hive{
			{Player: 3, Position: game.Position{X: 0, Y: 0}},
			{Player: 4, Position: game.Position{X: 5, Y: 5}},
		},
	}

	moves := NearestFlower(3, nil, entities)
	require.Len(t, moves, 1)
	assert.Contains(t, moves, game.BeeID(1))
}

func TestNearestFlowerWithoutHive(t *testing.T) {
	entities := &game.Entities{
		Bees: []game.Bee{
			{ID: 1, Player: 3, Position: game.Position{X: 1, Y: 1}},
		},
	}

	moves := NearestFlower(3, nil, entities)
	require.Len(t, moves, 1)
	assert.Equal(t, game.DirectionNone, moves[game.BeeID(1)])
}
