// Package strategy provides example decision strategies. They double as
// references for writing real ones: a strategy is a pure function of the
// player ID, the world, and the round's entity snapshot.
package strategy

import (
	"math/rand"

	"github.com/wreien/beeeees/pkg/game"
)

var cardinals = []game.Direction{
	game.DirectionNorth,
	game.DirectionEast,
	game.DirectionSouth,
	game.DirectionWest,
}

// Random moves each of the player's bees in a uniformly random cardinal
// direction.
func Random(player game.PlayerID, world *game.World, entities *game.Entities) game.Moves {
	moves := make(game.Moves)
	for _, bee := range entities.BeesFor(player) {
		moves[bee.ID] = cardinals[rand.Intn(len(cardinals))]
	}
	return moves
}

// NearestFlower sends bees carrying pollen back to the hive and everyone
// else toward the closest flower by Manhattan distance. With no flowers
// on the map, all bees head home.
func NearestFlower(player game.PlayerID, world *game.World, entities *game.Entities) game.Moves {
	moves := make(game.Moves)
	hive, hasHive := entities.HiveFor(player)
	for _, bee := range entities.BeesFor(player) {
		if bee.Pollen > 0 || len(entities.Flowers) == 0 {
			if hasHive {
				_, moves[bee.ID] = stepToPoint(bee.Position, hive.Position)
			} else {
				moves[bee.ID] = game.DirectionNone
			}
			continue
		}
		moves[bee.ID] = stepToNearestFlower(bee, entities)
	}
	return moves
}

// stepToPoint returns the Manhattan distance to the end point and the
// first step to take towards it. Already being there yields no move.
func stepToPoint(start, end game.Position) (int, game.Direction) {
	dist := abs(end.X-start.X) + abs(end.Y-start.Y)
	switch {
	case start.X > end.X:
		return dist, game.DirectionWest
	case start.X < end.X:
		return dist, game.DirectionEast
	case start.Y > end.Y:
		return dist, game.DirectionSouth
	case start.Y < end.Y:
		return dist, game.DirectionNorth
	}
	return dist, game.DirectionNone
}

func stepToNearestFlower(bee game.Bee, entities *game.Entities) game.Direction {
	best := game.DirectionNone
	bestDist := -1
	for _, flower := range entities.Flowers {
		dist, dir := stepToPoint(bee.Position, flower.Position)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = dir
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
