package game

// Bee is a player-controlled unit. A bee that is missing from a later
// update has died or been removed; no state is tracked across rounds.
type Bee struct {
	ID       BeeID    `json:"id"`
	Player   PlayerID `json:"player"`
	Energy   int      `json:"energy"`
	Pollen   int      `json:"pollen"`
	Position Position `json:"position"`
}

// Flower produces pollen for bees to collect.
type Flower struct {
	Pollen       int      `json:"pollen"`
	IsPollinated bool     `json:"is_pollinated"`
	Position     Position `json:"position"`
}

// Hive is a player's home. Each player has exactly one, stable for the
// whole session.
type Hive struct {
	Player   PlayerID `json:"player"`
	Position Position `json:"position"`
}

// Entities is one round's snapshot of everything alive in the game.
// It is rebuilt wholesale from each update message; the previous
// snapshot is discarded rather than diffed or patched.
type Entities struct {
	Bees    []Bee    `json:"bees"`
	Flowers []Flower `json:"flowers"`
	Hives   []Hive   `json:"hives"`
}

// BeesFor returns the bees owned by the given player.
func (e *Entities) BeesFor(player PlayerID) []Bee {
	var bees []Bee
	for _, bee := range e.Bees {
		if bee.Player == player {
			bees = append(bees, bee)
		}
	}
	return bees
}

// HiveFor returns the hive for the given player.
func (e *Entities) HiveFor(player PlayerID) (Hive, bool) {
	for _, hive := range e.Hives {
		if hive.Player == player {
			return hive, true
		}
	}
	return Hive{}, false
}

// Moves maps each bee to the direction it should move this round.
// Bees without an entry stay where they are.
type Moves map[BeeID]Direction
