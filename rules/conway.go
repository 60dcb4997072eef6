package rules

// Neighbor counts that keep a live cell alive or bring a dead cell to life
const (
	SurviveMin = 2
	SurviveMax = 3
	BirthCount = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell with fewer than two or more than three live neighbors dies; a live
cell with two or three survives; a dead cell with exactly three is born.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= SurviveMin && neighbors <= SurviveMax
	}
	return neighbors == BirthCount
}
