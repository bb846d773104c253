package rules

/*
Next returns the state of a cell in the following generation.

Conway's Game of Life (B3/S23): a dead cell with exactly 3 live neighbors is born,
a live cell with 2 or 3 live neighbors survives, every other cell is dead.
*/
func Next(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
