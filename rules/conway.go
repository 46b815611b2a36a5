package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

/*
ApplyBitPlaneRules applies the same rule to every column of a row at once.

s1, s2, s4 and s8 are the bit planes of the 3x3 neighbourhood total, which
counts the cell itself. On that total the rule becomes
total == 3 || (alive && total == 4):

	(s1 & s2 & !s4) | (state & !s1 & !s2 & s4), masked by !s8
*/
func ApplyBitPlaneRules(s1, s2, s4, s8, state uint64) uint64 {
	return ((s1 & s2 &^ s4) | (state &^ s1 &^ s2 & s4)) &^ s8
}
