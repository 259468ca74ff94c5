package engine

// MaxMoves bounds a single Run. Every accepted reveal uncovers at least one
// cell, so a game never legitimately needs more moves than it has cells.
const MaxMoves = 10000
