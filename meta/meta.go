// meta/meta.go
package meta

// Board size bounds offered to players. The engine itself accepts any
// positive size; these are policy for the runner.
const MIN_SIDE = 5
const MAX_SIDE = 20

// Mine count bounds offered to players. Still capped below rows*cols by the engine.
const MIN_MINES = 1
const MAX_MINES = 200

