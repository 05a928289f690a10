package model

// Fixed board dimensions of the product. The grid size is not a user
// knob; only the mine count is. Config carries the dimensions anyway so
// tests can build small boards.
const (
	DefaultRows = 1000
	DefaultCols = 1000
)

// Config describes one game at construction time.
// Seed feeds the mine placement PRNG; equal configs produce equal boards.
type Config struct {
	Rows int
	Cols int
	Seed int64
}

// DefaultConfig returns the fixed product dimensions with the given seed.
func DefaultConfig(seed int64) Config {
	return Config{Rows: DefaultRows, Cols: DefaultCols, Seed: seed}
}

// Size returns the total number of cells.
func (c Config) Size() int {
	return c.Rows * c.Cols
}
