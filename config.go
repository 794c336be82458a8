package alloc

// Default block sizing and alignment for new arenas.
const (
	// DefaultMinBlockSize is the payload capacity of the first backing
	// blocks an arena creates (512 bytes).
	DefaultMinBlockSize = 512

	// DefaultMaxBlockSize is the ceiling the geometric growth policy
	// converges to (1 MiB). Blocks never grow past it except for one-off
	// blocks created for requests that are larger than the ceiling.
	DefaultMaxBlockSize = 1 << 20

	// DefaultAlignment is the boundary every allocation is rounded up to.
	// 8 bytes covers the natural alignment of every Go type.
	DefaultAlignment = 8
)

// Config controls block sizing and alignment for a single arena.
// The zero value selects the defaults, so independently configured
// arenas can coexist without touching package state.
type Config struct {
	// MinBlockSize is the capacity of the first blocks in the growth
	// sequence. Non-positive values select DefaultMinBlockSize.
	MinBlockSize int

	// MaxBlockSize caps the growth sequence. Non-positive values select
	// DefaultMaxBlockSize; values below MinBlockSize are raised to it.
	MaxBlockSize int

	// Alignment is the boundary every allocation size and address is
	// rounded up to. It must be a power of two; non-positive values
	// select DefaultAlignment and smaller values are raised to it.
	Alignment int
}

// withDefaults normalizes cfg the way NewArena expects it.
func (cfg Config) withDefaults() Config {
	if cfg.MinBlockSize <= 0 {
		cfg.MinBlockSize = DefaultMinBlockSize
	}
	if cfg.MaxBlockSize <= 0 {
		cfg.MaxBlockSize = DefaultMaxBlockSize
	}
	if cfg.MaxBlockSize < cfg.MinBlockSize {
		cfg.MaxBlockSize = cfg.MinBlockSize
	}
	if cfg.Alignment <= 0 {
		cfg.Alignment = DefaultAlignment
	}
	if cfg.Alignment&(cfg.Alignment-1) != 0 {
		panic("alloc: Alignment must be a power of two")
	}
	if cfg.Alignment < DefaultAlignment {
		cfg.Alignment = DefaultAlignment
	}
	return cfg
}
