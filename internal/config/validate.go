package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("database.max_conns must be > 0 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns < 0 {
		return fmt.Errorf("database.min_conns must be >= 0 (got %d)", c.Database.MinConns)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Mirror.BackfillPageSize <= 0 {
		return fmt.Errorf("mirror.backfill_page_size must be > 0 (got %d)", c.Mirror.BackfillPageSize)
	}
	if c.Mirror.BackfillTimeout <= 0 {
		return fmt.Errorf("mirror.backfill_timeout must be > 0 (got %v)", c.Mirror.BackfillTimeout)
	}

	return nil
}
