package config

import (
	"fmt"

	"github.com/wtree/wt/internal/validate"
)

// Validate checks field values, naming the offending field on failure.
func (c Config) Validate() error {
	if c.Editor == "" {
		return fmt.Errorf("editor must not be empty")
	}
	if err := validateRemote(c.Remote); err != nil {
		return err
	}
	if c.LockTimeout <= 0 {
		return fmt.Errorf("lock_timeout must be positive, got %s", c.LockTimeout)
	}
	if err := ValidatePath(c.Log.File, "log.file"); err != nil {
		return err
	}
	for field, v := range map[string]int{
		"log.max_size_mb":  c.Log.MaxSizeMB,
		"log.max_backups":  c.Log.MaxBackups,
		"log.max_age_days": c.Log.MaxAgeDays,
	} {
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %d", field, v)
		}
	}
	return nil
}

func validateRemote(remote string) error {
	if remote == "" {
		return fmt.Errorf("remote must not be empty")
	}
	if err := validate.BranchName(remote); err != nil {
		return fmt.Errorf("invalid remote %q: %w", remote, err)
	}
	return nil
}
