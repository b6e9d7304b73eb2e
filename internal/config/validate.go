package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

var (
	// ErrInvalidSourceExtension indicates a malformed source extension
	ErrInvalidSourceExtension = errors.New("invalid source extension")

	// ErrInvalidHeaderExtension indicates a malformed header extension
	ErrInvalidHeaderExtension = errors.New("invalid header extension")

	// ErrEmptyInclude indicates missing discovery include patterns
	ErrEmptyInclude = errors.New("empty discovery include patterns")

	// ErrInvalidPattern indicates a glob pattern that does not compile
	ErrInvalidPattern = errors.New("invalid discovery pattern")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validateExtensions(&cfg.Extensions); err != nil {
		errs = append(errs, err)
	}
	if err := validateDiscovery(&cfg.Discovery); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func validateExtensions(ext *ExtensionsConfig) error {
	if !strings.HasPrefix(ext.Source, ".") || len(ext.Source) < 2 {
		return fmt.Errorf("%w: %q must start with a dot", ErrInvalidSourceExtension, ext.Source)
	}
	if !strings.HasPrefix(ext.Header, ".") || len(ext.Header) < 2 {
		return fmt.Errorf("%w: %q must start with a dot", ErrInvalidHeaderExtension, ext.Header)
	}
	return nil
}

func validateDiscovery(d *DiscoveryConfig) error {
	if len(d.Include) == 0 {
		return ErrEmptyInclude
	}
	for _, pattern := range append(append([]string{}, d.Include...), d.Ignore...) {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
		}
	}
	return nil
}
