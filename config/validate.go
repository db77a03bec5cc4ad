package config

import (
	"errors"
	"fmt"
)

// Validate checks that every value parses and every event override is usable
func (o Options) Validate() error {
	var errs []error
	if _, err := o.FormatOptions(); err != nil {
		errs = append(errs, fmt.Errorf("format: %w", err))
	}
	if _, err := o.Level(); err != nil {
		errs = append(errs, fmt.Errorf("min_level: %w", err))
	}
	if _, err := parseBehavior(o.Warnings.DefaultBehavior); err != nil {
		errs = append(errs, fmt.Errorf("warnings.default_behavior: %w", err))
	}

	seen := make(map[int]struct{}, len(o.Warnings.Events))
	for i, ev := range o.Warnings.Events {
		switch {
		case ev.ID <= 0:
			errs = append(errs, fmt.Errorf("warnings.events[%d]: %w: id must be positive", i, ErrInvalidEvent))
			continue
		case ev.Level == "" && ev.Behavior == "":
			errs = append(errs, fmt.Errorf("warnings.events[%d]: %w: set level or behavior", i, ErrInvalidEvent))
			continue
		}
		if _, dup := seen[ev.ID]; dup {
			errs = append(errs, fmt.Errorf("warnings.events[%d]: %w: duplicate id %d", i, ErrInvalidEvent, ev.ID))
		}
		seen[ev.ID] = struct{}{}
		if ev.Level != "" {
			if _, err := parseLevel(ev.Level); err != nil {
				errs = append(errs, fmt.Errorf("warnings.events[%d].level: %w", i, err))
			}
		}
		if ev.Behavior != "" {
			if _, err := parseBehavior(ev.Behavior); err != nil {
				errs = append(errs, fmt.Errorf("warnings.events[%d].behavior: %w", i, err))
			}
		}
	}
	return errors.Join(errs...)
}
