// Package config loads expect.Config from YAML files.
//
// Files use snake_case keys (include_stack, show_diff, truncate_threshold).
// Unset keys keep their defaults and unknown keys are rejected.
package config
