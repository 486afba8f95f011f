// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package counterconfig

import "fmt"

// PresetNames returns all available preset names.
func PresetNames() []string {
	return []string{"default", "compact", "large"}
}

// GetParametersByName resolves a preset name to its Parameters, the way a
// replica's config file picks a named profile instead of spelling out every
// field.
func GetParametersByName(name string) (Parameters, error) {
	switch name {
	case "default":
		return Default(), nil
	case "compact":
		return Compact(), nil
	case "large":
		return Large(), nil
	default:
		return Parameters{}, fmt.Errorf("unknown counter-context preset %q", name)
	}
}
