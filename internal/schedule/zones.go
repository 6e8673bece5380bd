package schedule

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// ZoneLookup maps a venue location string to an IANA timezone name. The
// table is small and keyed by free-form venue names, so it is injected
// configuration rather than code: venue coverage grows by editing the table.
type ZoneLookup map[string]string

// Resolve returns the IANA zone name for a venue. Venues absent from the
// table resolve to UTC rather than failing.
func (z ZoneLookup) Resolve(location string) string {
	if name, ok := z[location]; ok && name != "" {
		return name
	}
	return "UTC"
}

// DefaultZones covers the venues of the current document family.
func DefaultZones() ZoneLookup {
	return ZoneLookup{
		"Marina Bay": "Asia/Singapore",
		"Monza":      "Europe/Rome",
		"Baku":       "Asia/Baku",
	}
}

// LoadZones reads a venue-to-timezone table from a YAML file. A missing
// path yields the default table.
func LoadZones(path string) (ZoneLookup, error) {
	if path == "" {
		return DefaultZones(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultZones(), nil
		}
		return nil, fmt.Errorf("read timezone table: %w", err)
	}

	var zones ZoneLookup
	if err := yaml.Unmarshal(data, &zones); err != nil {
		return nil, fmt.Errorf("parse timezone table: %w", err)
	}
	return zones, nil
}
