package classify

import "strings"

// RoleUnknown is the display role for availability statuses outside the
// closed enumeration.
const RoleUnknown = "Unknown"

// availabilityRoles maps hardware-pool availability statuses onto display
// roles. Dispatch is exact match on the trimmed, lower-cased status; unlike
// vendor and power-state classification there is no substring scanning here,
// because pool statuses come from a catalog field, not free text.
var availabilityRoles = map[string]string{
	"available":   "Available",
	"allocated":   "In Use",
	"maintenance": "Maintenance",
	"retired":     "Retired",
	"failed":      "Failed",
}

// AvailabilityRoleOf returns the display role for a hardware-pool
// availability status. Unrecognized statuses map to RoleUnknown.
func AvailabilityRoleOf(status string) string {
	if role, ok := availabilityRoles[strings.ToLower(strings.TrimSpace(status))]; ok {
		return role
	}
	return RoleUnknown
}
