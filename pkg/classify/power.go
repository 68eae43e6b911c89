package classify

import "strings"

// PowerState is a closed VM power-state category.
type PowerState string

// Power states. PowerOff is the default when the input matches nothing,
// which covers both genuinely powered-off machines and unparseable exports.
const (
	PowerOn        PowerState = "poweredOn"
	PowerOff       PowerState = "poweredOff"
	PowerSuspended PowerState = "suspended"
)

// powerRule maps a substring signature onto a power state.
type powerRule struct {
	keywords []string
	state    PowerState
}

// powerRules is evaluated top to bottom, first match wins.
var powerRules = []powerRule{
	{[]string{"on", "running"}, PowerOn},
	{[]string{"suspend"}, PowerSuspended},
}

// PowerStateOf classifies a free-text power-state string. Matching is
// case-insensitive substring search; unmatched input is PowerOff.
func PowerStateOf(text string) PowerState {
	text = strings.ToLower(text)
	for _, rule := range powerRules {
		if containsAny(text, rule.keywords) {
			return rule.state
		}
	}
	return PowerOff
}
