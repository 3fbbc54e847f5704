package validation

import "regexp"

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-_.]{0,30}[A-Za-z0-9]$`)

// ValidateUsername accepts caller-chosen display names. Machine-minted guest
// names are not routed through this check.
func ValidateUsername(username string) bool {
	return usernamePattern.MatchString(username)
}
