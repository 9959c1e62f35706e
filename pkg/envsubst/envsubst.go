// Package envsubst expands ${NAME} and ${NAME:-default} references against
// the process environment. It is applied to raw configuration text before
// parsing.
package envsubst

import (
	"os"
	"regexp"
	"strings"

	"github.com/supporttools/homedash/pkg/logger"
)

// placeholderPattern matches ${NAME} and ${NAME:-default}.
// The name must not contain '}' or ':'; the default may be empty.
var placeholderPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// Expand replaces every ${NAME} or ${NAME:-default} placeholder in s with
// the environment value for NAME. An unset NAME with a default substitutes
// the default; an unset NAME without one leaves the placeholder text
// unchanged and logs a warning. Substituted text is not re-scanned.
func Expand(s string) string {
	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		groups := placeholderPattern.FindStringSubmatch(match)
		name := groups[1]

		if value, ok := os.LookupEnv(name); ok {
			return value
		}

		// The name cannot contain ':', so the separator's presence
		// distinguishes an empty default from no default at all.
		if strings.Contains(match, ":-") {
			return groups[2]
		}

		logger.Warnf("Environment variable %s not found and no default provided", name)
		return match
	})
}
