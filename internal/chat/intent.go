package chat

import (
	"regexp"
	"strings"
)

// queryDirective matches an entire trimmed assistant reply of the form
// "query: <path>". Any leading or trailing text breaks the anchor and the
// reply is treated as a plain message instead.
var queryDirective = regexp.MustCompile(`(?i)^query:\s*<(.+)>$`)

// ExtractQuery resolves an assistant reply into a client-side navigation
// path. Directive replies are silent routing actions: they are never shown
// in the transcript.
func ExtractQuery(text string) (string, bool) {
	match := queryDirective.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return "", false
	}
	return "/" + match[1], true
}
