package useragent

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToolAgents are lower-case fragments of User-Agent values sent by
// non-interactive HTTP clients.
var ToolAgents = []string{"curl", "wget", "apache"}

func IsToolAgent(ua string) bool {
	if ua == "" {
		return false
	}
	lowered := cases.Lower(language.Und).String(ua)
	for _, agent := range ToolAgents {
		if strings.Contains(lowered, agent) {
			return true
		}
	}
	return false
}
