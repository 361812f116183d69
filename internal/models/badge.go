package models

import (
	"regexp"
	"strings"
)

var toolTagPattern = regexp.MustCompile(`^\(tool:\s*([^)]+)\)\s*`)

// SplitToolTag extracts a leading "(tool: NAME)" marker from an assistant
// reply. It returns the tool name and the remaining body. Replies without the
// marker pass through unchanged with an empty name.
func SplitToolTag(text string) (name, body string) {
	m := toolTagPattern.FindStringSubmatch(text)
	if m == nil {
		return "", text
	}
	return strings.TrimSpace(m[1]), text[len(m[0]):]
}
