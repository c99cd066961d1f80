package applyer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sonnes/transmute/core"
)

// commandNameRE extracts the slash command name from <command-name>/foo</command-name>.
var commandNameRE = regexp.MustCompile(`<command-name>(/[^<]+)</command-name>`)

// commandArgsRE extracts arguments from <command-args>...</command-args>.
var commandArgsRE = regexp.MustCompile(`<command-args>([^<]*)</command-args>`)

// openTagRE matches an XML opening tag like <tag-name> or <tag_name attr="val">.
var openTagRE = regexp.MustCompile(`<([a-zA-Z_][a-zA-Z0-9_-]*)[^>]*>`)

// StripTags removes injected XML blocks from text.
//
// Slash commands (containing <command-name>) are shortened to "/name args".
// All other XML block elements are removed entirely, tag and content.
type StripTags struct{}

func (a *StripTags) Apply(s string) string {
	if m := commandNameRE.FindStringSubmatch(s); m != nil {
		name := m[1]
		if args := commandArgsRE.FindStringSubmatch(s); args != nil && strings.TrimSpace(args[1]) != "" {
			return name + " " + strings.TrimSpace(args[1])
		}
		return name
	}

	// Go regexp has no backreferences, so pair open and close tags by hand.
	for {
		loc := openTagRE.FindStringSubmatchIndex(s)
		if loc == nil {
			break
		}
		closeTag := "</" + s[loc[2]:loc[3]] + ">"
		closeIdx := strings.Index(s[loc[1]:], closeTag)
		if closeIdx < 0 {
			s = s[:loc[0]] + s[loc[1]:]
			continue
		}
		s = s[:loc[0]] + s[loc[1]+closeIdx+len(closeTag):]
	}

	return strings.TrimSpace(s)
}

// Summary replaces text with a line count like "[output: 245 lines]".
type Summary struct {
	// Label names what was summarized. Defaults to "text".
	Label string
}

func (a *Summary) Apply(s string) string {
	label := a.Label
	if label == "" {
		label = "text"
	}
	n := core.CountLines(s)
	if n == 1 {
		return fmt.Sprintf("[%s: 1 line]", label)
	}
	return fmt.Sprintf("[%s: %d lines]", label, n)
}
