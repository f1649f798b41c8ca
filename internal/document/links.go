package document

import (
	"regexp"
	"strings"

	"mvdan.cc/xurls/v2"
)

var linkRe = mustMatchingScheme(`https?://`)

func mustMatchingScheme(scheme string) *regexp.Regexp {
	re, err := xurls.StrictMatchingScheme(scheme)
	if err != nil {
		panic("document: link pattern: " + err.Error())
	}

	return re
}

// Links returns the unique http(s) URLs found in text in order of appearance.
func Links(text string) []string {
	matches := linkRe.FindAllString(text, -1)
	links := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))

	for _, m := range matches {
		link := strings.TrimSpace(m)
		if _, ok := seen[link]; ok {
			continue
		}

		seen[link] = struct{}{}
		links = append(links, link)
	}

	return links
}
