package inline

import "regexp"

// Precompiled patterns. Both are non-greedy; the link pattern also matches
// inside image syntax, which is why images are split out first.
var (
	imagePattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	linkPattern  = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// Match is one extracted image or link: its label (alt text for images)
// and its URL.
type Match struct {
	Text string
	URL  string
}

// ExtractImages returns every ![alt](url) in text, left to right.
func ExtractImages(text string) []Match {
	return extract(imagePattern, text)
}

// ExtractLinks returns every [label](url) in text, left to right.
func ExtractLinks(text string) []Match {
	return extract(linkPattern, text)
}

func extract(re *regexp.Regexp, text string) []Match {
	found := re.FindAllStringSubmatch(text, -1)
	if len(found) == 0 {
		return nil
	}
	matches := make([]Match, 0, len(found))
	for _, m := range found {
		matches = append(matches, Match{Text: m[1], URL: m[2]})
	}
	return matches
}
