package links

import (
	"regexp"

	"mvdan.cc/xurls/v2"
)

// XurlsFinder implements ports.LinkFinder with xurls' strict matcher
//
// Only links carrying a scheme are returned. Bare "example.com" mentions are
// skipped since they would not parse as absolute URLs anyway.
type XurlsFinder struct {
	re *regexp.Regexp
}

// NewXurlsFinder creates a new link finder
func NewXurlsFinder() *XurlsFinder {
	return &XurlsFinder{re: xurls.Strict()}
}

// FindLinks returns every URL found in text, in order of appearance
func (f *XurlsFinder) FindLinks(text string) []string {
	if text == "" {
		return nil
	}
	return f.re.FindAllString(text, -1)
}
