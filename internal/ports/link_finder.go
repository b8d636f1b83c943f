package ports

// LinkFinder defines the contract for discovering candidate URLs in free text
type LinkFinder interface {
	// FindLinks returns the substrings of text that look like URLs, in order of appearance
	FindLinks(text string) []string
}
