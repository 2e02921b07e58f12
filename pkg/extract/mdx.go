package extract

import "regexp"

var fenceRe = regexp.MustCompile("(?ms)^```(?:jsx|tsx|js|ts)[ \t]*\r?\n(.*?)^```[ \t]*$")

// CodeBlocks returns the contents of fenced code blocks tagged as JS, JSX,
// TS, or TSX, in document order. Blocks with other info strings (or none)
// are ignored.
func CodeBlocks(document string) []string {
	var blocks []string
	for _, match := range fenceRe.FindAllStringSubmatch(document, -1) {
		blocks = append(blocks, match[1])
	}
	return blocks
}
