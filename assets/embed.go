// Package assets embeds the offline word lists, one file per language code
// under words/. Lines are trimmed and lower-cased; blanks and "#" comments
// are skipped.
package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed words/*.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// WordList returns the embedded words for a language code such as "pt-br".
func WordList(code string) ([]string, error) {
	return readLines("words/" + code + ".txt")
}
