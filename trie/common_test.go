package trie

import (
	"sort"

	"github.com/brianvoe/gofakeit/v6"
)

// fakeWords returns total distinct pseudo-random words. Roughly half of
// them extend another generated word so that shared prefixes and splits
// actually occur.
func fakeWords(total int, seed int64) []string {
	var (
		fake = gofakeit.New(seed)
		seen = make(map[string]struct{}, total)
		out  = make([]string, 0, total)
	)

	for len(out) < total {
		word := fake.Word()
		if fake.Bool() {
			word += fake.Word()
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}

	return out
}

func sortedCopy(words []string) []string {
	out := append([]string(nil), words...)
	sort.Strings(out)
	return out
}

// prefixes returns every strict and full prefix of the word, the empty
// string included.
func prefixes(word string) []string {
	runes := []rune(word)
	out := make([]string, 0, len(runes)+1)
	for i := 0; i <= len(runes); i++ {
		out = append(out, string(runes[:i]))
	}
	return out
}
