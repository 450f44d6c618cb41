package main

import (
	"encoding/json"
	"fmt"

	"github.com/aglyzov/go-trie/trie"
)

func main() {
	tr := trie.NewRadix()
	tr.Add("alpha")
	tr.Add("alphabet")
	tr.Add("alpine")
	tr.Add("beta")

	fmt.Print(tr)

	fmt.Println("words:", tr.Words())
	fmt.Println("branches:", tr.Branches())
	fmt.Println("longest common prefix:", tr.LongestCommonPrefix())
	fmt.Println("2-grams:", tr.NGrams(2))

	sub := tr.SubTrie("alp")
	fmt.Println("after 'alp':", sub.Words())

	view := tr.Immutable()
	tr.Add("gamma")
	fmt.Println("view sees gamma:", view.Has("gamma"))

	data, err := json.Marshal(tr)
	if err != nil {
		panic(err)
	}
	fmt.Printf("wire form: %s\n", data)

	back := new(trie.Trie)
	if err := json.Unmarshal(data, back); err != nil {
		panic(err)
	}
	fmt.Println("round trip equal:", tr.Equal(back))
}
