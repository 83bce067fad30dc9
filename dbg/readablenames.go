package dbg

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts runs and other values into readable names, which are easier to
// tell apart in file names and report headers than timestamps or seeds. Names
// are memoized per key, so asking twice gives the same name, but the memo is
// never cleared.

var (
	mu   sync.Mutex
	memo = make(map[interface{}]string)
)

func init() {
	// Since names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// A fresh name, like "BraveOtter".
func Label() string {
	return fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
}

// The name for key, generating one on first use. Keys must be comparable.
func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := Label()
	memo[key] = r
	return r
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
