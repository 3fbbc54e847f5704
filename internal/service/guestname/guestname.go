package guestname

import (
	"fmt"
	"math/rand"
)

var adjectives = []string{
	"amber", "brave", "calm", "clever", "crimson", "dapper", "eager",
	"fuzzy", "gentle", "golden", "hasty", "humble", "ivory", "jolly",
	"keen", "lively", "mellow", "nimble", "olive", "plucky", "quiet",
	"rusty", "sleepy", "swift", "tidy", "witty",
}

var nouns = []string{
	"ant", "badger", "beetle", "cricket", "finch", "fox", "heron",
	"hornet", "ladybug", "lizard", "mantis", "marten", "moth", "newt",
	"otter", "owl", "pillbug", "possum", "raven", "shrew", "sparrow",
	"spider", "stoat", "swallow", "weasel", "wren",
}

// Mint produces a placeholder username for anonymous sign-up. Every call
// draws from a fresh random source; no generator state is shared between
// requests. Collisions are tolerated here and rejected by the users table
// unique constraint.
func Mint() string {
	return fmt.Sprintf("guest-%s-%s-%d",
		adjectives[rand.Intn(len(adjectives))],
		nouns[rand.Intn(len(nouns))],
		rand.Intn(10000),
	)
}
