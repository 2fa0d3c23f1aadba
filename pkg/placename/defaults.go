package placename

import (
	"embed"
	"fmt"
	"sync"
)

//go:embed data/towns.yml
var defaultData embed.FS

// defaultDataset parses the embedded dataset exactly once. The embedded
// document is fixed at build time, so a parse failure is a programming
// error rather than a runtime condition.
var defaultDataset = sync.OnceValue(func() *Dataset {
	data, err := defaultData.ReadFile("data/towns.yml")
	if err != nil {
		panic(fmt.Sprintf("placename: embedded dataset unreadable: %v", err))
	}
	ds, err := ParseDataset(data)
	if err != nil {
		panic(fmt.Sprintf("placename: embedded dataset invalid: %v", err))
	}
	return ds
})

// DefaultDataset returns the built-in English-flavoured town dataset. The
// returned value is shared; callers must treat it as read-only.
func DefaultDataset() *Dataset {
	return defaultDataset()
}
