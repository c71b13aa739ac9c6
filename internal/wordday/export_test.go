package wordday

import (
	"time"

	"github.com/dailywordwidget/dailyword/internal/candidate"
)

// NewResolverWithCountedSleep wires a resolver whose backoff sleep
// increments a counter instead of sleeping, so retry tests run instantly
// and can assert how many delays were incurred.
func NewResolverWithCountedSleep(source candidate.Source, lookup DefinitionLookup) (*Resolver, *int) {
	resolver := NewResolver(source, lookup)
	sleeps := 0
	resolver.sleep = func(time.Duration) {
		sleeps++
	}
	return resolver, &sleeps
}
