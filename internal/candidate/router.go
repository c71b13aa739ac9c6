package candidate

import (
	"context"

	"github.com/dailywordwidget/dailyword/internal/language"
)

// Router selects the source for a language: the bundled offline list for
// English, the remote endpoints for everything else.
type Router struct {
	offline Source
	remote  Source
}

func NewRouter(offline, remote Source) *Router {
	return &Router{
		offline: offline,
		remote:  remote,
	}
}

func (r *Router) Pick(ctx context.Context, languageCode string) (string, error) {
	if languageCode == "" || languageCode == language.DefaultCode {
		return r.offline.Pick(ctx, languageCode)
	}
	return r.remote.Pick(ctx, languageCode)
}
