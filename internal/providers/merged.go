package providers

import (
	"context"
	"fmt"
	"log/slog"
)

type FeedSource interface {
	Fetch(ctx context.Context) (*Feed, error)
}

// RegionSource is an optional secondary source scoped to a single region.
// A nil RegionSource means no secondary source is configured.
type RegionSource interface {
	Fetch(ctx context.Context) (Region, error)
	Region() string
}

// MergedProvider combines the primary JSON feed with the secondary scraped
// source. The scrape wins for its own region when both are present; a scrape
// failure degrades to the feed's data for that region.
type MergedProvider struct {
	api    FeedSource
	scrape RegionSource
	log    *slog.Logger
}

func NewMergedProvider(api FeedSource, scrape RegionSource, log *slog.Logger) *MergedProvider {
	return &MergedProvider{
		api:    api,
		scrape: scrape,
		log:    log.With("component", "providers").With("provider", "merged"),
	}
}

func (p *MergedProvider) Fetch(ctx context.Context) (*Feed, error) {
	feed, err := p.api.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch primary feed: %w", err)
	}

	if p.scrape == nil {
		return feed, nil
	}

	region, err := p.scrape.Fetch(ctx)
	if err != nil {
		p.log.WarnContext(ctx, "secondary scrape failed, keeping feed data", "region", p.scrape.Region(), "error", err)
		return feed, nil
	}

	feed.replaceRegion(region)
	return feed, nil
}
