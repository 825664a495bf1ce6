// Package github fetches and aggregates public GitHub contribution data.
package github

import "context"

// ContributionDay is one calendar cell: the date, the raw contribution count
// and GitHub's bucketed intensity level (0-4).
type ContributionDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// ContributionSource abstracts where contribution data comes from, so the
// HTML scraper can later be swapped for the GraphQL API without touching
// callers.
type ContributionSource interface {
	FetchContributions(ctx context.Context, username string) ([]ContributionDay, error)
}
