package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/linkfolio-dev/linkfolio/internal/logger"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://github.com"
	scrapeTimeout  = 10 * time.Second
)

// Calendar cells carry data-date, data-level and (as either an attribute or
// tooltip text) a contribution count. Attribute order inside the tag is not
// guaranteed, so each attribute is matched separately per cell.
var (
	cellPattern  = regexp.MustCompile(`<(?:rect|td)[^>]*data-date="[^"]*"[^>]*>`)
	datePattern  = regexp.MustCompile(`data-date="([^"]+)"`)
	countPattern = regexp.MustCompile(`data-count="([^"]+)"`)
	levelPattern = regexp.MustCompile(`data-level="([^"]+)"`)
)

// Scraper implements ContributionSource against GitHub's public, unversioned
// contributions page. Inherently fragile; any failure degrades to an empty
// calendar rather than an error, matching the read-through endpoint contract.
type Scraper struct {
	client  *http.Client
	baseURL string
}

func NewScraper() *Scraper {
	return &Scraper{
		client:  &http.Client{Timeout: scrapeTimeout},
		baseURL: defaultBaseURL,
	}
}

// NewScraperWithBaseURL exists for tests and self-hosted mirrors.
func NewScraperWithBaseURL(baseURL string) *Scraper {
	s := NewScraper()
	s.baseURL = baseURL
	return s
}

func (s *Scraper) FetchContributions(ctx context.Context, username string) ([]ContributionDay, error) {
	url := fmt.Sprintf("%s/users/%s/contributions", s.baseURL, username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return []ContributionDay{}, nil
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Log.Warn("GitHub contributions fetch failed",
			zap.String("username", username),
			zap.Error(err))
		return []ContributionDay{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Warn("GitHub contributions fetch returned non-200",
			zap.String("username", username),
			zap.Int("status", resp.StatusCode))
		return []ContributionDay{}, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return []ContributionDay{}, nil
	}

	return ParseContributions(string(body)), nil
}

// ParseContributions extracts one ContributionDay per calendar cell, in
// document order. Callers that need date order sort independently.
func ParseContributions(document string) []ContributionDay {
	cells := cellPattern.FindAllString(document, -1)
	days := make([]ContributionDay, 0, len(cells))

	for _, cell := range cells {
		dateMatch := datePattern.FindStringSubmatch(cell)
		if dateMatch == nil {
			continue
		}

		day := ContributionDay{Date: dateMatch[1]}

		if countMatch := countPattern.FindStringSubmatch(cell); countMatch != nil {
			if count, err := strconv.Atoi(countMatch[1]); err == nil {
				day.Count = count
			}
		}

		if levelMatch := levelPattern.FindStringSubmatch(cell); levelMatch != nil {
			if level, err := strconv.Atoi(levelMatch[1]); err == nil {
				day.Level = clampLevel(level)
			}
		}

		days = append(days, day)
	}

	return days
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 4 {
		return 4
	}
	return level
}
