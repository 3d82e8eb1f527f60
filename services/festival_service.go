package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/admitdesk/api/utils/cache"
)

const holidayAPIBase = "https://date.nager.at/api/v3/PublicHolidays"

// Holiday is one public holiday as returned by the upstream API.
type Holiday struct {
	Date        string `json:"date"`
	LocalName   string `json:"localName"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	Global      bool   `json:"global"`
}

// FestivalService proxies the public-holiday API the calendar view shows.
// Responses are cached for a day since the upstream data changes yearly.
type FestivalService struct {
	client  *http.Client
	cache   *cache.RedisCache
	country string
}

// NewFestivalService creates the proxy. cache may be nil.
func NewFestivalService(redisCache *cache.RedisCache, country string) *FestivalService {
	return &FestivalService{
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   redisCache,
		country: country,
	}
}

// PublicHolidays returns the holidays for a year, from cache when possible.
func (s *FestivalService) PublicHolidays(ctx context.Context, year int) ([]Holiday, error) {
	key := fmt.Sprintf("festivals:%s:%d", s.country, year)

	if s.cache != nil {
		var cached []Holiday
		if err := s.cache.GetJSON(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}

	url := fmt.Sprintf("%s/%d/%s", holidayAPIBase, year, s.country)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday API returned status %d", resp.StatusCode)
	}

	var holidays []Holiday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, holidays, 24*time.Hour)
	}

	return holidays, nil
}
