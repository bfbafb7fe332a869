package stats

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
)

type Stats struct {
	mu sync.Mutex

	RunningSince time.Time

	GroupRequests   uint64
	PrivateRequests uint64

	LinksDetected   uint64
	LinksProcessed  uint64
	ScrapeSuccesses uint64
	ScrapeFailures  uint64
	ImagesDelivered uint64
}

func NewStats() *Stats {
	return &Stats{
		RunningSince: time.Now(),

		GroupRequests:   0,
		PrivateRequests: 0,

		LinksDetected:   0,
		LinksProcessed:  0,
		ScrapeSuccesses: 0,
		ScrapeFailures:  0,
		ImagesDelivered: 0,
	}
}

func (s *Stats) MarshalJSON() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return json.Marshal(struct {
		Uptime string `json:"uptime"`

		GroupRequests   uint64 `json:"group_requests"`
		PrivateRequests uint64 `json:"private_requests"`

		LinksDetected   uint64 `json:"links_detected"`
		LinksProcessed  uint64 `json:"links_processed"`
		ScrapeSuccesses uint64 `json:"scrape_successes"`
		ScrapeFailures  uint64 `json:"scrape_failures"`
		ImagesDelivered uint64 `json:"images_delivered"`
	}{
		Uptime: time.Now().Sub(s.RunningSince).String(),

		GroupRequests:   s.GroupRequests,
		PrivateRequests: s.PrivateRequests,

		LinksDetected:   s.LinksDetected,
		LinksProcessed:  s.LinksProcessed,
		ScrapeSuccesses: s.ScrapeSuccesses,
		ScrapeFailures:  s.ScrapeFailures,
		ImagesDelivered: s.ImagesDelivered,
	})
}

func (s *Stats) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		sentry.CaptureException(err)

		return "{\"error\": \"cannot serialize stats\"}"
	}

	return string(data)
}

func (s *Stats) GroupRequest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.GroupRequests++
}

func (s *Stats) PrivateRequest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.PrivateRequests++
}

func (s *Stats) LinkDetected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LinksDetected++
}

func (s *Stats) LinkProcessed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LinksProcessed++
}

func (s *Stats) ScrapeSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ScrapeSuccesses++
}

func (s *Stats) ScrapeFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ScrapeFailures++
}

func (s *Stats) ImageDelivered() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ImagesDelivered++
}
