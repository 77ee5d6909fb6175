// README: Per-quote analytics summary records.
package analytics

import "time"

// Summary is the per-quote record retained for reporting.
type Summary struct {
	QuoteID       string    `json:"quoteId"`
	TotalPrice    float64   `json:"totalPrice"`
	DistanceMiles float64   `json:"distanceMiles"`
	EventType     string    `json:"eventType"`
	ServiceLevel  string    `json:"serviceLevel"`
	Timestamp     time.Time `json:"timestamp"`
}

// Stats aggregates the current ring contents.
type Stats struct {
	Count        int     `json:"count"`
	AverageTotal float64 `json:"averageTotal"`
	AverageMiles float64 `json:"averageMiles"`
}
