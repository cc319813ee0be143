package push

import (
	"context"
	"sync"
)

// Target identifies one deliverable device or user.
type Target struct {
	UserID      string `json:"userId"`
	DeviceToken string `json:"deviceToken"`
	Platform    string `json:"platform"`
}

// Notification is the provider-agnostic message body.
type Notification struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
	URL   string            `json:"url"`
	Badge *int              `json:"badge"`
	Sound string            `json:"sound"`
}

// Result reports one delivery attempt. Delivery never surfaces as a Go
// error; failures are carried in the result so callers and bulk aggregation
// treat them uniformly.
type Result struct {
	UserID    string `json:"userId,omitempty"`
	Success   bool   `json:"success"`
	Provider  string `json:"provider,omitempty"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// BulkResult aggregates a fan-out. Successful+Failed always equals Total.
type BulkResult struct {
	Successful int      `json:"successful"`
	Failed     int      `json:"failed"`
	Total      int      `json:"total"`
	Results    []Result `json:"results"`
}

// Dispatcher delivers notifications through a concrete provider.
type Dispatcher interface {
	Send(ctx context.Context, target Target, n Notification) Result
	SendBulk(ctx context.Context, targets []Target, n Notification) BulkResult
	IsConfigured() bool
	Shutdown()
}

func failure(userID, provider, reason string) Result {
	return Result{UserID: userID, Success: false, Provider: provider, Error: reason}
}

// fanOut sends to every target concurrently and aggregates per-target
// results in input order.
func fanOut(ctx context.Context, d Dispatcher, targets []Target, n Notification) BulkResult {
	results := make([]Result, len(targets))

	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target Target) {
			defer wg.Done()
			results[i] = d.Send(ctx, target, n)
		}(i, target)
	}
	wg.Wait()

	bulk := BulkResult{Total: len(targets), Results: results}
	for _, r := range results {
		if r.Success {
			bulk.Successful++
		} else {
			bulk.Failed++
		}
	}
	return bulk
}
