package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/redlabs/storefront/client"
)

// Fixed product IDs whose first hex digit triggers a deterministic server
// response: normal, not-found, and process-timeout.
var testProducts = []uuid.UUID{
	uuid.MustParse("15ca8c18-43d4-4da3-ad14-2dc127365b04"),
	uuid.MustParse("05ca8c18-43d4-4da3-ad14-2dc127365b04"),
	uuid.MustParse("55ca8c18-43d4-4da3-ad14-2dc127365b04"),
}

var (
	categories   = []string{"electronics", "books", "clothing"}
	predictTexts = []string{
		"Analyze this customer feedback",
		"Process this long document",
		"Classify this text sample",
		"Summarize this article",
	}
	listLimits = []int{10, 20, 50, 100}
)

// stats accumulates request outcomes across all virtual users.
type stats struct {
	requests atomic.Uint64
	failures atomic.Uint64
}

// runner drives a set of virtual users against one target.
type runner struct {
	client  *client.Client
	profile *Profile
	picker  *picker
	log     *logrus.Logger
	stats   *stats
}

func newRunner(c *client.Client, p *Profile, log *logrus.Logger) *runner {
	return &runner{
		client:  c,
		profile: p,
		picker:  newPicker(p.Weights),
		log:     log,
		stats:   &stats{},
	}
}

// user loops picking and executing weighted tasks until ctx is cancelled.
// Each user owns its own random sequence so runs are reproducible per seed.
func (r *runner) user(ctx context.Context, id int, rng *rand.Rand) {
	log := r.log.WithField("user", id)

	for {
		task := r.picker.pick(rng.IntN(r.picker.total))

		err := r.run(ctx, task, rng)
		if ctx.Err() != nil {
			return
		}

		r.stats.requests.Add(1)
		if err != nil {
			r.stats.failures.Add(1)
			entry := log.WithError(err).WithField("task", task)
			if clientError(err) {
				// Injected 4xx/5xx are expected traffic, not noise.
				entry.Debug("request failed")
			} else {
				entry.Warn("transport error")
			}
		}

		if !r.wait(ctx, rng) {
			return
		}
	}
}

// run executes one task. Returned errors include the deliberately injected
// 4xx/5xx responses; those are the point of the demo, not runner bugs.
func (r *runner) run(ctx context.Context, task string, rng *rand.Rand) error {
	switch task {
	case taskListProducts:
		_, err := r.client.Products.List(ctx, &client.ProductListOptions{
			Page:  1 + rng.IntN(15),
			Limit: listLimits[rng.IntN(len(listLimits))],
		})
		return err

	case taskGetProduct:
		_, err := r.client.Products.Get(ctx, r.testProduct(rng))
		return err

	case taskCreateProduct:
		_, err := r.client.Products.Create(ctx, &client.CreateProductRequest{
			Name:        fmt.Sprintf("Test Product %d", 1+rng.IntN(1000)),
			Description: "Automated test product",
			Price:       10 + rng.Float64()*1990,
			Category:    categories[rng.IntN(len(categories))],
		})
		return err

	case taskUpdateProduct:
		_, err := r.client.Products.Update(ctx, r.testProduct(rng), &client.CreateProductRequest{
			Name:        fmt.Sprintf("Updated Product %d", 1+rng.IntN(1000)),
			Description: "Updated test product",
			Price:       10 + rng.Float64()*1990,
			Category:    categories[rng.IntN(len(categories))],
		})
		return err

	case taskProcess:
		_, err := r.client.Products.Process(ctx, r.testProduct(rng))
		return err

	case taskPredict:
		simulate := rng.Float64() < r.profile.PredictErrorRate
		_, err := r.client.Predictions.Predict(ctx, &client.PredictionRequest{
			Text: predictTexts[rng.IntN(len(predictTexts))],
		}, simulate)
		return err

	case taskGetPrediction:
		simulate := rng.Float64() < r.profile.LookupErrorRate
		_, err := r.client.Predictions.Get(ctx, uuid.New(), simulate)
		return err

	default:
		return fmt.Errorf("unknown task %q", task)
	}
}

func (r *runner) testProduct(rng *rand.Rand) uuid.UUID {
	return testProducts[rng.IntN(len(testProducts))]
}

// wait pauses for a random duration inside the profile's wait band. Returns
// false when ctx is cancelled mid-wait.
func (r *runner) wait(ctx context.Context, rng *rand.Rand) bool {
	span := r.profile.WaitMax - r.profile.WaitMin
	d := r.profile.WaitMin
	if span > 0 {
		d += time.Duration(rng.Int64N(int64(span)))
	}
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// report logs accumulated counters every interval until ctx is cancelled.
func (r *runner) report(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.logStats("progress")
		}
	}
}

func (r *runner) logStats(msg string) {
	requests := r.stats.requests.Load()
	failures := r.stats.failures.Load()

	r.log.WithFields(logrus.Fields{
		"requests": requests,
		"failures": failures,
	}).Info(msg)
}

// clientError reports whether err came back from the server rather than the
// transport.
func clientError(err error) bool {
	var apiErr *client.APIError
	return errors.As(err, &apiErr)
}
