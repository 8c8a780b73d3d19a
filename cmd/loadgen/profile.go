package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Task names accepted in a traffic profile.
const (
	taskListProducts  = "list_products"
	taskGetProduct    = "get_product"
	taskCreateProduct = "create_product"
	taskUpdateProduct = "update_product"
	taskProcess       = "process_product"
	taskPredict       = "predict"
	taskGetPrediction = "get_prediction"
)

var knownTasks = map[string]bool{
	taskListProducts:  true,
	taskGetProduct:    true,
	taskCreateProduct: true,
	taskUpdateProduct: true,
	taskProcess:       true,
	taskPredict:       true,
	taskGetPrediction: true,
}

// Profile describes the traffic mix one virtual user generates.
type Profile struct {
	// WaitMin/WaitMax bound the random pause between consecutive tasks.
	WaitMin time.Duration `yaml:"wait_min"`
	WaitMax time.Duration `yaml:"wait_max"`

	// Weights sets the relative pick frequency per task. Zero drops a
	// task from the mix.
	Weights map[string]int `yaml:"weights"`

	// PredictErrorRate is the fraction of predict calls that request
	// server-side error injection; LookupErrorRate the same for
	// prediction lookups.
	PredictErrorRate float64 `yaml:"predict_error_rate"`
	LookupErrorRate  float64 `yaml:"lookup_error_rate"`
}

// DefaultProfile returns the built-in traffic mix: mostly reads, a few
// writes, regular heavy processing and predictions.
func DefaultProfile() *Profile {
	return &Profile{
		WaitMin: 1 * time.Second,
		WaitMax: 5 * time.Second,
		Weights: map[string]int{
			taskListProducts:  5,
			taskGetProduct:    3,
			taskCreateProduct: 1,
			taskUpdateProduct: 1,
			taskProcess:       2,
			taskPredict:       3,
			taskGetPrediction: 2,
		},
		PredictErrorRate: 0.2,
		LookupErrorRate:  0.1,
	}
}

// LoadProfile reads a YAML profile file over the defaults, so a file only
// needs to name what it changes.
func LoadProfile(path string) (*Profile, error) {
	p := DefaultProfile()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Validate checks the profile is runnable.
func (p *Profile) Validate() error {
	if p.WaitMin < 0 || p.WaitMax < 0 {
		return fmt.Errorf("wait times must not be negative")
	}
	if p.WaitMax < p.WaitMin {
		return fmt.Errorf("wait_max (%s) must be >= wait_min (%s)", p.WaitMax, p.WaitMin)
	}

	total := 0
	for name, w := range p.Weights {
		if !knownTasks[name] {
			return fmt.Errorf("unknown task %q", name)
		}
		if w < 0 {
			return fmt.Errorf("task %q has negative weight %d", name, w)
		}
		total += w
	}
	if total == 0 {
		return fmt.Errorf("all task weights are zero")
	}

	if p.PredictErrorRate < 0 || p.PredictErrorRate > 1 {
		return fmt.Errorf("predict_error_rate must be in [0, 1]")
	}
	if p.LookupErrorRate < 0 || p.LookupErrorRate > 1 {
		return fmt.Errorf("lookup_error_rate must be in [0, 1]")
	}
	return nil
}

// picker selects tasks proportionally to their weights.
type picker struct {
	tasks []string
	cum   []int
	total int
}

// newPicker builds a picker from the profile weights. Tasks are laid out in
// sorted order so the same seed always yields the same sequence.
func newPicker(weights map[string]int) *picker {
	names := make([]string, 0, len(weights))
	for name, w := range weights {
		if w > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	p := &picker{}
	for _, name := range names {
		p.total += weights[name]
		p.tasks = append(p.tasks, name)
		p.cum = append(p.cum, p.total)
	}
	return p
}

// pick returns the task at position n within the cumulative weight range.
// n must be in [0, total).
func (p *picker) pick(n int) string {
	i := sort.SearchInts(p.cum, n+1)
	return p.tasks[i]
}
