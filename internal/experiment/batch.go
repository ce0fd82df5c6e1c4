package experiment

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/report"
)

// Outcome is the result of one driver in a batch.
type Outcome struct {
	Driver *Driver
	Label  string
	Report *report.Report
	Err    error
}

// Batch runs drivers concurrently. Outcomes keep the input order.
type Batch struct {
	workers int
}

func NewBatch(workers int) *Batch {
	if workers < 1 {
		workers = 1
	}
	return &Batch{workers: workers}
}

type job struct {
	driver *Driver
	label  string
	cfg    *config.Config
	err    error
}

func (b *Batch) run(ctx context.Context, jobs []job) []Outcome {
	outcomes := make([]Outcome, len(jobs))
	sem := make(chan struct{}, b.workers)

	var wg sync.WaitGroup
	for i := range jobs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			j := jobs[idx]
			if j.err != nil {
				outcomes[idx] = Outcome{Driver: j.driver, Label: j.label, Err: j.err}
				return
			}
			r, err := j.driver.Execute(ctx, j.cfg)
			outcomes[idx] = Outcome{Driver: j.driver, Label: j.label, Report: r, Err: err}
		}(i)
	}

	wg.Wait()
	return outcomes
}

// Run executes every driver under cfg.
func (b *Batch) Run(ctx context.Context, drivers []*Driver, cfg *config.Config) []Outcome {
	jobs := make([]job, len(drivers))
	for i, d := range drivers {
		jobs[i] = job{driver: d, label: d.Name, cfg: cfg}
	}
	return b.run(ctx, jobs)
}

// Presets executes d once per named preset. When configPath is set the file
// is loaded over each preset. An unknown preset or unreadable file yields an
// outcome carrying the error, so outcomes stay aligned with names.
func (b *Batch) Presets(ctx context.Context, d *Driver, names []string, configPath string) []Outcome {
	jobs := make([]job, len(names))
	for i, name := range names {
		jobs[i] = job{driver: d, label: name}

		cfg := config.GetPreset(name)
		if cfg == nil {
			jobs[i].err = fmt.Errorf("unknown preset: %s", name)
			continue
		}
		if configPath != "" {
			loaded, err := config.LoadOver(configPath, cfg)
			if err != nil {
				jobs[i].err = fmt.Errorf("preset %s: %w", name, err)
				continue
			}
			cfg = loaded
		}
		jobs[i].cfg = cfg
	}
	return b.run(ctx, jobs)
}

// Failed counts outcomes with an error.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
