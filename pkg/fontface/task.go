package fontface

import (
	"context"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
)

// Task plans and fetches a batch of jobs.
type Task struct {
	planner *Planner
	fetcher *Fetcher
}

// NewTask creates a task.
func NewTask(planner *Planner, fetcher *Fetcher) *Task {
	return &Task{planner: planner, fetcher: fetcher}
}

// Plan returns the requests for all jobs without fetching anything.
func (t *Task) Plan(ctx context.Context, jobs []Job) ([]FamilyRequest, []error) {
	var (
		requests []FamilyRequest
		skipped  []error
	)
	for _, job := range jobs {
		reqs, errs := t.planner.Plan(ctx, job)
		requests = append(requests, reqs...)
		skipped = append(skipped, errs...)
	}
	return requests, skipped
}

// Run fetches and writes the stylesheets of all jobs. It always completes;
// failures are logged and collected in the report.
func (t *Task) Run(ctx context.Context, jobs []Job) *Report {
	ctx = logx.ContextWithFields(ctx, logx.Field("run", uuid.NewString()))

	requests, skipped := t.Plan(ctx, jobs)
	logx.WithContext(ctx).Infow("Fetching stylesheets",
		logx.Field("jobs", len(jobs)),
		logx.Field("requests", len(requests)),
		logx.Field("skipped", len(skipped)),
	)

	report := t.fetcher.Run(ctx, requests)
	report.Skipped = skipped

	if report.Degraded() {
		logx.WithContext(ctx).Errorw("Stylesheets fetched with failures",
			logx.Field("written", report.Written()),
			logx.Field("failed", len(report.Failed())),
		)
	} else {
		logx.WithContext(ctx).Infow("Stylesheets fetched", logx.Field("written", report.Written()))
	}
	return report
}
