package workers

import "context"

type Workers struct {
	workers []Worker
}

// NewWorkers groups workers that are run one after another.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		if ctx.Err() != nil {
			return
		}
		worker.Run(ctx)
	}
}
