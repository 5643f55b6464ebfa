package workers

import (
	"context"

	"github.com/MKhiriev/health-portal/internal/logger"
)

// storeBootstrapWorker connects to the remote store and ensures the portal's
// collections exist. A failure only leaves the portal in limited mode; the
// connector keeps retrying lazily on later requests.
type storeBootstrapWorker struct {
	bootstrapper Bootstrapper
	collections  []string
	logger       *logger.Logger
}

// NewStoreBootstrapWorker returns a Worker that bootstraps collections
// through bootstrapper.
func NewStoreBootstrapWorker(bootstrapper Bootstrapper, collections []string, logger *logger.Logger) Worker {
	return &storeBootstrapWorker{
		bootstrapper: bootstrapper,
		collections:  collections,
		logger:       logger,
	}
}

func (w *storeBootstrapWorker) Run(ctx context.Context) {
	w.logger.Info().Strs("collections", w.collections).Msg("bootstrapping remote store")

	if err := w.bootstrapper.Bootstrap(ctx, w.collections...); err != nil {
		w.logger.Warn().Err(err).Msg("remote store bootstrap incomplete")
		return
	}

	w.logger.Info().Msg("remote store bootstrap finished")
}
