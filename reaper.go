package quoteweb

import (
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

type cleanupJob struct {
	path      string
	notBefore time.Time
}

// Reaper deletes delivered temp documents after a grace period so transient
// output never accumulates under sustained load. Cleanup is best effort;
// delivery never blocks on it.
type Reaper struct {
	jobs    chan cleanupJob
	grace   time.Duration
	workers int
	quit    chan struct{}
	wg      sync.WaitGroup
	logger  *zap.Logger
}

func NewReaper(workers, queueSize int, grace time.Duration, logger *zap.Logger) *Reaper {
	if workers < 1 {
		workers = 1
	}
	return &Reaper{
		jobs:    make(chan cleanupJob, queueSize),
		grace:   grace,
		workers: workers,
		quit:    make(chan struct{}),
		logger:  logger,
	}
}

func (r *Reaper) Run() {
	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.work(i + 1)
	}
}

// Schedule queues path for deletion once the grace period has passed. When
// the queue is full the file is removed immediately rather than leaked.
func (r *Reaper) Schedule(path string) {
	job := cleanupJob{path: path, notBefore: time.Now().Add(r.grace)}
	select {
	case r.jobs <- job:
	default:
		r.logger.Warn("Cleanup queue full, removing immediately", zap.String("path", path))
		r.remove(path)
	}
}

// Stop shuts the workers down and removes anything still queued.
func (r *Reaper) Stop() {
	close(r.quit)
	r.wg.Wait()

	for {
		select {
		case job := <-r.jobs:
			r.remove(job.path)
		default:
			return
		}
	}
}

func (r *Reaper) work(id int) {
	defer r.wg.Done()

	for {
		select {
		case job := <-r.jobs:
			if delay := time.Until(job.notBefore); delay > 0 {
				timer := time.NewTimer(delay)
				select {
				case <-timer.C:
				case <-r.quit:
					timer.Stop()
					r.remove(job.path)
					return
				}
			}
			r.remove(job.path)
		case <-r.quit:
			r.logger.Debug("Cleanup worker stopped", zap.Int("worker_id", id))
			return
		}
	}
}

func (r *Reaper) remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		r.logger.Warn("Failed to remove temp document", zap.Error(err), zap.String("path", path))
	}
}
