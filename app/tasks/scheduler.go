package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rkawale/mediawatch/app/cfg"
	"github.com/rkawale/mediawatch/app/database"
	"github.com/rkawale/mediawatch/app/ingest"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

type Scheduler struct {
	sourceRepo       database.SourceRepository
	articleRepo      database.ArticleRepository
	pipeline         *ingest.Pipeline
	fetcher          *ingest.Fetcher
	contentExtractor *ingest.ContentExtractor
	interval         time.Duration
	workerCount      int
	ctx              context.Context
	cancel           context.CancelFunc
	wg               sync.WaitGroup
	taskQueue        chan TaskInterface
}

func NewScheduler(sourceRepo database.SourceRepository, articleRepo database.ArticleRepository,
	pipeline *ingest.Pipeline, fetcher *ingest.Fetcher, contentExtractor *ingest.ContentExtractor) TaskSchedulerInterface {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := cfg.Get()

	return &Scheduler{
		sourceRepo:       sourceRepo,
		articleRepo:      articleRepo,
		pipeline:         pipeline,
		fetcher:          fetcher,
		contentExtractor: contentExtractor,
		interval:         time.Duration(cfg.SchedulerInterval) * time.Second,
		workerCount:      cfg.WorkerCount,
		ctx:              ctx,
		cancel:           cancel,
		taskQueue:        make(chan TaskInterface, 300),
	}
}

func (s *Scheduler) Start() {
	for i := 0; i < s.workerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.enqueueStartupTasks()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.enqueueTasks()
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	close(s.taskQueue)
}

func (s *Scheduler) EnqueueTask(task TaskInterface) error {
	select {
	case s.taskQueue <- task:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return fmt.Errorf("task queue is full")
	}
}

func (s *Scheduler) enqueueStartupTasks() {
	sources, err := s.sourceRepo.GetActiveSourcesWithFeeds()
	if err != nil {
		slog.Error("Failed to load sources for startup scrape", "error", err)
		return
	}
	if len(sources) == 0 {
		slog.Debug("No active sources with feeds configured")
		return
	}

	slog.Debug("Scheduling startup scrape", "count", len(sources))

	for _, source := range sources {
		task := NewScrapeSourceTask(source, s.pipeline)
		if err := s.EnqueueTask(task); err != nil {
			slog.Warn("Failed to enqueue ScrapeSourceTask", "source", source.Name, "error", err)
		}
	}

	if err := s.EnqueueTask(NewAnalyzePendingTask(0, s.pipeline)); err != nil {
		slog.Warn("Failed to enqueue AnalyzePendingTask", "error", err)
	}
}

func (s *Scheduler) enqueueTasks() {
	sources, err := s.sourceRepo.GetSourcesDueForFetch()
	if err != nil {
		slog.Error("Failed to load sources due for fetch", "error", err)
		return
	}

	for _, source := range sources {
		task := NewScrapeSourceTask(source, s.pipeline)
		if err := s.EnqueueTask(task); err != nil {
			slog.Warn("Failed to enqueue ScrapeSourceTask", "source", source.Name, "error", err)
		}
	}

	if err := s.EnqueueTask(NewAnalyzePendingTask(0, s.pipeline)); err != nil {
		slog.Warn("Failed to enqueue AnalyzePendingTask", "error", err)
	}

	extractTask := NewExtractContentTask(s.articleRepo, s.fetcher, s.contentExtractor)
	if err := s.EnqueueTask(extractTask); err != nil {
		slog.Warn("Failed to enqueue ExtractContentTask", "error", err)
	}
}

func (s *Scheduler) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case task, ok := <-s.taskQueue:
			if !ok {
				return
			}
			s.executeTask(id, task)

		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) executeTask(workerID int, task TaskInterface) {
	task.Start()

	taskCtx, cancel := context.WithTimeout(s.ctx, 5*time.Minute)
	defer cancel()

	err := task.Execute(taskCtx)

	if err != nil {
		slog.Error("Worker task execution failed", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", err)

		if task.CanRetry() {
			task.IncrementRetryCount()
			retryDelay := time.Duration(1<<uint(task.GetRetryCount()-1)) * time.Second
			if retryDelay > 30*time.Second {
				retryDelay = 30 * time.Second
			}

			slog.Warn("Task retry scheduled", "type", string(task.GetType()), "subject", task.GetSubject(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "delay", retryDelay.String())

			go func() {
				time.Sleep(retryDelay)
				select {
				case <-s.ctx.Done():
					slog.Debug("Scheduler stopped, skipping task retry", "type", string(task.GetType()), "id", task.GetID())
					return
				default:
					if retryErr := s.EnqueueTask(task); retryErr != nil {
						slog.Error("Failed to re-enqueue task for retry", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", retryErr)
					}
				}
			}()
		} else {
			slog.Error("Task failed after maximum retries", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "last_error", err)
		}
	}
}
