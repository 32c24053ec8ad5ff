package tasks

// TaskSchedulerInterface is the scheduler surface used by the main
// application and the API layer: lifecycle control plus ad-hoc enqueueing
// for the manual trigger endpoints.
//
//	scheduler := NewScheduler(sourceRepo, articleRepo, pipeline, extractor, fetcher)
//	scheduler.Start()
//	defer scheduler.Stop()
//	scheduler.EnqueueTask(NewScrapeSourceTask(source, pipeline))
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}
