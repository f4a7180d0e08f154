package worker

// Task is one unit of background work, typically the post-acceptance fan-out
// (ledger publish, SMS notification) handed off the request path.
type Task func()

// Worker drains its task queue on a single goroutine until stopped.
type Worker struct {
	taskQueue chan Task
	stop      chan struct{}
}

func NewWorker() *Worker {
	return &Worker{
		taskQueue: make(chan Task),
		stop:      make(chan struct{}),
	}
}

// Start begins consuming the queue.
func (w *Worker) Start() {
	go func() {
		for {
			select {
			case task := <-w.taskQueue:
				task()
			case <-w.stop:
				return
			}
		}
	}()
}

// Stop ends the worker's goroutine; queued but unstarted tasks are dropped.
func (w *Worker) Stop() {
	close(w.stop)
}

// Submit hands a task to the worker, blocking until it is picked up.
func (w *Worker) Submit(task Task) {
	w.taskQueue <- task
}
