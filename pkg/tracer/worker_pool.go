package tracer

import (
	"context"
	"runtime"
	"sync"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
)

// RayTask is a contiguous range of rays for one worker to trace
type RayTask struct {
	TaskID int
	Start  int // First ray index, inclusive
	End    int // Last ray index, exclusive
}

// TaskResult reports a finished task
type TaskResult struct {
	TaskID int
	Hits   int // Rays in the task that struck something
	Error  error
}

// WorkerPool manages parallel ray tracing
type WorkerPool struct {
	taskQueue   chan RayTask
	resultQueue chan TaskResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker traces ray ranges against a shared, read-only primitive list
type Worker struct {
	ID          int
	primitives  []geometry.Primitive
	taskQueue   chan RayTask
	resultQueue chan TaskResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// maxTasks bounds the number of tasks submitted before results are drained.
func NewWorkerPool(primitives []geometry.Primitive, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RayTask, maxTasks),
		resultQueue: make(chan TaskResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			primitives:  primitives,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers. Each worker writes into results at the indices of
// its tasks only; ranges never overlap, so no locking is needed.
func (wp *WorkerPool) Start(ctx context.Context, rays []core.Ray, results []Result) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, rays, results, &wp.wg)
	}
}

// Stop closes the task queue and waits for the workers to drain it
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a task to the worker pool
func (wp *WorkerPool) SubmitTask(task RayTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed task result
func (wp *WorkerPool) GetResult() (TaskResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, rays []core.Ray, results []Result, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if err := ctx.Err(); err != nil {
			w.resultQueue <- TaskResult{TaskID: task.TaskID, Error: err}
			continue
		}

		hits := 0
		for i := task.Start; i < task.End; i++ {
			hit, ok := geometry.Nearest(rays[i], w.primitives...)
			results[i] = Result{Hit: hit, OK: ok}
			if ok {
				hits++
			}
		}

		w.resultQueue <- TaskResult{TaskID: task.TaskID, Hits: hits}
	}
}
