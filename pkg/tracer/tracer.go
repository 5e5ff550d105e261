package tracer

import (
	"context"
	"time"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
)

type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}

// Config contains configuration for batch tracing
type Config struct {
	Workers   int // Number of parallel workers (0 = use CPU count)
	BatchSize int // Rays per task (0 = DefaultBatchSize)
}

// DefaultBatchSize is the number of rays handed to a worker at a time
const DefaultBatchSize = 256

// Result is the nearest hit for one ray. OK is false when the ray missed everything.
type Result struct {
	Hit geometry.Hit
	OK  bool
}

// Tracer finds nearest hits against a fixed set of primitives.
// The primitives are only read, so one Tracer may serve concurrent callers.
type Tracer struct {
	primitives []geometry.Primitive
	config     Config
	logger     core.Logger
}

// New creates a tracer over primitives. A nil logger discards output.
func New(primitives []geometry.Primitive, config Config, logger core.Logger) *Tracer {
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchSize
	}
	if logger == nil {
		logger = discardLogger{}
	}
	return &Tracer{
		primitives: primitives,
		config:     config,
		logger:     logger,
	}
}

// Primitives returns the primitives the tracer intersects against
func (t *Tracer) Primitives() []geometry.Primitive {
	return t.primitives
}

// Trace returns the nearest hit for a single ray
func (t *Tracer) Trace(ray core.Ray) (geometry.Hit, bool) {
	return geometry.Nearest(ray, t.primitives...)
}

// TraceBatch traces rays in parallel and returns one Result per ray, in input order.
// When ctx is cancelled the partial results are discarded and ctx.Err() is returned.
func (t *Tracer) TraceBatch(ctx context.Context, rays []core.Ray) ([]Result, error) {
	results := make([]Result, len(rays))
	if len(rays) == 0 {
		return results, nil
	}

	numTasks := (len(rays) + t.config.BatchSize - 1) / t.config.BatchSize
	pool := NewWorkerPool(t.primitives, t.config.Workers, numTasks)

	t.logger.Printf("Tracing %d rays against %d primitives (%d tasks, %d workers)...\n",
		len(rays), len(t.primitives), numTasks, pool.GetNumWorkers())
	start := time.Now()

	pool.Start(ctx, rays, results)
	for taskID := 0; taskID < numTasks; taskID++ {
		end := min((taskID+1)*t.config.BatchSize, len(rays))
		pool.SubmitTask(RayTask{TaskID: taskID, Start: taskID * t.config.BatchSize, End: end})
	}
	pool.Stop()

	totalHits := 0
	var firstErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
		}
		totalHits += result.Hits
	}

	if firstErr != nil {
		t.logger.Printf("Tracing cancelled: %v\n", firstErr)
		return nil, firstErr
	}

	t.logger.Printf("Traced %d rays in %v (%d hits)\n", len(rays), time.Since(start), totalHits)
	return results, nil
}
