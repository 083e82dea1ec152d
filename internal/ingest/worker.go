package ingest

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"wavesplit/internal/config"
	"wavesplit/internal/domain"
	"wavesplit/internal/parser"
)

// Progress receives per-file updates while reports are parsed
type Progress interface {
	Update(parsed, failed int)
	Finish()
}

// Pool is every suite found in a set of report files, in discovery order
type Pool struct {
	Files    []string
	Records  []*domain.SuiteRecord
	Failures []*domain.ParseFailure
}

type fileResult struct {
	records []*domain.SuiteRecord
	failure *domain.ParseFailure
}

// WorkerPool parses report files in parallel
type WorkerPool struct {
	parser   parser.Parser
	workers  int
	log      logrus.FieldLogger
	progress Progress
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, p parser.Parser, log logrus.FieldLogger) *WorkerPool {
	return &WorkerPool{
		parser:  p,
		workers: cfg.Processors,
		log:     log,
	}
}

// SetProgress sets the progress reporter for the worker pool
func (wp *WorkerPool) SetProgress(progress Progress) {
	wp.progress = progress
}

// Load parses every file and pools the suites in the order the files were
// given, regardless of which worker finished first. Files that fail to parse
// are logged and skipped. Only context cancellation aborts the load.
func (wp *WorkerPool) Load(ctx context.Context, files []string) (*Pool, error) {
	pool := &Pool{Files: files}
	if len(files) == 0 {
		return pool, nil
	}

	jobs := make(chan int, len(files))
	for i := range files {
		jobs <- i
	}
	close(jobs)

	results := make([]fileResult, len(files))

	var mu sync.Mutex
	var parsed, failed int

	workerCount := wp.workers
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(files) {
		workerCount = len(files)
	}

	var wg sync.WaitGroup
	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					return
				}

				results[i] = wp.parseOne(files[i])
				wp.log.WithField("worker", workerID).WithField("file", files[i]).Debug("Parsed report")

				mu.Lock()
				if results[i].failure != nil {
					failed++
				} else {
					parsed++
				}
				if wp.progress != nil {
					wp.progress.Update(parsed, failed)
				}
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()

	if wp.progress != nil {
		wp.progress.Finish()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, res := range results {
		if res.failure != nil {
			wp.log.Warn(res.failure.Error())
			pool.Failures = append(pool.Failures, res.failure)
			continue
		}
		pool.Records = append(pool.Records, res.records...)
	}

	return pool, nil
}

func (wp *WorkerPool) parseOne(path string) fileResult {
	records, err := wp.parser.ParseFile(path)
	if err == nil {
		return fileResult{records: records}
	}

	var failure *domain.ParseFailure
	if !errors.As(err, &failure) {
		failure = &domain.ParseFailure{File: path, Message: err.Error()}
	}
	return fileResult{failure: failure}
}
