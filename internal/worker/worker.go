package worker

import (
	"sync"

	"github.com/fatima3985/InternLinkt/internal/logger"
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task)
	Stop()
}

// queueSize 每個 worker 可排隊的工作數
const queueSize = 16

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, n*queueSize)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func(id int) {
			defer p.wg.Done()
			for job := range p.jobs {
				run(id, job)
			}
		}(i)
	}
	return p
}

// run 單一工作 panic 不影響 worker
func run(id int, job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Int("worker", id).Interface("panic", r).Msg("背景工作 panic")
		}
	}()
	job()
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

// Submit 在 Stop 之後呼叫會被忽略
func (p *pool) Submit(t Task) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		logger.Warn().Msg("worker pool 已停止，捨棄工作")
		return
	}
	p.jobs <- t
}

// Stop 等待已排入的工作完成
func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
