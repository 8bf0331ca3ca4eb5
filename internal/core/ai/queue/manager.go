package queue

import (
	"context"
	"sync"
	"sync/atomic"

	"mood-recipe-api/internal/core/ai/provider"
	"mood-recipe-api/internal/infrastructure/config"
	"mood-recipe-api/internal/pkg/common"

	"go.uber.org/zap"
)

// Job 隊列工作
type Job struct {
	Context context.Context
	Request *provider.Request
	Result  chan Result
}

// Result 處理結果
type Result struct {
	Response *provider.Response
	Error    error
}

// Status 隊列狀態
type Status struct {
	QueueLength    int `json:"queue_length"`
	ProcessedCount int `json:"processed_count"`
	MaxQueueSize   int `json:"max_queue_size"`
	Workers        int `json:"workers"`
}

// Manager 隊列管理器，讓所有 AI 呼叫經由固定數量的 worker 執行，
// 避免單一慢請求卡住其他請求
type Manager struct {
	config    *config.Config
	provider  provider.Provider
	queue     chan *Job
	done      chan struct{}
	processed int64
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewManager 創建新的隊列管理器並啟動 worker
func NewManager(cfg *config.Config, p provider.Provider) *Manager {
	m := &Manager{
		config:   cfg,
		provider: p,
		queue:    make(chan *Job, cfg.Queue.MaxSize),
		done:     make(chan struct{}),
	}

	for i := 0; i < cfg.Queue.Workers; i++ {
		m.wg.Add(1)
		go m.worker(i)
	}

	common.LogInfo("隊列管理員已初始化",
		zap.Int("workers", cfg.Queue.Workers),
		zap.Int("max_queue_size", cfg.Queue.MaxSize),
	)

	return m
}

// worker 處理隊列工作
func (m *Manager) worker(id int) {
	defer m.wg.Done()
	for {
		select {
		case job := <-m.queue:
			// 請求方可能已取消，先檢查再呼叫
			if err := job.Context.Err(); err != nil {
				job.Result <- Result{Error: err}
				continue
			}
			resp, err := m.provider.Generate(job.Context, job.Request)
			atomic.AddInt64(&m.processed, 1)
			job.Result <- Result{Response: resp, Error: err}
		case <-m.done:
			return
		}
	}
}

// Dispatch 將請求加入隊列並等待結果；請求方取消時立即返回，
// 進行中的呼叫由 context 傳遞取消
func (m *Manager) Dispatch(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	job := &Job{
		Context: ctx,
		Request: req,
		Result:  make(chan Result, 1),
	}

	select {
	case m.queue <- job:
	default:
		common.LogWarn("Request queue is full",
			zap.Int("queue_length", len(m.queue)),
			zap.Int("max_queue_size", m.config.Queue.MaxSize),
		)
		return nil, common.ErrQueueFull
	}

	select {
	case res := <-job.Result:
		return res.Response, res.Error
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-m.done:
		return nil, common.ErrServiceUnavailable
	}
}

// GetStatus 獲取隊列狀態
func (m *Manager) GetStatus() *Status {
	return &Status{
		QueueLength:    len(m.queue),
		ProcessedCount: int(atomic.LoadInt64(&m.processed)),
		MaxQueueSize:   m.config.Queue.MaxSize,
		Workers:        m.config.Queue.Workers,
	}
}

// Close 關閉隊列管理器
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
	})
	m.wg.Wait()
}
