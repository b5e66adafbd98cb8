package ingestion

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainLoad "load-analytics/internal/domain/load"
	"load-analytics/internal/logger"
)

const processTimeout = 5 * time.Second

// TimeRecorder stores an automatically captured leg time
type TimeRecorder interface {
	RecordAutoTime(ctx context.Context, loadID uuid.UUID, leg domainLoad.Leg, event domainLoad.Event, at time.Time) error
}

// Processor records leg events with a pool of concurrent workers
type Processor struct {
	recorder TimeRecorder

	// Configuration
	workerCount int
	bufferSize  int

	eventChan chan *LegEventMessage

	// Control
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once

	metrics *MetricsTracker
	log     *zap.Logger
	now     func() time.Time
}

// NewProcessor creates a new leg event processor
func NewProcessor(recorder TimeRecorder, workerCount, bufferSize int) *Processor {
	if workerCount <= 0 {
		workerCount = 1
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Processor{
		recorder:    recorder,
		workerCount: workerCount,
		bufferSize:  bufferSize,
		eventChan:   make(chan *LegEventMessage, bufferSize),
		ctx:         ctx,
		cancel:      cancel,
		metrics:     NewMetricsTracker(),
		log:         logger.Named("ingestion"),
		now:         time.Now,
	}
}

// Start starts the processor workers
func (p *Processor) Start() {
	p.log.Info("Starting processor",
		zap.Int("workers", p.workerCount),
		zap.Int("buffer_size", p.bufferSize),
	)

	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Stop stops the workers. Queued events that were not picked up are dropped.
func (p *Processor) Stop() {
	p.stopOnce.Do(func() {
		p.log.Info("Stopping processor...")
		p.cancel()
		p.wg.Wait()

		dropped := len(p.eventChan)
		p.metrics.Update(func(m *IngestMetrics) {
			m.MessagesDropped += int64(dropped)
			m.BufferSize = 0
		})
		p.log.Info("Processor stopped", zap.Int("dropped", dropped))
	})
}

// ProcessLegEvent validates a leg event and queues it for recording
func (p *Processor) ProcessLegEvent(msg *LegEventMessage) {
	if err := ValidateLegEvent(msg, p.now()); err != nil {
		p.log.Warn("Invalid leg event", zap.String("load_id", msg.LoadID), zap.Error(err))
		p.metrics.Update(func(m *IngestMetrics) {
			m.MessagesFailed++
		})
		return
	}

	if p.ctx.Err() != nil {
		return
	}

	select {
	case p.eventChan <- msg:
		p.metrics.Update(func(m *IngestMetrics) {
			m.MessagesReceived++
			m.BufferSize = len(p.eventChan)
		})
	case <-p.ctx.Done():
		return
	default:
		p.log.Warn("Event buffer full, dropping message", zap.String("load_id", msg.LoadID))
		p.metrics.Update(func(m *IngestMetrics) {
			m.MessagesDropped++
		})
	}
}

func (p *Processor) worker(id int) {
	defer p.wg.Done()

	p.log.Debug("Worker started", zap.Int("worker", id))

	for {
		select {
		case msg := <-p.eventChan:
			start := time.Now()
			err := p.processMessage(msg)

			switch {
			case errors.Is(err, domainLoad.ErrVerifiedTimeLocked):
				p.log.Debug("Skipping verified time",
					zap.Int("worker", id),
					zap.String("load_id", msg.LoadID),
					zap.String("leg", msg.Leg),
					zap.String("leg_event", msg.Event),
				)
				p.metrics.Update(func(m *IngestMetrics) {
					m.MessagesSkipped++
				})
			case err != nil:
				p.log.Error("Failed to record leg event",
					zap.Int("worker", id),
					zap.String("load_id", msg.LoadID),
					zap.Error(err),
				)
				p.metrics.Update(func(m *IngestMetrics) {
					m.MessagesFailed++
				})
			default:
				processingTime := time.Since(start)
				p.metrics.Update(func(m *IngestMetrics) {
					m.MessagesProcessed++
					m.LastProcessedAt = time.Now()
					m.BufferSize = len(p.eventChan)

					// Running average over processed messages
					if m.AverageProcessingTime == 0 {
						m.AverageProcessingTime = processingTime
					} else {
						m.AverageProcessingTime = (m.AverageProcessingTime + processingTime) / 2
					}
				})
			}

		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Processor) processMessage(msg *LegEventMessage) error {
	loadID, err := uuid.Parse(msg.LoadID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(p.ctx, processTimeout)
	defer cancel()

	return p.recorder.RecordAutoTime(ctx, loadID, domainLoad.Leg(msg.Leg), domainLoad.Event(msg.Event), msg.Timestamp)
}

// GetMetrics returns current metrics
func (p *Processor) GetMetrics() IngestMetrics {
	return p.metrics.Snapshot()
}

// OnMetricsChange registers a callback invoked after every metrics update
func (p *Processor) OnMetricsChange(listener func(IngestMetrics)) {
	p.metrics.OnChange(listener)
}
