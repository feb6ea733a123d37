package share

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/rescue"
	"github.com/zeromicro/go-zero/core/syncx"
	"github.com/zeromicro/go-zero/core/threading"
	"golang.org/x/time/rate"
	"maragu.dev/goqite"

	"github.com/mailgallery/mailgallery/internal/locale"
	"github.com/mailgallery/mailgallery/internal/preview"
	"github.com/mailgallery/mailgallery/pkg/mail"
)

// Config holds delivery engine configuration.
type Config struct {
	MaxAttempts  int
	RetryBackoff time.Duration
	MaxBackoff   time.Duration
	RateLimit    int // emails per minute
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  3,
		RetryBackoff: time.Minute,
		MaxBackoff:   time.Hour,
		RateLimit:    30,
	}
}

// Engine drains the share queue and delivers templates over SMTP with retry
// support.
type Engine struct {
	config      Config
	queue       *Queue
	previews    *preview.Renderer
	smtpConfig  mail.Config
	rateLimiter *rate.Limiter
	running     *syncx.AtomicBool

	ctx    context.Context
	cancel context.CancelFunc
	group  *threading.RoutineGroup
}

// NewEngine creates a delivery engine over the share queue.
func NewEngine(q *Queue, previews *preview.Renderer, smtp mail.Config, cfg Config) *Engine {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = DefaultConfig().RateLimit
	}
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RateLimit)), 1)

	ctx, cancel := context.WithCancel(context.Background())

	return &Engine{
		config:      cfg,
		queue:       q,
		previews:    previews,
		smtpConfig:  smtp,
		rateLimiter: limiter,
		running:     syncx.NewAtomicBool(),
		ctx:         ctx,
		cancel:      cancel,
		group:       threading.NewRoutineGroup(),
	}
}

// Start starts the delivery engine with the specified number of workers.
func (e *Engine) Start(workers int) {
	if !e.running.CompareAndSwap(false, true) {
		return
	}
	if workers <= 0 {
		workers = 1
	}

	logx.Infow("Share engine started", logx.Field("workers", workers))
	for i := 0; i < workers; i++ {
		e.group.RunSafe(func() { e.worker() })
	}
}

// Stop gracefully stops the delivery engine.
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}

	logx.Info("Share engine stopping, waiting for workers")
	e.cancel()
	e.group.Wait()
	logx.Info("Share engine stopped")
}

func (e *Engine) worker() {
	backoff := 100 * time.Millisecond
	const maxBackoff = 5 * time.Second

	for {
		select {
		case <-e.ctx.Done():
			return
		default:
			job, msg, err := e.queue.Receive(e.ctx)
			if err != nil || job == nil {
				// No work or transient receive error, adaptive backoff.
				time.Sleep(backoff)
				if backoff < maxBackoff {
					backoff = min(backoff*2, maxBackoff)
				}
				e.updateQueueDepth()
				continue
			}

			backoff = 100 * time.Millisecond
			e.processJob(job, msg)
		}
	}
}

func (e *Engine) processJob(job *Job, msg *goqite.Message) {
	ctx := logx.ContextWithFields(e.ctx,
		logx.Field("share_id", job.ID),
		logx.Field("recipient", job.Recipient),
		logx.Field("language", job.Language),
	)

	// Panic recovery: mark the share failed instead of killing the worker.
	defer rescue.RecoverCtx(ctx, func() {
		sharesFailed.Inc(job.Language, "panic")
		e.queue.MarkFailed(ctx, job.ID, "panic during delivery")
		e.queue.Delete(ctx, msg)
	})

	logx.WithContext(ctx).Info("Processing share")

	start := time.Now()

	if err := e.rateLimiter.Wait(ctx); err != nil {
		e.handleError(ctx, job, msg, err)
		return
	}

	loc := locale.For(job.Language)
	html, err := e.previews.Email(job.Subject, loc.Greeting, job.Body, loc.Closing)
	if err != nil {
		e.handleError(ctx, job, msg, fmt.Errorf("render share email: %w", err))
		return
	}

	if err := mail.Send(e.smtpConfig, job.Recipient, job.Subject, html); err != nil {
		e.handleError(ctx, job, msg, fmt.Errorf("send to %s: %w", job.Recipient, err))
		return
	}

	e.queue.MarkSent(ctx, job.ID)
	e.queue.Delete(ctx, msg)
	sharesSent.Inc(job.Language)
	deliveryDuration.ObserveFloat(time.Since(start).Seconds(), job.Language)

	logx.WithContext(ctx).Info("Share sent")
}

func (e *Engine) handleError(ctx context.Context, job *Job, msg *goqite.Message, err error) {
	attempts, maxAttempts, trackErr := e.queue.Attempts(ctx, job.ID)
	if trackErr != nil {
		attempts, maxAttempts = 0, e.config.MaxAttempts
	}
	attempts++

	reason := "transient"
	if isPermanentFailure(err) {
		reason = "permanent"
	}

	if isPermanentFailure(err) || attempts >= maxAttempts {
		e.queue.MarkFailed(ctx, job.ID, err.Error())
		e.queue.Delete(ctx, msg)
		sharesFailed.Inc(job.Language, reason)
		logx.WithContext(ctx).Errorf("Share delivery failed permanently: %v", err)
		return
	}

	// Leave the message in flight; extend its visibility so goqite redelivers
	// it after the backoff.
	backoff := e.calculateBackoff(attempts)
	e.queue.MarkRetry(ctx, job.ID, err.Error())
	if extendErr := e.queue.Extend(ctx, msg, backoff); extendErr != nil {
		logx.WithContext(ctx).Errorf("extend share message: %v", extendErr)
	}
	sharesRetried.Inc(job.Language)

	logx.WithContext(ctx).Infof("Share delivery retrying in %s: %v", backoff, err)
}

func (e *Engine) calculateBackoff(attempts int) time.Duration {
	backoff := e.config.RetryBackoff * time.Duration(math.Pow(2, float64(attempts-1)))
	if backoff > e.config.MaxBackoff {
		return e.config.MaxBackoff
	}
	return backoff
}

// isPermanentFailure checks whether the error indicates a permanent SMTP
// failure (5xx reply codes).
func isPermanentFailure(err error) bool {
	msg := err.Error()
	permanentCodes := []string{"550", "551", "552", "553", "554"}
	for _, code := range permanentCodes {
		if strings.Contains(msg, code) {
			return true
		}
	}
	return false
}

// updateQueueDepth refreshes the queue depth gauge from current stats.
func (e *Engine) updateQueueDepth() {
	stats, err := e.queue.Stats(e.ctx)
	if err != nil {
		return
	}
	for status, count := range stats {
		queueDepth.Set(float64(count), status)
	}
}
