package translate

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/tsawler/bilingual/logger"
)

// Default Aligner settings.
const (
	DefaultBatchSize     = 5
	DefaultConcurrency   = 1
	DefaultRatePerSecond = 1.0
)

// Config controls batching and pacing of translation requests.
type Config struct {
	// BatchSize is the number of texts sent per request.
	BatchSize int
	// Concurrency bounds the number of requests in flight.
	Concurrency int
	// RatePerSecond bounds how many requests start per second. A negative
	// value disables pacing.
	RatePerSecond float64
	// Burst is the number of requests that may start back to back.
	Burst int
}

// SetDefaults applies default values to the config if not set.
func (c *Config) SetDefaults() {
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.RatePerSecond == 0 {
		c.RatePerSecond = DefaultRatePerSecond
	}
	if c.Burst <= 0 {
		c.Burst = 1
	}
}

// ProgressFunc receives the completed share of a run, 0 to 100.
type ProgressFunc func(percent int)

// Aligner sends texts to a Translator in paced batches and guarantees an
// output of the same length and order as the input. A batch that fails, or
// comes back with the wrong number of texts, is filled with Placeholder
// values so later indices never shift.
type Aligner struct {
	translator Translator
	cfg        Config
	limiter    *rate.Limiter
	log        logger.Logger
}

// NewAligner wraps t. A nil log disables logging.
func NewAligner(t Translator, cfg Config, log logger.Logger) *Aligner {
	cfg.SetDefaults()
	if log == nil {
		log = logger.NewNop()
	}

	limit := rate.Limit(cfg.RatePerSecond)
	if cfg.RatePerSecond < 0 {
		limit = rate.Inf
	}

	return &Aligner{
		translator: t,
		cfg:        cfg,
		limiter:    rate.NewLimiter(limit, cfg.Burst),
		log:        log,
	}
}

// Translate implements Translator.
func (a *Aligner) Translate(ctx context.Context, texts []string, opts Options) ([]string, error) {
	return a.TranslateWithProgress(ctx, texts, opts, nil)
}

// TranslateWithProgress translates texts and reports progress after every
// batch. It only fails when ctx is done; translation failures become
// placeholders.
func (a *Aligner) TranslateWithProgress(ctx context.Context, texts []string, opts Options, progress ProgressFunc) ([]string, error) {
	if progress == nil {
		progress = func(int) {}
	}

	out := make([]string, len(texts))
	if len(texts) == 0 {
		progress(100)
		return out, nil
	}
	progress(0)

	var (
		mu   sync.Mutex
		done int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Concurrency)

	for start := 0; start < len(texts); start += a.cfg.BatchSize {
		end := min(start+a.cfg.BatchSize, len(texts))
		batch := texts[start:end]
		start := start

		g.Go(func() error {
			if err := a.limiter.Wait(gctx); err != nil {
				return err
			}

			translated := a.translateBatch(gctx, batch, opts, start)
			copy(out[start:], translated)

			mu.Lock()
			done += len(batch)
			progress(done * 100 / len(texts))
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// translateBatch never fails; it substitutes placeholders for a batch the
// translator could not handle.
func (a *Aligner) translateBatch(ctx context.Context, batch []string, opts Options, offset int) []string {
	translated, err := a.translator.Translate(ctx, batch, opts)
	if err == nil && len(translated) == len(batch) {
		return translated
	}

	if err != nil {
		a.log.Warn("Translation batch failed, using placeholders",
			logger.Int("offset", offset),
			logger.Int("size", len(batch)),
			logger.Error(err),
		)
	} else {
		a.log.Warn("Translation batch returned wrong number of texts, using placeholders",
			logger.Int("offset", offset),
			logger.Int("size", len(batch)),
			logger.Int("returned", len(translated)),
		)
	}

	out := make([]string, len(batch))
	for i, text := range batch {
		out[i] = Placeholder(text)
	}
	return out
}
