package translate

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tsawler/bilingual/logger"
)

// fast disables pacing so tests do not sleep.
var fast = Config{RatePerSecond: -1}

func upper() Translator {
	return Func(func(_ context.Context, texts []string, _ Options) ([]string, error) {
		out := make([]string, len(texts))
		for i, t := range texts {
			out[i] = strings.ToUpper(t)
		}
		return out, nil
	})
}

func texts(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('a' + i))
	}
	return out
}

func TestConfig_SetDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()

	assert.Equal(t, DefaultBatchSize, cfg.BatchSize)
	assert.Equal(t, DefaultConcurrency, cfg.Concurrency)
	assert.Equal(t, DefaultRatePerSecond, cfg.RatePerSecond)
	assert.Equal(t, 1, cfg.Burst)

	cfg = Config{BatchSize: 2, Concurrency: 4, RatePerSecond: -1, Burst: 3}
	cfg.SetDefaults()
	assert.Equal(t, Config{BatchSize: 2, Concurrency: 4, RatePerSecond: -1, Burst: 3}, cfg)
}

func TestAligner_PreservesOrder(t *testing.T) {
	cfg := fast
	cfg.Concurrency = 3
	a := NewAligner(upper(), cfg, nil)

	in := texts(12)
	out, err := a.Translate(context.Background(), in, Options{TargetLanguage: "fr"})
	require.NoError(t, err)

	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, strings.ToUpper(in[i]), out[i])
	}
}

func TestAligner_Batches(t *testing.T) {
	var (
		mu    sync.Mutex
		sizes []int
	)
	tr := Func(func(_ context.Context, texts []string, _ Options) ([]string, error) {
		mu.Lock()
		sizes = append(sizes, len(texts))
		mu.Unlock()
		return texts, nil
	})

	_, err := NewAligner(tr, fast, nil).Translate(context.Background(), texts(12), Options{})
	require.NoError(t, err)

	assert.Equal(t, []int{5, 5, 2}, sizes)
}

func TestAligner_FailedBatchUsesPlaceholders(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	tr := Func(func(_ context.Context, texts []string, _ Options) ([]string, error) {
		if texts[0] == "f" {
			return nil, errors.New("service unavailable")
		}
		if texts[0] == "k" {
			return texts[:1], nil
		}
		return texts, nil
	})

	a := NewAligner(tr, fast, logger.FromZap(zap.New(core)))
	in := texts(12)
	out, err := a.Translate(context.Background(), in, Options{})
	require.NoError(t, err)

	require.Len(t, out, 12)
	assert.Equal(t, in[:5], out[:5])
	for i := 5; i < 12; i++ {
		assert.Equal(t, Placeholder(in[i]), out[i])
	}
	assert.Equal(t, "[Translation failed: f]", out[5])
	assert.Equal(t, 2, logs.Len())
}

func TestAligner_Progress(t *testing.T) {
	var reported []int
	_, err := NewAligner(upper(), fast, nil).TranslateWithProgress(
		context.Background(), texts(12), Options{},
		func(p int) { reported = append(reported, p) },
	)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 41, 83, 100}, reported)
}

func TestAligner_Empty(t *testing.T) {
	var reported []int
	out, err := NewAligner(upper(), fast, nil).TranslateWithProgress(
		context.Background(), nil, Options{},
		func(p int) { reported = append(reported, p) },
	)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, []int{100}, reported)
}

func TestAligner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := NewAligner(upper(), Config{}, nil).Translate(ctx, texts(3), Options{})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestEcho(t *testing.T) {
	in := []string{"one", "two"}
	out, err := Echo{}.Translate(context.Background(), in, Options{})
	require.NoError(t, err)
	assert.Equal(t, in, out)

	out[0] = "changed"
	assert.Equal(t, "one", in[0])
}
