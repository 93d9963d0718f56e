// Package adapter turns capability requests into upstream calls.
//
// Every operation builds a provider-neutral request, races it against the
// deadline for its call class and normalizes the output. Operations return
// *InputError for problems with the caller's arguments and the raw upstream
// error otherwise; classification happens in the caller.
package adapter

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/Cyclone1070/oaimcp/internal/extract"
	"github.com/Cyclone1070/oaimcp/internal/provider"
	"github.com/Cyclone1070/oaimcp/internal/provider/models"
	"github.com/spf13/afero"
)

// Options configures an Adapter.
type Options struct {
	// BaseTimeout is scaled per call class.
	BaseTimeout time.Duration
	// Policy decides what happens to calls that lose the deadline race.
	Policy provider.RacePolicy
	// Logger receives one record per upstream call. Nil discards.
	Logger *slog.Logger
}

// Adapter binds a provider to the local filesystem and the timeout policy.
type Adapter struct {
	provider    provider.Provider
	fs          afero.Fs
	baseTimeout time.Duration
	policy      provider.RacePolicy
	logger      *slog.Logger
}

// New creates an Adapter. Input files are read from fs.
func New(p provider.Provider, fs afero.Fs, opts Options) *Adapter {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Adapter{
		provider:    p,
		fs:          fs,
		baseTimeout: opts.BaseTimeout,
		policy:      opts.Policy,
		logger:      logger.With("component", "adapter", "provider", p.Name()),
	}
}

// ProviderName returns the name of the bound provider.
func (a *Adapter) ProviderName() string {
	return a.provider.Name()
}

// race runs fn under the deadline for class and logs the outcome.
func race[T any](ctx context.Context, a *Adapter, class provider.CallClass, model string, fn func(context.Context) (T, error)) (T, error) {
	start := time.Now()
	v, err := provider.Race(ctx, provider.Deadline(a.baseTimeout, class), a.policy, fn)

	logger := a.logger.With("class", string(class), "model", model, "elapsed", time.Since(start))
	if err != nil {
		logger.Warn("upstream call failed", "error", err)
		return v, err
	}
	logger.Debug("upstream call completed")
	return v, nil
}

// respond races a Responses-style call and extracts its output.
func (a *Adapter) respond(ctx context.Context, class provider.CallClass, req *models.UpstreamRequest) (*extract.Extraction, error) {
	resp, err := race(ctx, a, class, req.Model, func(ctx context.Context) (*models.UpstreamResponse, error) {
		return a.provider.Respond(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return a.extract(resp, req.Model), nil
}

func (a *Adapter) extract(resp *models.UpstreamResponse, model string) *extract.Extraction {
	ex := extract.Extract(resp)
	if len(ex.Unknown) > 0 {
		a.logger.Warn("unrecognized output items", "model", model, "types", ex.Unknown)
	}
	return ex
}

// blocks builds the ordered content sequence: the instruction block first
// when present, then one user block.
func blocks(system string, user ...models.ContentPart) []models.ContentBlock {
	out := make([]models.ContentBlock, 0, 2)
	if system != "" {
		out = append(out, models.ContentBlock{
			Role:  models.RoleSystem,
			Parts: []models.ContentPart{models.TextPart{Text: system}},
		})
	}
	return append(out, models.ContentBlock{Role: models.RoleUser, Parts: user})
}
