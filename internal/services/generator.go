package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"mccwk.com/poet/internal/poem"
)

// Model is a generative backend that returns JSON text constrained by schema.
type Model interface {
	Name() string
	GenerateJSON(ctx context.Context, prompt string, schema *poem.Schema) (string, error)
}

// Generator turns poem options into a validated poem. It issues exactly one
// backend request per call and never retries. Callers must not overlap calls
// that share a context they intend to cancel independently.
type Generator struct {
	model   Model
	logger  *slog.Logger
	timeout time.Duration
}

// NewGenerator creates a Generator for model. A nil logger uses slog.Default.
func NewGenerator(model Model, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{model: model, logger: logger}
}

// WithTimeout bounds each request. Zero means no limit.
func (g *Generator) WithTimeout(d time.Duration) *Generator {
	g.timeout = d
	return g
}

// ModelName reports the backend in use.
func (g *Generator) ModelName() string {
	return g.model.Name()
}

type modelReply struct {
	raw string
	err error
}

// Generate builds the prompt for opts, sends it and validates the reply.
//
// A context that is already cancelled fails with ErrCancelled before any
// request is issued. Otherwise the request is raced against ctx: whichever
// finishes first decides the outcome and a late reply is discarded.
func (g *Generator) Generate(ctx context.Context, opts poem.Options) (poem.Result, error) {
	if err := ctx.Err(); err != nil {
		return poem.Result{}, contextError(err)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	prompt := poem.BuildPrompt(opts)
	g.logger.Debug("requesting poem",
		"model", g.model.Name(),
		"inspiration", poem.ClassifyInspiration(opts.Inspiration).String(),
		"prompt_bytes", len(prompt),
	)

	start := time.Now()
	replies := make(chan modelReply, 1)
	go func() {
		raw, err := g.model.GenerateJSON(ctx, prompt, poem.ResponseSchema())
		replies <- modelReply{raw: raw, err: err}
	}()

	select {
	case <-ctx.Done():
		return poem.Result{}, g.interrupted(ctx.Err())

	case reply := <-replies:
		if reply.err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return poem.Result{}, g.interrupted(ctxErr)
			}
			g.logger.Error("poem generation failed", "model", g.model.Name(), "error", reply.err)
			return poem.Result{}, &ServiceError{Op: "generate", Err: reply.err}
		}

		result, err := DecodeResult(reply.raw)
		if err != nil {
			g.logger.Error("invalid poem response", "model", g.model.Name(), "error", err, "raw", reply.raw)
			return poem.Result{}, err
		}

		g.logger.Info("poem generated",
			"model", g.model.Name(),
			"title", result.Title,
			"elapsed", time.Since(start).Round(time.Millisecond),
		)
		return result, nil
	}
}

func (g *Generator) interrupted(ctxErr error) error {
	err := contextError(ctxErr)
	if errors.Is(err, ErrCancelled) {
		g.logger.Info("poem generation cancelled")
	} else {
		g.logger.Error("poem generation timed out", "error", ctxErr)
	}
	return err
}
