package text

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/crypto"
	"github.com/mrz1836/rcli/internal/ctxutil"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/input"
)

// BatchResult is the outcome of signing one input of a batch.
type BatchResult struct {
	Input     string `json:"input"`
	Signature string `json:"signature,omitempty"`
	Error     string `json:"error,omitempty"`

	// Err is the failure for this input, nil on success.
	Err error `json:"-"`
}

// SignBatch signs every input with the key in opts, running up to
// concurrency signers at once. Results are returned in input order.
//
// Key problems and invalid batch shapes fail the whole batch. A failure on
// one input is recorded in its BatchResult and does not stop the others.
// Each worker opens its own stream; the loaded signer is never mutated after
// construction, so workers share no mutable state.
func SignBatch(ctx context.Context, inputs []string, opts SignOptions, concurrency int) ([]BatchResult, error) {
	if err := checkBatchInputs(inputs); err != nil {
		return nil, err
	}
	concurrency = clampConcurrency(concurrency)

	signer, err := crypto.LoadSigner(ctx, opts.Format, opts.KeyPath, opts.Keys)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load signing key")
	}

	log := zerolog.Ctx(ctx)
	log.Debug().
		Int("inputs", len(inputs)).
		Int("concurrency", concurrency).
		Str("format", opts.Format.String()).
		Msg("starting batch signing")

	res := resolver(opts.Resolver)
	results := make([]BatchResult, len(inputs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, name := range inputs {
		g.Go(func() error {
			if err := ctxutil.Canceled(gCtx); err != nil {
				return err
			}
			results[i] = signOne(gCtx, res, signer, name)
			if results[i].Err != nil {
				log.Warn().Err(results[i].Err).Str("input", name).Msg("batch input failed")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func signOne(ctx context.Context, res *input.Resolver, signer crypto.Signer, name string) BatchResult {
	result := BatchResult{Input: name}

	rc, err := res.Open(name)
	if err != nil {
		result.Err = err
		result.Error = err.Error()
		return result
	}
	defer func() { _ = rc.Close() }()

	raw, err := signer.Sign(ctx, rc)
	if err != nil {
		result.Err = err
		result.Error = err.Error()
		return result
	}
	result.Signature = crypto.EncodeSignature(raw)
	return result
}

func checkBatchInputs(inputs []string) error {
	if len(inputs) == 0 {
		return errors.ErrNoInputs
	}
	stdin := 0
	for _, name := range inputs {
		if input.IsStdin(name) {
			stdin++
		}
	}
	if stdin > 1 {
		return errors.ErrStdinReused
	}
	return nil
}

func clampConcurrency(n int) int {
	switch {
	case n <= 0:
		return constants.DefaultBatchConcurrency
	case n > constants.MaxBatchConcurrency:
		return constants.MaxBatchConcurrency
	default:
		return n
	}
}
