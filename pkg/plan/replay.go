package plan

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/arthur-debert/gendry/pkg/logging"
	"github.com/arthur-debert/gendry/pkg/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ReplayOptions tunes Replay
type ReplayOptions struct {
	// Workers bounds concurrent entries; values below 1 mean sequential
	Workers int

	Logger *zerolog.Logger
}

// Replay drives proc with every entry of p and returns how many entries were
// applied. With one worker entries run in plan order; with more, entries for
// the same path race. The first error stops the replay.
func Replay(ctx context.Context, p *Plan, proc types.TemplateProcessor, opts ReplayOptions) (int, error) {
	logger := logging.GetLogger("plan")
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	done := logging.LogOperationStart(logger, "replay")
	defer done()

	var applied atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, entry := range p.Outputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path := p.Resolve(entry)
			if err := apply(proc, entry, path); err != nil {
				return fmt.Errorf("entry %d (%s): %w", i, path, err)
			}
			applied.Add(1)
			logger.Trace().Int("index", i).Str("action", string(entry.Action)).Str("path", path).Msg("Applied plan entry")
			return nil
		})
	}

	err := g.Wait()
	if err == nil && int(applied.Load()) < len(p.Outputs) {
		// cancelled before the remaining entries were started
		err = ctx.Err()
	}
	logger.Info().
		Int("entries", len(p.Outputs)).
		Int64("applied", applied.Load()).
		Int("workers", workers).
		Msg("Plan replayed")
	return int(applied.Load()), err
}

func apply(proc types.TemplateProcessor, e Entry, path string) error {
	switch e.Action {
	case ActionWrite, "":
		_, err := proc.Write(e.Data, e.Template, path)
		return err
	case ActionFile:
		_, err := proc.WriteToFile(path, []byte(e.Contents))
		return err
	case ActionSkip:
		return proc.Skip(path, e.Context)
	case ActionIgnore:
		proc.Ignore(path, e.Context)
		return nil
	case ActionError:
		proc.Error(path, e.Context)
		return nil
	default:
		return fmt.Errorf("unknown action %q", e.Action)
	}
}
