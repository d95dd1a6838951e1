package compiler

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Source is one named input to CompileAll.
type Source struct {
	Name string
	Text string
}

// Output is the compiled text for the Source with the same Name.
type Output struct {
	Name string
	Text string
}

// CompileAll compiles sources concurrently, at most c.jobs at a time, and
// returns outputs in input order. The first failure cancels the remaining
// work and is returned; no outputs are returned with it.
func (c *Compiler) CompileAll(ctx context.Context, sources []Source) ([]Output, error) {
	logger := zerolog.Ctx(ctx)
	outputs := make([]Output, len(sources))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(c.jobs)

	for i, src := range sources {
		i, src := i, src
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := c.Compile(src.Text, src.Name)
			if err != nil {
				return err
			}
			outputs[i] = Output{Name: src.Name, Text: text}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		logger.Debug().Err(err).Int("sources", len(sources)).Msg("batch failed")
		return nil, err
	}
	logger.Debug().Int("sources", len(sources)).Msg("batch compiled")
	return outputs, nil
}
