package markov

import (
	"context"
	"log/slog"
)

// StreamToken is one element of a generation stream. Exactly one token per
// stream has End set: it is the last one sent and carries the error of the
// walk, if any.
type StreamToken struct {
	Text string
	End  bool
	Err  error
}

// GenerateStream performs one walk and returns a read-only channel of its
// pieces as they are chosen. This is useful for real-time consumers or very
// long walks. The channel is closed after the End token, or without one if
// ctx is cancelled while the consumer is not receiving.
//
// ErrEmptyModel is reported synchronously, before any goroutine is started.
func (g *Generator) GenerateStream(ctx context.Context) (<-chan StreamToken, error) {
	if g.table.Empty() {
		return nil, ErrEmptyModel
	}

	tokenChan := make(chan StreamToken)

	go func() {
		defer close(tokenChan)

		cancelled := false
		err := g.walk(ctx, func(value string) bool {
			select {
			case <-ctx.Done():
				cancelled = true
				return false
			case tokenChan <- StreamToken{Text: value}:
				return true
			}
		})
		if cancelled {
			g.options.logger.DebugContext(ctx, "Generation stream cancelled by context")
			return
		}
		if err != nil {
			g.options.logger.DebugContext(ctx, "Generation stream failed", slog.Any("error", err))
		}

		select {
		case <-ctx.Done():
		case tokenChan <- StreamToken{End: true, Err: err}:
		}
	}()

	return tokenChan, nil
}
