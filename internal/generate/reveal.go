package generate

import (
	"context"
	"strings"
	"time"
)

// Words splits text on single spaces, the unit of the reveal animation.
func Words(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, " ")
}

// Reveal emits text one word at a time, each frame holding everything
// revealed so far. The first frame is sent immediately and the rest every
// interval. The channel is closed after the last word or when ctx ends.
func Reveal(ctx context.Context, text string, interval time.Duration) <-chan string {
	frames := make(chan string)
	words := Words(text)

	go func() {
		defer close(frames)
		if len(words) == 0 {
			return
		}

		var ticker *time.Ticker
		if interval > 0 {
			ticker = time.NewTicker(interval)
			defer ticker.Stop()
		}

		var shown strings.Builder
		for i, w := range words {
			if i > 0 {
				if ticker != nil {
					select {
					case <-ticker.C:
					case <-ctx.Done():
						return
					}
				}
				shown.WriteByte(' ')
			}
			shown.WriteString(w)

			select {
			case frames <- shown.String():
			case <-ctx.Done():
				return
			}
		}
	}()

	return frames
}
