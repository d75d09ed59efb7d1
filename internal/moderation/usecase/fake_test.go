package usecase

import (
	"context"
	"sync"

	"iffy-moderation/internal/moderation/repository/memory"
	"iffy-moderation/pkg/iffy"
	"iffy-moderation/pkg/log"
)

// fakeIffy returns a fixed result and remembers what it was sent.
type fakeIffy struct {
	mu     sync.Mutex
	result iffy.Result
	calls  [][]iffy.Content
}

func (f *fakeIffy) Moderate(ctx context.Context, content []iffy.Content) iffy.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, content)
	return f.result
}

func (f *fakeIffy) AuthHeaders() iffy.Headers    { return nil }
func (f *fakeIffy) DefaultHeaders() iffy.Headers { return nil }

func newTestUseCase(result iffy.Result) (*implUseCase, *fakeIffy) {
	fake := &fakeIffy{result: result}
	l := log.NewNop()
	return New(memory.New(100, 0, l), fake, l), fake
}
