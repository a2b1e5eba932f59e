package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/health"
	"github.com/jsamuelsen11/teamforge-tracker/mocks"
)

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestCheckAll_Results(t *testing.T) {
	t.Parallel()

	breakerOpen := errors.New("teamforge: failing (circuit breaker open)")

	tests := []struct {
		name     string
		checkers func(t *testing.T) []*mocks.MockHealthChecker
		want     map[string]error
	}{
		{
			name:     "nothing registered",
			checkers: func(*testing.T) []*mocks.MockHealthChecker { return nil },
			want:     map[string]error{},
		},
		{
			name: "teamforge healthy",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "teamforge", nil)}
			},
			want: map[string]error{"teamforge": nil},
		},
		{
			name: "one of two failing",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{
					checker(t, "teamforge", breakerOpen),
					checker(t, "keyring", nil),
				}
			},
			want: map[string]error{"teamforge": breakerOpen, "keyring": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for _, c := range tt.checkers(t) {
				r.Register(c)
			}

			got := r.CheckAll(context.Background())
			if got == nil || len(got) != len(tt.want) {
				t.Fatalf("CheckAll() = %v, want %v", got, tt.want)
			}
			for name, want := range tt.want {
				if err, ok := got[name]; !ok || !errors.Is(err, want) {
					t.Errorf("%s = %v (present %v), want %v", name, err, ok, want)
				}
			}
		})
	}
}

func TestRegister_ReplacesSameName(t *testing.T) {
	t.Parallel()

	stale := mocks.NewMockHealthChecker(t)
	stale.EXPECT().Name().Return("teamforge")

	replacementErr := errors.New("teamforge: degraded (circuit breaker half-open)")
	r := health.New()
	r.Register(stale)
	r.Register(checker(t, "teamforge", replacementErr))

	got := r.CheckAll(context.Background())
	if len(got) != 1 || !errors.Is(got["teamforge"], replacementErr) {
		t.Errorf("CheckAll() = %v, want only the replacement's result", got)
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("teamforge")
	c.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(c)

	if err := r.CheckAll(ctx)["teamforge"]; !errors.Is(err, context.Canceled) {
		t.Errorf("teamforge = %v, want context.Canceled", err)
	}
}

func TestCheckAll_AppliesCheckTimeout(t *testing.T) {
	t.Parallel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("teamforge")
	c.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		return ok && time.Until(deadline) <= time.Second
	})).Return(nil)

	r := health.New(health.WithCheckTimeout(time.Second))
	r.Register(c)

	if err := r.CheckAll(context.Background())["teamforge"]; err != nil {
		t.Errorf("teamforge = %v, want nil", err)
	}
}

func TestCheckAll_ConcurrentWithRegister(t *testing.T) {
	t.Parallel()

	r := health.New()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("teamforge")
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
				return
			}
			r.CheckAll(context.Background())
		}()
	}
	wg.Wait()
}
