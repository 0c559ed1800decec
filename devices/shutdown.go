package devices

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mobile-next/mobiletouch/utils"
)

// ShutdownHook collects named cleanup functions that the server runs on
// server.shutdown or when its context ends.
type ShutdownHook struct {
	mu    sync.Mutex
	hooks []namedHook
}

type namedHook struct {
	name string
	fn   func() error
}

func NewShutdownHook() *ShutdownHook {
	return &ShutdownHook{}
}

// Register adds a cleanup function. Hooks run in reverse registration order,
// so a resource registered after its dependency is released before it.
func (s *ShutdownHook) Register(name string, cleanupFn func() error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, namedHook{name: name, fn: cleanupFn})
	utils.Verbose("Registered shutdown hook: %s", name)
}

// Shutdown runs every hook once, even when earlier ones fail, and joins
// their errors.
func (s *ShutdownHook) Shutdown() error {
	s.mu.Lock()
	hooks := s.hooks
	s.hooks = nil
	s.mu.Unlock()

	if len(hooks) == 0 {
		return nil
	}

	utils.Verbose("Executing %d shutdown hook(s)", len(hooks))

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		hook := hooks[i]
		utils.Verbose("Running shutdown hook: %s", hook.name)
		if err := hook.fn(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", hook.name, err))
		}
	}

	return errors.Join(errs...)
}

// Count returns the number of pending hooks
func (s *ShutdownHook) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.hooks)
}
