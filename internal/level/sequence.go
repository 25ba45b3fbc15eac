package level

import (
	"fmt"
	"sync"
)

// Factory constructs a fresh level for a stage.
type Factory func() Level

// Sequence maintains the ordered set of level factories the walkthrough
// advances through.
type Sequence struct {
	mu        sync.RWMutex
	factories map[Stage]Factory
	order     []Stage
}

// NewSequence returns an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{factories: map[Stage]Factory{}}
}

// Register installs a level factory for a stage. Returns an error if the
// stage is already taken.
func (s *Sequence) Register(stage Stage, factory Factory) error {
	if stage == StageNone || stage == StageComplete {
		return fmt.Errorf("level: stage %s cannot host a level", stage.FriendlyName())
	}
	if factory == nil {
		return fmt.Errorf("level: factory is required for %s", stage.FriendlyName())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.factories[stage]; exists {
		return fmt.Errorf("level: %s already registered", stage.FriendlyName())
	}
	s.factories[stage] = factory
	s.order = append(s.order, stage)
	return nil
}

// MustRegister panics if registration fails.
func (s *Sequence) MustRegister(stage Stage, factory Factory) {
	if err := s.Register(stage, factory); err != nil {
		panic(err)
	}
}

// Resolve constructs the level for a stage.
func (s *Sequence) Resolve(stage Stage) (Level, error) {
	s.mu.RLock()
	factory, ok := s.factories[stage]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("level: no level registered for %s", stage.FriendlyName())
	}
	lvl := factory()
	if lvl == nil {
		return nil, fmt.Errorf("level: factory for %s returned nil", stage.FriendlyName())
	}
	if lvl.Stage() != stage {
		return nil, fmt.Errorf("level: factory for %s built a %s level", stage.FriendlyName(), lvl.Stage().FriendlyName())
	}
	return lvl, nil
}

// Stages returns the stages in registration order.
func (s *Sequence) Stages() []Stage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Stage{}, s.order...)
}
