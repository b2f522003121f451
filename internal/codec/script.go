package codec

import (
	"context"
	"fmt"
	"sync"
)

// #region scripted-generator

// ScriptedGenerator replays canned responses keyed by role description.
// Each role has an ordered queue; once a queue is exhausted its last entry
// repeats. Used by the replay harness and tests in place of a live service.
type ScriptedGenerator struct {
	mu     sync.Mutex
	queues map[string][]string
	cursor map[string]int

	// Calls records every (role, task) pair for assertions.
	Calls []ScriptedCall
}

// ScriptedCall is one recorded Generate invocation.
type ScriptedCall struct {
	Role string
	Task string
}

// NewScriptedGenerator creates an empty scripted generator.
func NewScriptedGenerator() *ScriptedGenerator {
	return &ScriptedGenerator{
		queues: make(map[string][]string),
		cursor: make(map[string]int),
	}
}

// Script appends responses to the queue for a role description.
func (s *ScriptedGenerator) Script(role string, responses ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues[role] = append(s.queues[role], responses...)
}

// #endregion scripted-generator

// #region generate

// Generate pops the next scripted response for the role. A role with no
// script at all is an error, mirroring an unreachable service.
func (s *ScriptedGenerator) Generate(_ context.Context, role, task string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls = append(s.Calls, ScriptedCall{Role: role, Task: task})

	queue := s.queues[role]
	if len(queue) == 0 {
		return "", fmt.Errorf("no scripted response for role %q", role)
	}
	i := s.cursor[role]
	if i >= len(queue) {
		i = len(queue) - 1
	} else {
		s.cursor[role] = i + 1
	}
	return queue[i], nil
}

// #endregion generate

// #region failing-generator

// FailingGenerator always returns the configured error. Used to exercise the
// orchestrator's absorb-and-continue policy.
type FailingGenerator struct {
	Err error
}

// Generate returns the configured error for every call.
func (f *FailingGenerator) Generate(context.Context, string, string) (string, error) {
	return "", f.Err
}

// #endregion failing-generator
