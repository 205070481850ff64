// Package trace records the step-by-step execution of a simulator
// operation.
//
// Each operation threads a Builder through its call and returns the
// finished Trace to the caller. Builders are never shared between calls,
// so every invocation starts from an empty trace and the returned steps
// are immutable once handed out.
package trace

import (
	"fmt"
)

// Field is one labeled register or signal snapshot within a step.
type Field struct {
	Key   string
	Value string
}

// F formats a value into a Field. Values that implement fmt.Stringer
// (such as bit vectors) render through their String method.
func F(key string, value any) Field {
	return Field{Key: key, Value: fmt.Sprint(value)}
}

// Step is one ordered record of an operation's intermediate state.
type Step struct {
	Index       int
	Description string
	Fields      []Field
}

// Trace is the ordered, append-only sequence of steps produced by a
// single operation call.
type Trace []Step

// Builder accumulates steps for one operation call.
type Builder struct {
	steps Trace
}

// Add appends a step, assigning it the next index.
func (b *Builder) Add(description string, fields ...Field) {
	b.steps = append(b.steps, Step{
		Index:       len(b.steps),
		Description: description,
		Fields:      fields,
	})
}

// Append merges a sub-operation's trace, re-indexing its steps to follow
// the steps already recorded.
func (b *Builder) Append(tr Trace) {
	for _, step := range tr {
		b.steps = append(b.steps, Step{
			Index:       len(b.steps),
			Description: step.Description,
			Fields:      step.Fields,
		})
	}
}

// Len returns the number of steps recorded so far.
func (b *Builder) Len() int {
	return len(b.steps)
}

// Trace returns the accumulated steps.
func (b *Builder) Trace() Trace {
	return b.steps
}
