// Package pipeline runs the lifecycle every command handler shares:
// acquire, gate, validate, modify, persist, map, and error classification.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"household-intranet/errors"
	"household-intranet/mapping"
	"household-intranet/specification"

	"golang.org/x/text/language"
)

// Descriptor names a handler for diagnostics. Names are given explicitly.
type Descriptor struct {
	Handler  string
	Command  string
	Response string
}

// Strategy is what a concrete handler supplies.
//
// C is the command, A the aggregate the command targets and T the entity that
// is persisted and mapped into the response.
type Strategy[C, A, T any] interface {
	// Acquire loads the aggregate using the identifiers carried by the command.
	Acquire(ctx context.Context, command *C) (A, error)
	// AddValidationRules registers predicates in the order their failures should be reported.
	AddValidationRules(aggregate A, command *C, spec *specification.Specification)
	// ModifyData runs once, only after every registered predicate passed. It may
	// register and evaluate more predicates on spec.
	ModifyData(ctx context.Context, aggregate A, command *C, spec *specification.Specification) (T, error)
	Persist(result T) (T, error)
}

// Gate is a policy check run on the aggregate before validation rules.
type Gate[A any] func(aggregate A) error

// Culture resolves the culture the response is mapped in.
type Culture[A, C any] func(aggregate A, command *C) language.Tag

type Pipeline[C, A, T, R any] struct {
	descriptor Descriptor
	strategy   Strategy[C, A, T]
	mapper     mapping.Mapper[T, R]
	gate       Gate[A]
	culture    Culture[A, C]
	log        *slog.Logger
}

func New[C, A, T, R any](
	descriptor Descriptor,
	strategy Strategy[C, A, T],
	mapper mapping.Mapper[T, R],
	log *slog.Logger,
) *Pipeline[C, A, T, R] {
	return &Pipeline[C, A, T, R]{
		descriptor: descriptor,
		strategy:   strategy,
		mapper:     mapper,
		log:        log.With("handler", descriptor.Handler),
	}
}

func (p *Pipeline[C, A, T, R]) WithGate(gate Gate[A]) *Pipeline[C, A, T, R] {
	p.gate = gate
	return p
}

func (p *Pipeline[C, A, T, R]) WithCulture(culture Culture[A, C]) *Pipeline[C, A, T, R] {
	p.culture = culture
	return p
}

func (p *Pipeline[C, A, T, R]) Descriptor() Descriptor {
	return p.descriptor
}

// Execute runs the lifecycle for one command. Errors are returned as raised;
// HandleError classifies them.
func (p *Pipeline[C, A, T, R]) Execute(ctx context.Context, command *C) (R, error) {
	var zero R
	if command == nil {
		return zero, errors.NewArgumentNilError("command")
	}

	// 1. Acquire the aggregate the command targets
	aggregate, err := p.strategy.Acquire(ctx, command)
	if err != nil {
		return zero, err
	}

	// 2. Policy gates come before any validation rule
	if p.gate != nil {
		if err = p.gate(aggregate); err != nil {
			return zero, err
		}
	}

	// 3. Validate; a fresh specification per execution
	spec := specification.New()
	p.strategy.AddValidationRules(aggregate, command, spec)
	if err = spec.Evaluate(); err != nil {
		p.log.Debug("Validation failed", "command", p.descriptor.Command, "error", err)
		return zero, err
	}

	// 4. Mutate, then settle any mutation-time rules left unevaluated
	result, err := p.strategy.ModifyData(ctx, aggregate, command, spec)
	if err != nil {
		return zero, err
	}
	if err = spec.Evaluate(); err != nil {
		return zero, err
	}

	// 5. Persist
	persisted, err := p.strategy.Persist(result)
	if err != nil {
		return zero, err
	}

	// 6. Map in the resolved culture
	culture := language.Und
	if p.culture != nil {
		culture = p.culture(aggregate, command)
	}
	response, err := p.mapper.Map(persisted, culture)
	if err != nil {
		return zero, err
	}

	p.log.Debug("Command executed", "command", p.descriptor.Command)
	return response, nil
}

// HandleError classifies an error raised while executing command.
func (p *Pipeline[C, A, T, R]) HandleError(command *C, err error) error {
	if command == nil {
		return errors.NewArgumentNilError("command")
	}
	if err == nil {
		return errors.NewArgumentNilError("err")
	}

	classified := errors.Build(err, p.descriptor.Handler, p.descriptor.Command, p.descriptor.Response)
	if kind, ok := errors.KindOf(classified); ok && kind == errors.KindSystem {
		p.log.Warn("Command failed", "command", p.descriptor.Command, "error", err)
	} else {
		p.log.Debug("Command rejected", "command", p.descriptor.Command, "error", classified)
	}
	return classified
}

// Run executes the command and classifies any failure, including panics raised
// by handler code. A nil command is a contract violation and is not classified.
func (p *Pipeline[C, A, T, R]) Run(ctx context.Context, command *C) (response R, err error) {
	if command == nil {
		return response, errors.NewArgumentNilError("command")
	}

	defer func() {
		if r := recover(); r != nil {
			var zero R
			response = zero
			err = p.HandleError(command, fmt.Errorf("%w: %v", errors.ErrHandlerPanic, r))
		}
	}()

	response, err = p.Execute(ctx, command)
	if err != nil {
		var zero R
		return zero, p.HandleError(command, err)
	}
	return response, nil
}

// Runner is the caller-facing surface of a pipeline.
type Runner[C, R any] interface {
	Run(ctx context.Context, command *C) (R, error)
}
