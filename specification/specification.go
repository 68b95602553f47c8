// Package specification accumulates deferred validation predicates and evaluates
// them in registration order.
package specification

import (
	"household-intranet/errors"
)

type predicate struct {
	check     func() bool
	onFailure error
}

// Specification is scoped to one command execution and must not be shared.
type Specification struct {
	predicates []predicate
	evaluated  int
}

func New() *Specification {
	return &Specification{}
}

// IsSatisfiedBy registers check together with the error returned by Evaluate
// when check reports false. The check is not invoked until Evaluate.
func (s *Specification) IsSatisfiedBy(check func() bool, onFailure error) *Specification {
	switch {
	case check == nil:
		s.predicates = append(s.predicates, contractViolation("check"))
	case onFailure == nil:
		s.predicates = append(s.predicates, contractViolation("onFailure"))
	default:
		s.predicates = append(s.predicates, predicate{check: check, onFailure: onFailure})
	}
	return s
}

// Evaluate runs every predicate registered since the previous evaluation and
// returns the error of the first one that fails. Predicates after the failing
// one are not invoked.
func (s *Specification) Evaluate() error {
	for s.evaluated < len(s.predicates) {
		p := s.predicates[s.evaluated]
		s.evaluated++
		if !p.check() {
			s.evaluated = len(s.predicates)
			return p.onFailure
		}
	}
	return nil
}

// Pending returns the number of registered predicates not evaluated yet.
func (s *Specification) Pending() int {
	return len(s.predicates) - s.evaluated
}

func contractViolation(param string) predicate {
	return predicate{
		check:     func() bool { return false },
		onFailure: errors.NewArgumentNilError(param),
	}
}
