package core

import "fmt"

// NotFoundError represents a referenced career, club, player, match id, or
// listing index that does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// InvalidInputError represents a missing required field in a mutation
// payload, a malformed id, or a negative price.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// NewInvalidInputError creates a new InvalidInputError.
func NewInvalidInputError(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	_, ok := err.(*InvalidInputError)
	return ok
}

// DomainRuleError represents a violation of a world invariant: squad-size
// or positional limits, a bid below the seller's threshold, insufficient
// cash, or an attempt to buy one's own player.
type DomainRuleError struct {
	Rule   string
	Detail string
}

func (e *DomainRuleError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Rule, e.Detail)
	}
	return e.Rule
}

// NewDomainRuleError creates a new DomainRuleError.
func NewDomainRuleError(rule, detail string) error {
	return &DomainRuleError{Rule: rule, Detail: detail}
}

// IsDomainRule reports whether err is a DomainRuleError.
func IsDomainRule(err error) bool {
	_, ok := err.(*DomainRuleError)
	return ok
}

// StateConflictError represents an operation disallowed in the world's
// current season phase, e.g. advancing a round before the cup is finished.
type StateConflictError struct {
	Operation string
	Reason    string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("cannot %s: %s", e.Operation, e.Reason)
}

// NewStateConflictError creates a new StateConflictError.
func NewStateConflictError(operation, reason string) error {
	return &StateConflictError{Operation: operation, Reason: reason}
}

// IsStateConflict reports whether err is a StateConflictError.
func IsStateConflict(err error) bool {
	_, ok := err.(*StateConflictError)
	return ok
}

// CorruptError represents a save file that fails schema or invariant
// checks on load.
type CorruptError struct {
	Reason string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt save: %s", e.Reason)
}

// NewCorruptError creates a new CorruptError.
func NewCorruptError(reason string) error {
	return &CorruptError{Reason: reason}
}

// IsCorrupt reports whether err is a CorruptError.
func IsCorrupt(err error) bool {
	_, ok := err.(*CorruptError)
	return ok
}

// Code returns the stable string code the service layer and CLI surface
// for a domain error, or "UNEXPECTED_ERROR" for anything else.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case IsNotFound(err):
		return "NOT_FOUND"
	case IsInvalidInput(err):
		return "INVALID_INPUT"
	case IsDomainRule(err):
		return "DOMAIN_RULE"
	case IsStateConflict(err):
		return "STATE_CONFLICT"
	case IsCorrupt(err):
		return "CORRUPT"
	default:
		return "UNEXPECTED_ERROR"
	}
}
