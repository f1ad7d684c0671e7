package ports

import "github.com/AntonioJCosta/cmdparse/internal/core/domain/inspection"

// CaseProvider defines the interface for sourcing parse expectations,
// like a YAML case file.
type CaseProvider interface {
	GetCases() ([]inspection.Case, error)
}
