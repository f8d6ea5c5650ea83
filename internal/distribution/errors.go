package distribution

import "fmt"

// ConfigurationError signals an unmet precondition, surfaced before any
// network activity takes place.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "distribution not configured: " + e.Reason
}

// TotalSubmissionFailure signals that both the category pass and the
// broadcast fallback produced zero successful submissions.
type TotalSubmissionFailure struct {
	Attempts int
}

func (e *TotalSubmissionFailure) Error() string {
	return fmt.Sprintf("all %d vendor submissions failed", e.Attempts)
}
