package domain

// ActionStatus is the processing state of a request, cashflow or audited action.
type ActionStatus string

const (
	StatusUnprocessed ActionStatus = "unprocessed"
	StatusProcessing  ActionStatus = "processing"
	StatusProcessed   ActionStatus = "processed"
	StatusCancelled   ActionStatus = "cancelled"
	StatusError       ActionStatus = "error"
)

var (
	// FinishedStatuses are terminal.
	FinishedStatuses = []ActionStatus{StatusProcessed, StatusCancelled}
	// UnprocessingStatuses are the states an item may be acted upon from.
	UnprocessingStatuses = []ActionStatus{StatusUnprocessed, StatusError}
	// UnprocessedStatuses are all non-terminal states, processing included.
	UnprocessedStatuses = []ActionStatus{StatusUnprocessed, StatusProcessing, StatusError}
)

// IsFinished reports whether s is Processed or Cancelled.
func (s ActionStatus) IsFinished() bool {
	return contains(FinishedStatuses, s)
}

// IsUnprocessing reports whether s is Unprocessed or Error.
func (s ActionStatus) IsUnprocessing() bool {
	return contains(UnprocessingStatuses, s)
}

// IsUnprocessed reports whether s is not yet finished.
func (s ActionStatus) IsUnprocessed() bool {
	return contains(UnprocessedStatuses, s)
}

// IsValid reports whether s is a known status.
func (s ActionStatus) IsValid() bool {
	switch s {
	case StatusUnprocessed, StatusProcessing, StatusProcessed, StatusCancelled, StatusError:
		return true
	}
	return false
}

func contains(list []ActionStatus, s ActionStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
