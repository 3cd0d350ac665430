package models

// EndReason describes why a session stopped
type EndReason string

const (
	// EndReasonQuit indicates the player chose to quit
	EndReasonQuit EndReason = "quit"

	// EndReasonInputClosed indicates the input stream ended
	EndReasonInputClosed EndReason = "input_closed"
)

// SessionSummary is reported when a session ends
type SessionSummary struct {
	// SessionID is the unique identifier for the session
	SessionID string

	// Rounds is the number of rounds won
	Rounds int

	// TotalAttempts sums the attempts of every won round
	TotalAttempts int

	// BestAttempts is the fewest attempts any won round took, zero if none
	BestAttempts int

	// EndReason is why the session stopped
	EndReason EndReason
}

// SummarizeRounds builds the summary counts from a session's round records
func SummarizeRounds(sessionID string, records []*RoundRecord, reason EndReason) *SessionSummary {
	summary := &SessionSummary{
		SessionID: sessionID,
		EndReason: reason,
	}

	for _, record := range records {
		if record == nil || !record.Won {
			continue
		}
		summary.Rounds++
		summary.TotalAttempts += record.Attempts
		if summary.BestAttempts == 0 || record.Attempts < summary.BestAttempts {
			summary.BestAttempts = record.Attempts
		}
	}

	return summary
}
