package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeRounds(t *testing.T) {
	records := []*RoundRecord{
		{Attempts: 6, Won: true},
		{Attempts: 2, Won: true, Retry: true},
		nil,
		{Attempts: 1, Won: false},
		{Attempts: 4, Won: true},
	}

	summary := SummarizeRounds("test-session-id", records, EndReasonInputClosed)

	assert.Equal(t, &SessionSummary{
		SessionID:     "test-session-id",
		Rounds:        3,
		TotalAttempts: 12,
		BestAttempts:  2,
		EndReason:     EndReasonInputClosed,
	}, summary)
}

func TestSummarizeRoundsEmpty(t *testing.T) {
	summary := SummarizeRounds("test-session-id", nil, EndReasonQuit)

	assert.Equal(t, 0, summary.Rounds)
	assert.Equal(t, 0, summary.BestAttempts)
	assert.Equal(t, EndReasonQuit, summary.EndReason)
}
