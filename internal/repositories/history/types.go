package history

import "github.com/KirkDiggler/numguess/internal/models"

type SaveRoundInput struct {
	Round *models.RoundRecord
}

type ListRoundsInput struct {
	SessionID string
}

type ListRoundsOutput struct {
	Rounds []*models.RoundRecord
}

type DeleteSessionInput struct {
	SessionID string
}
