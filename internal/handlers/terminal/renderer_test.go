package terminal

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/numguess/internal/guess"
	"github.com/KirkDiggler/numguess/internal/models"
	"github.com/KirkDiggler/numguess/internal/presenter"
	"github.com/KirkDiggler/numguess/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/numguess/internal/services/messaging/mocks"
)

var _ presenter.Presenter = (*Renderer)(nil)

type RendererTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockMessaging *messagingMocks.MockService
	out           *bytes.Buffer
	renderer      *Renderer
	ctx           context.Context
	testRange     models.Range
}

func (s *RendererTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMessaging = messagingMocks.NewMockService(s.mockCtrl)
	s.out = &bytes.Buffer{}
	s.ctx = context.Background()
	s.testRange = models.Range{Low: 1, High: 100}

	renderer, err := NewRenderer(&Config{
		Out:       s.out,
		Messaging: s.mockMessaging,
		NoColor:   true,
	})
	s.Require().NoError(err)
	s.renderer = renderer
}

func (s *RendererTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRendererTestSuite(t *testing.T) {
	suite.Run(t, new(RendererTestSuite))
}

func (s *RendererTestSuite) TestNewRenderer_Validation() {
	_, err := NewRenderer(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewRenderer(&Config{Messaging: s.mockMessaging})
	s.ErrorIs(err, ErrNilOutput)

	_, err = NewRenderer(&Config{Out: s.out})
	s.ErrorIs(err, ErrNilMessaging)
}

func (s *RendererTestSuite) TestWelcome() {
	s.mockMessaging.EXPECT().
		GetWelcomeMessage(gomock.Any(), &messaging.GetWelcomeMessageInput{Range: s.testRange}).
		Return(&messaging.GetWelcomeMessageOutput{Message: "Read my mind."}, nil)

	s.renderer.Welcome(s.ctx, s.testRange)

	s.Equal("NUMBER GUESSING\nRead my mind.\n", s.out.String())
}

func (s *RendererTestSuite) TestWelcome_MessagingFailure() {
	s.mockMessaging.EXPECT().GetWelcomeMessage(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	s.renderer.Welcome(s.ctx, models.Range{Low: 0.5, High: 2})

	s.Contains(s.out.String(), "Guess the number between 0.5 and 2.")
}

func (s *RendererTestSuite) TestTargetChosen() {
	s.renderer.TargetChosen(s.ctx, s.testRange, false)
	s.renderer.TargetChosen(s.ctx, s.testRange, true)

	s.Equal(
		"A new number has been chosen in 1-100.\n"+
			"Same number again, range 1-100. Your attempts start from zero.\n",
		s.out.String(),
	)
}

func (s *RendererTestSuite) TestHints() {
	s.renderer.PromptHint(s.ctx)
	s.renderer.HintRequested(s.ctx, &models.Hint{Kind: models.HintEasy, Label: "The secret number is 5 more than {}", Value: 37})
	s.renderer.InvalidHintChoice(s.ctx, models.ErrInvalidHintKind)

	s.Equal(
		"Want a hint? [1] easy  [2] hard  [3] none: "+
			"Hint: The secret number is 5 more than 37.00\n"+
			"Not a hint option (invalid hint choice). No hint this round.\n",
		s.out.String(),
	)
}

func (s *RendererTestSuite) TestGuessFlow() {
	gomock.InOrder(
		s.mockMessaging.EXPECT().
			GetGuessResultMessage(gomock.Any(), &messaging.GetGuessResultMessageInput{Outcome: models.OutcomeTooLow, Attempts: 1}).
			Return(&messaging.GetGuessResultMessageOutput{Message: "Aim higher."}, nil),
		s.mockMessaging.EXPECT().
			GetGuessResultMessage(gomock.Any(), &messaging.GetGuessResultMessageInput{Outcome: models.OutcomeTooHigh, Attempts: 2}).
			Return(&messaging.GetGuessResultMessageOutput{Message: "Aim lower."}, nil),
		s.mockMessaging.EXPECT().
			GetGuessResultMessage(gomock.Any(), &messaging.GetGuessResultMessageInput{Outcome: models.OutcomeCorrect, Attempts: 3}).
			Return(&messaging.GetGuessResultMessageOutput{Message: "Bingo!"}, nil),
	)

	s.renderer.PromptGuess(s.ctx, s.testRange, 0)
	s.renderer.GuessTooLow(s.ctx, 3)
	s.renderer.PromptGuess(s.ctx, s.testRange, 1)
	s.renderer.GuessTooHigh(s.ctx, 90.5)
	s.renderer.PromptGuess(s.ctx, s.testRange, 2)
	s.renderer.GuessCorrect(s.ctx, 3)

	s.Equal(
		"Guess #1 (1-100): 3 is too low. Aim higher.\n"+
			"Guess #2 (1-100): 90.5 is too high. Aim lower.\n"+
			"Guess #3 (1-100): Correct! You got it in 3 attempts.\n"+
			"Bingo!\n",
		s.out.String(),
	)
}

func (s *RendererTestSuite) TestInvalidHintChoice_ShowsRejectedInput() {
	_, err := models.ParseHintKind("7")
	s.Require().Error(err)

	s.renderer.InvalidHintChoice(s.ctx, err)

	s.Equal("Not a hint option (invalid hint choice: \"7\"). No hint this round.\n", s.out.String())
}

func (s *RendererTestSuite) TestGuessResult_UsesConfiguredTone() {
	renderer, err := NewRenderer(&Config{
		Out:       s.out,
		Messaging: s.mockMessaging,
		NoColor:   true,
		Tone:      messaging.ToneNeutral,
	})
	s.Require().NoError(err)

	s.mockMessaging.EXPECT().
		GetGuessResultMessage(gomock.Any(), &messaging.GetGuessResultMessageInput{
			Outcome:       models.OutcomeTooLow,
			Attempts:      1,
			PreferredTone: messaging.ToneNeutral,
		}).
		Return(&messaging.GetGuessResultMessageOutput{Message: "Go higher.", Tone: messaging.ToneNeutral}, nil)

	renderer.PromptGuess(s.ctx, s.testRange, 0)
	renderer.GuessTooLow(s.ctx, 4)

	s.Equal("Guess #1 (1-100): 4 is too low. Go higher.\n", s.out.String())
}

func (s *RendererTestSuite) TestGuessCorrect_SingleAttempt() {
	s.mockMessaging.EXPECT().GetGuessResultMessage(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	s.renderer.GuessCorrect(s.ctx, 1)

	s.Equal("Correct! You got it in 1 attempt.\n", s.out.String())
}

func (s *RendererTestSuite) TestInvalidGuess() {
	_, emptyErr := guess.ParseAndValidate("", s.testRange)
	_, rangeErr := guess.ParseAndValidate("500", s.testRange)

	gomock.InOrder(
		s.mockMessaging.EXPECT().
			GetInvalidGuessMessage(gomock.Any(), &messaging.GetInvalidGuessMessageInput{Reason: guess.ErrEmpty}).
			Return(&messaging.GetInvalidGuessMessageOutput{Message: "Type something."}, nil),
		s.mockMessaging.EXPECT().
			GetInvalidGuessMessage(gomock.Any(), &messaging.GetInvalidGuessMessageInput{Reason: guess.ErrOutOfRange}).
			Return(&messaging.GetInvalidGuessMessageOutput{Message: "Out of bounds!"}, nil),
	)

	s.renderer.InvalidGuess(s.ctx, emptyErr)
	s.renderer.InvalidGuess(s.ctx, rangeErr)

	s.Equal("Type something.\nOut of bounds! (1-100)\n", s.out.String())
}

func (s *RendererTestSuite) TestContinuationAndRange() {
	s.renderer.PromptContinuation(s.ctx)
	s.renderer.PromptRange(s.ctx, s.testRange)
	s.renderer.InvalidRange(s.ctx, models.ErrInvalidRange)

	out := s.out.String()
	s.Contains(out, "[1] retry this number  [2] new number  [3] new range  [4] quit: ")
	s.Contains(out, "New range, e.g. 1-100 (current 1-100): ")
	s.Contains(out, "Keeping the current one.\n")
}

func (s *RendererTestSuite) TestSessionEnded() {
	summary := &models.SessionSummary{
		SessionID:     "test-session-id",
		Rounds:        2,
		TotalAttempts: 9,
		BestAttempts:  4,
		EndReason:     models.EndReasonQuit,
	}
	s.mockMessaging.EXPECT().
		GetSessionEndMessage(gomock.Any(), &messaging.GetSessionEndMessageInput{Summary: summary}).
		Return(&messaging.GetSessionEndMessageOutput{Title: "Thanks for playing", Message: "See you."}, nil)

	s.renderer.SessionEnded(s.ctx, summary)

	s.Equal(
		"\nThanks for playing\nRounds won: 2\nTotal attempts: 9\nBest round: 4\nSee you.\n",
		s.out.String(),
	)
}

func (s *RendererTestSuite) TestSessionEnded_NoRounds() {
	s.mockMessaging.EXPECT().GetSessionEndMessage(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	s.renderer.SessionEnded(s.ctx, &models.SessionSummary{EndReason: models.EndReasonInputClosed})

	s.Equal("\nThanks for playing\nRounds won: 0\n", s.out.String())
}
