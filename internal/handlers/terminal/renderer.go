package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/numguess/internal/guess"
	"github.com/KirkDiggler/numguess/internal/models"
	"github.com/KirkDiggler/numguess/internal/services/messaging"
)

const (
	ErrNilConfig    = TerminalError("config cannot be nil")
	ErrNilOutput    = TerminalError("output cannot be nil")
	ErrNilMessaging = TerminalError("messaging service cannot be nil")
)

// TerminalError represents errors returned by the terminal handler
type TerminalError string

func (e TerminalError) Error() string {
	return string(e)
}

// Config holds the configuration for the renderer
type Config struct {
	// Out receives everything the player sees
	Out io.Writer

	// Messaging supplies flavour text
	Messaging messaging.Service

	// NoColor renders plain text
	NoColor bool

	// Tone fixes the tone of guess feedback; empty lets messaging choose
	Tone messaging.MessageTone

	// Logger defaults to a disabled logger
	Logger *zerolog.Logger
}

type styles struct {
	title  lipgloss.Style
	prompt lipgloss.Style
	good   lipgloss.Style
	warn   lipgloss.Style
	dim    lipgloss.Style
}

// Renderer shows session events on a terminal
type Renderer struct {
	out       io.Writer
	messaging messaging.Service
	tone      messaging.MessageTone
	styles    styles
	logger    zerolog.Logger

	// attempts is the attempt number of the guess being scored
	attempts int
}

// NewRenderer creates a new terminal renderer
func NewRenderer(cfg *Config) (*Renderer, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Out == nil {
		return nil, ErrNilOutput
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Renderer{
		out:       cfg.Out,
		messaging: cfg.Messaging,
		tone:      cfg.Tone,
		styles:    newStyles(lipgloss.NewRenderer(cfg.Out), cfg.NoColor),
		logger:    logger.With().Str("component", "terminal").Logger(),
	}, nil
}

func newStyles(r *lipgloss.Renderer, noColor bool) styles {
	style := func(color string, bold bool) lipgloss.Style {
		s := r.NewStyle()
		if noColor {
			return s
		}
		return s.Foreground(lipgloss.Color(color)).Bold(bold)
	}

	return styles{
		title:  style("10", true),
		prompt: style("14", false),
		good:   style("2", true),
		warn:   style("3", false),
		dim:    style("8", false),
	}
}

func (r *Renderer) Welcome(ctx context.Context, rng models.Range) {
	r.println(r.styles.title.Render("NUMBER GUESSING"))

	output, err := r.messaging.GetWelcomeMessage(ctx, &messaging.GetWelcomeMessageInput{Range: rng})
	if err != nil {
		r.logger.Warn().Err(err).Msg("failed to get welcome message")
		r.println(fmt.Sprintf("Guess the number between %s and %s.", formatNumber(rng.Low), formatNumber(rng.High)))
		return
	}
	r.println(output.Message)
}

func (r *Renderer) TargetChosen(ctx context.Context, rng models.Range, retry bool) {
	if retry {
		r.println(r.styles.dim.Render(fmt.Sprintf("Same number again, range %s. Your attempts start from zero.", rng)))
		return
	}
	r.println(r.styles.dim.Render(fmt.Sprintf("A new number has been chosen in %s.", rng)))
}

func (r *Renderer) PromptHint(ctx context.Context) {
	r.print(r.styles.prompt.Render("Want a hint? [1] easy  [2] hard  [3] none: "))
}

func (r *Renderer) InvalidHintChoice(ctx context.Context, err error) {
	r.println(r.styles.warn.Render(fmt.Sprintf("Not a hint option (%v). No hint this round.", err)))
}

func (r *Renderer) HintRequested(ctx context.Context, hint *models.Hint) {
	if hint == nil {
		return
	}
	r.println(r.styles.title.Render("Hint: ") + hint.Text())
}

func (r *Renderer) PromptGuess(ctx context.Context, rng models.Range, attempts int) {
	r.attempts = attempts + 1
	r.print(r.styles.prompt.Render(fmt.Sprintf("Guess #%d (%s): ", r.attempts, rng)))
}

func (r *Renderer) InvalidGuess(ctx context.Context, err error) {
	output, msgErr := r.messaging.GetInvalidGuessMessage(ctx, &messaging.GetInvalidGuessMessageInput{
		Reason: guess.ReasonOf(err),
	})
	if msgErr != nil {
		r.logger.Warn().Err(msgErr).Msg("failed to get invalid guess message")
		r.println(r.styles.warn.Render(err.Error()))
		return
	}

	var validationErr *guess.ValidationError
	if errors.As(err, &validationErr) && validationErr.Reason == guess.ErrOutOfRange {
		r.println(r.styles.warn.Render(output.Message) + " " + r.styles.dim.Render("("+validationErr.Range.String()+")"))
		return
	}
	r.println(r.styles.warn.Render(output.Message))
}

func (r *Renderer) GuessTooLow(ctx context.Context, value float64) {
	r.guessResult(ctx, value, models.OutcomeTooLow, "too low")
}

func (r *Renderer) GuessTooHigh(ctx context.Context, value float64) {
	r.guessResult(ctx, value, models.OutcomeTooHigh, "too high")
}

func (r *Renderer) guessResult(ctx context.Context, value float64, outcome models.Outcome, label string) {
	line := fmt.Sprintf("%s is %s.", formatNumber(value), label)

	output, err := r.messaging.GetGuessResultMessage(ctx, &messaging.GetGuessResultMessageInput{
		Outcome:       outcome,
		Attempts:      r.attempts,
		PreferredTone: r.tone,
	})
	if err != nil {
		r.logger.Warn().Err(err).Msg("failed to get guess result message")
		r.println(r.styles.warn.Render(line))
		return
	}
	r.println(r.styles.warn.Render(line) + " " + output.Message)
}

func (r *Renderer) GuessCorrect(ctx context.Context, attempts int) {
	noun := "attempts"
	if attempts == 1 {
		noun = "attempt"
	}
	r.println(r.styles.good.Render(fmt.Sprintf("Correct! You got it in %d %s.", attempts, noun)))

	output, err := r.messaging.GetGuessResultMessage(ctx, &messaging.GetGuessResultMessageInput{
		Outcome:  models.OutcomeCorrect,
		Attempts: attempts,
	})
	if err != nil {
		r.logger.Warn().Err(err).Msg("failed to get win message")
		return
	}
	r.println(output.Message)
}

func (r *Renderer) PromptContinuation(ctx context.Context) {
	r.print(r.styles.prompt.Render("What next? [1] retry this number  [2] new number  [3] new range  [4] quit: "))
}

func (r *Renderer) PromptRange(ctx context.Context, current models.Range) {
	r.print(r.styles.prompt.Render(fmt.Sprintf("New range, e.g. 1-100 (current %s): ", current)))
}

func (r *Renderer) InvalidRange(ctx context.Context, err error) {
	r.println(r.styles.warn.Render(fmt.Sprintf("That range won't work (%v). Keeping the current one.", err)))
}

func (r *Renderer) SessionEnded(ctx context.Context, summary *models.SessionSummary) {
	if summary == nil {
		return
	}

	title := "Thanks for playing"
	output, err := r.messaging.GetSessionEndMessage(ctx, &messaging.GetSessionEndMessageInput{Summary: summary})
	if err != nil {
		r.logger.Warn().Err(err).Msg("failed to get session end message")
	} else {
		title = output.Title
	}

	r.println("")
	r.println(r.styles.title.Render(title))
	r.println(fmt.Sprintf("Rounds won: %d", summary.Rounds))
	if summary.Rounds > 0 {
		r.println(fmt.Sprintf("Total attempts: %d", summary.TotalAttempts))
		r.println(fmt.Sprintf("Best round: %d", summary.BestAttempts))
	}
	if output != nil {
		r.println(r.styles.dim.Render(output.Message))
	}
}

func (r *Renderer) print(text string) {
	if _, err := io.WriteString(r.out, text); err != nil {
		r.logger.Error().Err(err).Msg("failed to write output")
	}
}

func (r *Renderer) println(text string) {
	r.print(text + "\n")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
