package hint

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/numguess/internal/models"
	"github.com/KirkDiggler/numguess/internal/rng"
	rngMocks "github.com/KirkDiggler/numguess/internal/rng/mocks"
)

type HintServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockGenerator *rngMocks.MockGenerator
	hintService   Service
	ctx           context.Context
}

func (s *HintServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGenerator = rngMocks.NewMockGenerator(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := New(&Config{Generator: s.mockGenerator})
	s.Require().NoError(err)
	s.hintService = svc
}

func (s *HintServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHintServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HintServiceTestSuite))
}

func (s *HintServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilGenerator)
}

func (s *HintServiceTestSuite) TestGetHint_Easy() {
	s.mockGenerator.EXPECT().Intn(len(easyCatalog)).Return(0)

	output, err := s.hintService.GetHint(s.ctx, &GetHintInput{
		Kind:   models.HintEasy,
		Target: 42,
	})

	s.Require().NoError(err)
	s.Require().NotNil(output.Hint)
	s.Equal(models.HintEasy, output.Hint.Kind)
	s.Equal(easyCatalog[0].label, output.Hint.Label)
	s.Equal(37.0, output.Hint.Value)
	s.Equal("The secret number is 5 more than 37.00", output.Hint.Text())
}

func (s *HintServiceTestSuite) TestGetHint_Hard() {
	last := len(hardCatalog) - 1
	s.mockGenerator.EXPECT().Intn(len(hardCatalog)).Return(last)

	output, err := s.hintService.GetHint(s.ctx, &GetHintInput{
		Kind:   models.HintHard,
		Target: 8,
	})

	s.Require().NoError(err)
	s.Equal(models.HintHard, output.Hint.Kind)
	s.Equal(3.0, output.Hint.Value)
	s.Equal("(x + 1)÷3 = 3.00", output.Hint.Text())
}

func (s *HintServiceTestSuite) TestGetHint_SkipsUndefinedValues() {
	// The square root entry is undefined for negative targets; the next
	// entry is used instead.
	sqrtIndex := -1
	for i, e := range easyCatalog {
		if strings.HasPrefix(e.label, "The square root") {
			sqrtIndex = i
		}
	}
	s.Require().GreaterOrEqual(sqrtIndex, 0)
	s.mockGenerator.EXPECT().Intn(len(easyCatalog)).Return(sqrtIndex)

	output, err := s.hintService.GetHint(s.ctx, &GetHintInput{
		Kind:   models.HintEasy,
		Target: -9,
	})

	s.Require().NoError(err)
	s.Equal(easyCatalog[sqrtIndex+1].label, output.Hint.Label)
	s.False(math.IsNaN(output.Hint.Value))
}

func (s *HintServiceTestSuite) TestGetHint_None() {
	output, err := s.hintService.GetHint(s.ctx, &GetHintInput{Kind: models.HintNone, Target: 5})
	s.ErrorIs(err, ErrNoHint)
	s.Nil(output)
}

func (s *HintServiceTestSuite) TestGetHint_UnknownKind() {
	_, err := s.hintService.GetHint(s.ctx, &GetHintInput{Kind: "impossible", Target: 5})
	s.ErrorIs(err, ErrUnknownKind)
}

func (s *HintServiceTestSuite) TestGetHint_NilInput() {
	_, err := s.hintService.GetHint(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)
}

func TestCatalogsEvaluateAcrossDefaultRange(t *testing.T) {
	svc, err := New(&Config{Generator: rng.New(&rng.Config{Seed: 5})})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	for _, kind := range []models.HintKind{models.HintEasy, models.HintHard} {
		for target := 1.0; target <= 100; target++ {
			output, err := svc.GetHint(context.Background(), &GetHintInput{Kind: kind, Target: target})
			if err != nil {
				t.Fatalf("GetHint(%s, %v) returned error: %v", kind, target, err)
			}
			if math.IsNaN(output.Hint.Value) || math.IsInf(output.Hint.Value, 0) {
				t.Fatalf("GetHint(%s, %v) value = %v", kind, target, output.Hint.Value)
			}
			if strings.Count(output.Hint.Label, "{}") != 1 {
				t.Fatalf("label %q must carry exactly one placeholder", output.Hint.Label)
			}
		}
	}
}
