package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairwaylabs/society-api/internal/domain"
)

type completionFixture struct {
	svc    *TournamentService
	scores *fakeScoreRepo
	users  *fakeUserRepo
}

func newCompletionFixture(t *testing.T, tournament domain.Tournament, users []domain.User, nets map[uint]int) completionFixture {
	t.Helper()

	userRepo := newFakeUserRepo(users...)
	scoreRepo := newFakeScoreRepo(userRepo)
	tournamentRepo := newFakeTournamentRepo(scoreRepo, userRepo, tournament)
	courseRepo := newFakeCourseRepo(testCourse())

	for userID, net := range nets {
		scoreRepo.scores[scoreRepo.nextID] = domain.TournamentScore{
			ID:           scoreRepo.nextID,
			TournamentID: tournament.ID,
			UserID:       userID,
			GrossScore:   net,
			NetScore:     net,
		}
		scoreRepo.nextID++
	}

	svc := NewTournamentService(tournamentRepo, courseRepo, scoreRepo, userRepo)
	svc.now = func() time.Time { return dateIn(2025, 6, 1) }

	return completionFixture{svc: svc, scores: scoreRepo, users: userRepo}
}

func majorTournament() domain.Tournament {
	return domain.Tournament{
		ID:      7,
		ClubID:  1,
		Name:    "Club Championship",
		Date:    dateIn(2025, 5, 20),
		Format:  domain.FormatStrokePlay,
		IsMajor: true,
		Status:  domain.StatusUpcoming,
	}
}

func TestCompleteTournament_NonMajorJustFlipsStatus(t *testing.T) {
	tournament := majorTournament()
	tournament.IsMajor = false

	players := []domain.User{
		{ID: 1, Name: "Alice", CurrentHandicap: floatPtr(5)},
		{ID: 2, Name: "Bob", CurrentHandicap: floatPtr(12)},
	}
	f := newCompletionFixture(t, tournament, players, map[uint]int{1: 70, 2: 80})

	completed, err := f.svc.CompleteTournament(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, completed.Status)
	assert.Empty(t, f.users.history, "non-major must not touch handicaps")
	assert.Equal(t, 5.0, *f.users.users[1].CurrentHandicap)
	for _, s := range f.scores.scores {
		assert.Nil(t, s.Position, "non-major must not assign positions")
	}
}

func TestCompleteTournament_MajorRanksAndAdjusts(t *testing.T) {
	players := []domain.User{
		{ID: 1, Name: "Alice", CurrentHandicap: floatPtr(5)},
		{ID: 2, Name: "Bob", CurrentHandicap: floatPtr(12)},
		{ID: 3, Name: "Cara", CurrentHandicap: floatPtr(18)},
	}
	f := newCompletionFixture(t, majorTournament(), players, map[uint]int{
		1: 74,
		2: 69,
		3: 81,
	})

	completed, err := f.svc.CompleteTournament(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, completed.Scores, 3)

	// Positions follow ascending net score.
	assert.Equal(t, uint(2), completed.Scores[0].UserID)
	assert.Equal(t, 1, *completed.Scores[0].Position)
	assert.Equal(t, -2, completed.Scores[0].HandicapAdjustment)

	assert.Equal(t, uint(1), completed.Scores[1].UserID)
	assert.Equal(t, 2, *completed.Scores[1].Position)
	assert.Equal(t, 0, completed.Scores[1].HandicapAdjustment)

	assert.Equal(t, uint(3), completed.Scores[2].UserID)
	assert.Equal(t, 3, *completed.Scores[2].Position)
	assert.Equal(t, 1, completed.Scores[2].HandicapAdjustment)

	total := 0
	for _, s := range completed.Scores {
		total += s.HandicapAdjustment
	}
	assert.Equal(t, -1, total, "winner and last place net out to -1")

	// Live handicaps moved for winner and last only.
	assert.Equal(t, 10.0, *f.users.users[2].CurrentHandicap)
	assert.Equal(t, 5.0, *f.users.users[1].CurrentHandicap)
	assert.Equal(t, 19.0, *f.users.users[3].CurrentHandicap)

	require.Len(t, f.users.history, 2)
	assert.Equal(t, domain.ReasonTournamentWin, f.users.history[0].Reason)
	assert.Equal(t, 10.0, f.users.history[0].HandicapIndex)
	assert.Equal(t, domain.ReasonTournamentLast, f.users.history[1].Reason)
	assert.Equal(t, 19.0, f.users.history[1].HandicapIndex)
	require.NotNil(t, f.users.history[0].TournamentID)
	assert.Equal(t, uint(7), *f.users.history[0].TournamentID)
}

func TestCompleteTournament_StablefordMajorStillRanksByNet(t *testing.T) {
	tournament := majorTournament()
	tournament.Format = domain.FormatStableford

	players := []domain.User{
		{ID: 1, Name: "Alice", CurrentHandicap: floatPtr(20)},
		{ID: 2, Name: "Bob", CurrentHandicap: floatPtr(4)},
	}
	f := newCompletionFixture(t, tournament, players, map[uint]int{1: 80, 2: 70})

	// Alice holds the higher Stableford total, Bob the lower net.
	for id, s := range f.scores.scores {
		switch s.UserID {
		case 1:
			s.StablefordPoints = intPtr(40)
		case 2:
			s.StablefordPoints = intPtr(31)
		}
		f.scores.scores[id] = s
	}

	completed, err := f.svc.CompleteTournament(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, completed.Scores, 2)

	// The lower net wins the major even though the event is Stableford
	// and the other player out-scored on points.
	assert.Equal(t, uint(2), completed.Scores[0].UserID)
	assert.Equal(t, 1, *completed.Scores[0].Position)
	assert.Equal(t, -2, completed.Scores[0].HandicapAdjustment)

	assert.Equal(t, uint(1), completed.Scores[1].UserID)
	assert.Equal(t, 2, *completed.Scores[1].Position)
	assert.Equal(t, 1, completed.Scores[1].HandicapAdjustment)

	assert.Equal(t, 2.0, *f.users.users[2].CurrentHandicap)
	assert.Equal(t, 21.0, *f.users.users[1].CurrentHandicap)

	require.Len(t, f.users.history, 2)
	assert.Equal(t, domain.ReasonTournamentWin, f.users.history[0].Reason)
	assert.Equal(t, uint(2), f.users.history[0].UserID)
}

func TestCompleteTournament_SingleScoreOnlyWinnerAdjustment(t *testing.T) {
	players := []domain.User{{ID: 1, Name: "Alice", CurrentHandicap: floatPtr(5)}}
	f := newCompletionFixture(t, majorTournament(), players, map[uint]int{1: 72})

	completed, err := f.svc.CompleteTournament(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, completed.Scores, 1)

	assert.Equal(t, -2, completed.Scores[0].HandicapAdjustment)
	assert.Equal(t, 3.0, *f.users.users[1].CurrentHandicap)
	require.Len(t, f.users.history, 1)
	assert.Equal(t, domain.ReasonTournamentWin, f.users.history[0].Reason)
}

func TestCompleteTournament_WinnerHandicapFloorsAtZero(t *testing.T) {
	players := []domain.User{
		{ID: 1, Name: "Alice", CurrentHandicap: floatPtr(1)},
		{ID: 2, Name: "Bob", CurrentHandicap: floatPtr(9)},
	}
	f := newCompletionFixture(t, majorTournament(), players, map[uint]int{1: 68, 2: 75})

	_, err := f.svc.CompleteTournament(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 0.0, *f.users.users[1].CurrentHandicap, "handicap never goes negative")
	assert.Equal(t, 10.0, *f.users.users[2].CurrentHandicap)
}

func TestCompleteTournament_AlreadyCompleted(t *testing.T) {
	tournament := majorTournament()
	tournament.Status = domain.StatusCompleted

	players := []domain.User{{ID: 1, Name: "Alice"}}
	f := newCompletionFixture(t, tournament, players, map[uint]int{1: 72})

	_, err := f.svc.CompleteTournament(context.Background(), 7)
	assert.ErrorIs(t, err, ErrTournamentCompleted)
	assert.Empty(t, f.users.history)
}

func TestCompleteTournament_MajorWithoutScores(t *testing.T) {
	players := []domain.User{{ID: 1, Name: "Alice"}}
	f := newCompletionFixture(t, majorTournament(), players, nil)

	_, err := f.svc.CompleteTournament(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNoScoresRecorded)
}

func TestCompleteTournament_NotFound(t *testing.T) {
	players := []domain.User{{ID: 1, Name: "Alice"}}
	f := newCompletionFixture(t, majorTournament(), players, nil)

	_, err := f.svc.CompleteTournament(context.Background(), 404)
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestCreateTournament(t *testing.T) {
	userRepo := newFakeUserRepo()
	scoreRepo := newFakeScoreRepo(userRepo)
	tournamentRepo := newFakeTournamentRepo(scoreRepo, userRepo)
	courseRepo := newFakeCourseRepo(testCourse())
	svc := NewTournamentService(tournamentRepo, courseRepo, scoreRepo, userRepo)

	created, err := svc.CreateTournament(context.Background(), domain.Tournament{
		ClubID:   1,
		CourseID: 1,
		Name:     "Autumn Stableford",
		Date:     dateIn(2025, 9, 14),
		Format:   domain.FormatStableford,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, domain.StatusUpcoming, created.Status)

	_, err = svc.CreateTournament(context.Background(), domain.Tournament{
		ClubID:   1,
		CourseID: 404,
		Name:     "Ghost Open",
		Date:     dateIn(2025, 9, 21),
	})
	assert.ErrorIs(t, err, ErrCourseNotFound)
}
