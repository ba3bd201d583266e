package service

import (
	"context"
	"sort"
	"time"

	"github.com/fairwaylabs/society-api/internal/domain"
	"github.com/fairwaylabs/society-api/internal/repository"
)

type tournamentUserKey struct {
	tournamentID uint
	userID       uint
}

type fakeUserRepo struct {
	users   map[uint]domain.User
	history []domain.HandicapHistory
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uint]domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) SetHandicap(_ context.Context, userID uint, handicap float64, history domain.HandicapHistory) error {
	user, ok := r.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}

	h := handicap
	user.CurrentHandicap = &h
	r.users[userID] = user
	r.history = append(r.history, history)

	return nil
}

func (r *fakeUserRepo) FindHandicapHistory(_ context.Context, userID uint) ([]domain.HandicapHistory, error) {
	var entries []domain.HandicapHistory
	for _, h := range r.history {
		if h.UserID == userID {
			entries = append(entries, h)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].EffectiveDate.After(entries[j].EffectiveDate)
	})

	return entries, nil
}

type fakeScoreRepo struct {
	nextID       uint
	scores       map[uint]domain.TournamentScore
	participants map[tournamentUserKey]bool
	users        *fakeUserRepo
}

func newFakeScoreRepo(users *fakeUserRepo) *fakeScoreRepo {
	return &fakeScoreRepo{
		nextID:       1,
		scores:       make(map[uint]domain.TournamentScore),
		participants: make(map[tournamentUserKey]bool),
		users:        users,
	}
}

func (r *fakeScoreRepo) Upsert(_ context.Context, score domain.TournamentScore, holes []domain.HoleScore, holesSupplied bool) (domain.TournamentScore, error) {
	key := tournamentUserKey{score.TournamentID, score.UserID}

	var existing *domain.TournamentScore
	for id, s := range r.scores {
		if s.TournamentID == score.TournamentID && s.UserID == score.UserID {
			s := s
			s.ID = id
			existing = &s
			break
		}
	}

	if existing != nil {
		existing.GrossScore = score.GrossScore
		existing.HandicapAtTime = score.HandicapAtTime
		existing.NetScore = score.NetScore
		existing.StablefordPoints = score.StablefordPoints
		if holesSupplied {
			existing.HoleScores = append([]domain.HoleScore(nil), holes...)
		}
		r.scores[existing.ID] = *existing
		score = *existing
	} else {
		r.participants[key] = true
		score.ID = r.nextID
		r.nextID++
		if holesSupplied {
			score.HoleScores = append([]domain.HoleScore(nil), holes...)
		}
		r.scores[score.ID] = score
	}

	if r.users != nil {
		if u, ok := r.users.users[score.UserID]; ok {
			score.UserName = u.Name
		}
	}

	return score, nil
}

func (r *fakeScoreRepo) FindByTournamentAndUser(_ context.Context, tournamentID, userID uint) (domain.TournamentScore, error) {
	for _, s := range r.scores {
		if s.TournamentID == tournamentID && s.UserID == userID {
			return s, nil
		}
	}
	return domain.TournamentScore{}, repository.ErrScoreNotFound
}

func (r *fakeScoreRepo) byTournament(tournamentID uint) []domain.TournamentScore {
	var scores []domain.TournamentScore
	for _, s := range r.scores {
		if s.TournamentID == tournamentID {
			scores = append(scores, s)
		}
	}
	return scores
}

func (r *fakeScoreRepo) FindByTournamentByNet(_ context.Context, tournamentID uint) ([]domain.TournamentScore, error) {
	scores := r.byTournament(tournamentID)
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].NetScore != scores[j].NetScore {
			return scores[i].NetScore < scores[j].NetScore
		}
		return scores[i].ID < scores[j].ID
	})
	return scores, nil
}

func (r *fakeScoreRepo) FindByTournamentByPoints(_ context.Context, tournamentID uint) ([]domain.TournamentScore, error) {
	scores := r.byTournament(tournamentID)
	sort.SliceStable(scores, func(i, j int) bool {
		pi, pj := -1, -1
		if scores[i].StablefordPoints != nil {
			pi = *scores[i].StablefordPoints
		}
		if scores[j].StablefordPoints != nil {
			pj = *scores[j].StablefordPoints
		}
		if pi != pj {
			return pi > pj
		}
		return scores[i].ID < scores[j].ID
	})
	return scores, nil
}

type fakeTournamentRepo struct {
	nextID      uint
	tournaments map[uint]domain.Tournament
	scores      *fakeScoreRepo
	users       *fakeUserRepo
}

func newFakeTournamentRepo(scores *fakeScoreRepo, users *fakeUserRepo, tournaments ...domain.Tournament) *fakeTournamentRepo {
	r := &fakeTournamentRepo{
		nextID:      100,
		tournaments: make(map[uint]domain.Tournament),
		scores:      scores,
		users:       users,
	}
	for _, t := range tournaments {
		r.tournaments[t.ID] = t
	}
	return r
}

func (r *fakeTournamentRepo) Create(_ context.Context, tournament domain.Tournament) (domain.Tournament, error) {
	tournament.ID = r.nextID
	r.nextID++
	r.tournaments[tournament.ID] = tournament
	return tournament, nil
}

func (r *fakeTournamentRepo) FindByID(_ context.Context, id uint) (domain.Tournament, error) {
	tournament, ok := r.tournaments[id]
	if !ok {
		return domain.Tournament{}, repository.ErrTournamentNotFound
	}
	return tournament, nil
}

func (r *fakeTournamentRepo) FindByClub(_ context.Context, clubID uint) ([]domain.Tournament, error) {
	var tournaments []domain.Tournament
	for _, t := range r.tournaments {
		if clubID == 0 || t.ClubID == clubID {
			tournaments = append(tournaments, t)
		}
	}
	sort.SliceStable(tournaments, func(i, j int) bool {
		return tournaments[i].Date.After(tournaments[j].Date)
	})
	return tournaments, nil
}

func (r *fakeTournamentRepo) FindParticipants(_ context.Context, tournamentID uint) ([]domain.Participant, error) {
	var participants []domain.Participant
	if r.scores == nil {
		return participants, nil
	}
	for key := range r.scores.participants {
		if key.tournamentID == tournamentID {
			participants = append(participants, domain.Participant{
				TournamentID: key.tournamentID,
				UserID:       key.userID,
				Role:         "player",
			})
		}
	}
	sort.SliceStable(participants, func(i, j int) bool {
		return participants[i].UserID < participants[j].UserID
	})
	return participants, nil
}

func (r *fakeTournamentRepo) FindCompletedInYear(_ context.Context, clubID uint, year int) ([]domain.Tournament, error) {
	var tournaments []domain.Tournament
	for _, t := range r.tournaments {
		if t.Status != domain.StatusCompleted {
			continue
		}
		if t.Date.Year() != year {
			continue
		}
		if clubID != 0 && t.ClubID != clubID {
			continue
		}
		tournaments = append(tournaments, t)
	}
	sort.SliceStable(tournaments, func(i, j int) bool {
		return tournaments[i].Date.Before(tournaments[j].Date)
	})
	return tournaments, nil
}

// Complete mirrors the conditional-update semantics of the real DAO:
// the flip fails if the tournament is gone or already completed, and
// nothing else is applied in that case.
func (r *fakeTournamentRepo) Complete(_ context.Context, tournamentID uint, placements []repository.ScorePlacement, changes []repository.HandicapChange) error {
	tournament, ok := r.tournaments[tournamentID]
	if !ok {
		return repository.ErrTournamentNotFound
	}
	if tournament.Status == domain.StatusCompleted {
		return repository.ErrTournamentCompleted
	}

	tournament.Status = domain.StatusCompleted
	r.tournaments[tournamentID] = tournament

	for _, p := range placements {
		score, ok := r.scores.scores[p.ScoreID]
		if !ok {
			continue
		}
		pos := p.Position
		score.Position = &pos
		score.HandicapAdjustment = p.Adjustment
		r.scores.scores[p.ScoreID] = score
	}

	for _, c := range changes {
		user := r.users.users[c.UserID]
		h := c.NewHandicap
		user.CurrentHandicap = &h
		r.users.users[c.UserID] = user

		tid := c.TournamentID
		r.users.history = append(r.users.history, domain.HandicapHistory{
			UserID:        c.UserID,
			HandicapIndex: c.NewHandicap,
			Reason:        c.Reason,
			EffectiveDate: c.EffectiveDate,
			TournamentID:  &tid,
		})
	}

	return nil
}

type fakeCourseRepo struct {
	courses map[uint]domain.Course
}

func newFakeCourseRepo(courses ...domain.Course) *fakeCourseRepo {
	r := &fakeCourseRepo{courses: make(map[uint]domain.Course)}
	for _, c := range courses {
		r.courses[c.ID] = c
	}
	return r
}

func (r *fakeCourseRepo) FindByID(_ context.Context, id uint) (domain.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return domain.Course{}, repository.ErrCourseNotFound
	}
	return course, nil
}

func (r *fakeCourseRepo) FindAll(_ context.Context) ([]domain.Course, error) {
	var courses []domain.Course
	for _, c := range r.courses {
		courses = append(courses, c)
	}
	sort.SliceStable(courses, func(i, j int) bool {
		return courses[i].ID < courses[j].ID
	})
	return courses, nil
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func dateIn(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 10, 0, 0, 0, time.UTC)
}
