package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fairwaylabs/society-api/internal/api/handler/v1/request"
	"github.com/fairwaylabs/society-api/internal/api/handler/v1/response"
	"github.com/fairwaylabs/society-api/internal/domain"
	"github.com/fairwaylabs/society-api/internal/service"
)

type ScoreService interface {
	SubmitScore(ctx context.Context, tournamentID, userID uint, gross *int, holes []service.HoleSubmission) (domain.TournamentScore, error)
	GetScore(ctx context.Context, tournamentID, userID uint) (domain.TournamentScore, error)
	Leaderboard(ctx context.Context, tournamentID uint) ([]domain.TournamentScore, error)
}

type ScoreHandler struct {
	svc  ScoreService
	uSvc UserService
}

func NewScoreHandler(svc ScoreService, uSvc UserService) *ScoreHandler {
	return &ScoreHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleSubmitScore godoc
// @Summary      Submit a score for a tournament round
// @Description  Records a round as a gross total or hole by hole. Resubmitting replaces
// @Description  the previous round for the same player. Admins can submit on behalf of
// @Description  another player via user_id.
// @Tags         scores
// @Accept       json
// @Produce      json
// @Param        tournamentID  path      int                         true  "Tournament ID"
// @Param        input         body      request.SubmitScoreRequest  true  "Score details"
// @Success      201  {object}  domain.TournamentScore
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tournaments/{tournamentID}/scores [post]
// @Security     BearerAuth
func (h *ScoreHandler) HandleSubmitScore(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	tournamentID, err := parseIDParam(ctx, "tournamentID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var input request.SubmitScoreRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	targetID := user.ID
	if input.UserID != nil && *input.UserID != user.ID {
		if user.Role != "admin" {
			response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v cannot submit scores for other players", user.ID)))
			return
		}
		targetID = *input.UserID
	}

	holes := make([]service.HoleSubmission, len(input.HoleScores))
	for i, entry := range input.HoleScores {
		holes[i] = service.HoleSubmission{
			HoleID:  entry.HoleID,
			Strokes: entry.Strokes,
		}
	}

	score, err := h.svc.SubmitScore(ctx.Request.Context(), tournamentID, targetID, input.GrossScore, holes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTournamentNotFound):
			response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", tournamentID))
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", targetID))
		case errors.Is(err, service.ErrMissingScores),
			errors.Is(err, service.ErrHoleCountMismatch),
			errors.Is(err, service.ErrUnknownHole),
			errors.Is(err, service.ErrStrokesOutOfRange):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleSubmitScore -> h.svc.SubmitScore -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, score)
}

// HandleGetScore godoc
// @Summary      Get a player's score for a tournament
// @Tags         scores
// @Produce      json
// @Param        tournamentID  path      int  true  "Tournament ID"
// @Param        userID        path      int  true  "User ID"
// @Success      200  {object}  domain.TournamentScore
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tournaments/{tournamentID}/scores/{userID} [get]
// @Security     BearerAuth
func (h *ScoreHandler) HandleGetScore(ctx *gin.Context) {
	tournamentID, err := parseIDParam(ctx, "tournamentID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	score, err := h.svc.GetScore(ctx.Request.Context(), tournamentID, userID)
	if err != nil {
		if errors.Is(err, service.ErrScoreNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("score", "userID", userID))
			return
		}

		err = fmt.Errorf("v1.HandleGetScore -> h.svc.GetScore -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, score)
}

// HandleLeaderboard godoc
// @Summary      Get a tournament leaderboard
// @Description  Stableford tournaments are ordered by points descending, stroke play by
// @Description  net score ascending.
// @Tags         scores
// @Produce      json
// @Param        tournamentID  path      int  true  "Tournament ID"
// @Success      200  {array}   domain.TournamentScore
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tournaments/{tournamentID}/leaderboard [get]
// @Security     BearerAuth
func (h *ScoreHandler) HandleLeaderboard(ctx *gin.Context) {
	tournamentID, err := parseIDParam(ctx, "tournamentID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	scores, err := h.svc.Leaderboard(ctx.Request.Context(), tournamentID)
	if err != nil {
		if errors.Is(err, service.ErrTournamentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", tournamentID))
			return
		}

		err = fmt.Errorf("v1.HandleLeaderboard -> h.svc.Leaderboard -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, scores)
}
