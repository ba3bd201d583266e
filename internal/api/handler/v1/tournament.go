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

type TournamentService interface {
	CreateTournament(ctx context.Context, tournament domain.Tournament) (domain.Tournament, error)
	GetTournament(ctx context.Context, id uint) (domain.Tournament, error)
	ListTournaments(ctx context.Context, clubID uint) ([]domain.Tournament, error)
	GetParticipants(ctx context.Context, tournamentID uint) ([]domain.Participant, error)
	CompleteTournament(ctx context.Context, tournamentID uint) (domain.Tournament, error)
}

type TournamentHandler struct {
	svc  TournamentService
	uSvc UserService
}

func NewTournamentHandler(svc TournamentService, uSvc UserService) *TournamentHandler {
	return &TournamentHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateTournament godoc
// @Summary      Create a new tournament
// @Description  Creates a tournament in the "upcoming" state. Only admins can create tournaments.
// @Tags         tournaments
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateTournamentRequest  true  "Tournament details"
// @Success      201    {object}  domain.Tournament
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /tournaments [post]
// @Security     BearerAuth
func (h *TournamentHandler) HandleCreateTournament(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if user.Role != "admin" {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))
		return
	}

	var input request.CreateTournamentRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tournament := domain.Tournament{
		Name:     input.Name,
		Date:     input.ParsedDate(),
		Format:   domain.TournamentFormat(input.Format),
		IsMajor:  input.IsMajor,
		CourseID: input.CourseID,
		ClubID:   input.ClubID,
	}

	created, err := h.svc.CreateTournament(ctx.Request.Context(), tournament)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrCourseNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleCreateTournament -> h.svc.CreateTournament -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListTournaments godoc
// @Summary      List tournaments for a club
// @Tags         tournaments
// @Produce      json
// @Param        clubID  query     int  true  "Club ID"
// @Success      200     {array}   domain.Tournament
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /tournaments [get]
// @Security     BearerAuth
func (h *TournamentHandler) HandleListTournaments(ctx *gin.Context) {
	clubID, err := parseQueryUint(ctx, "clubID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tournaments, err := h.svc.ListTournaments(ctx.Request.Context(), clubID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListTournaments -> h.svc.ListTournaments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tournaments)
}

// HandleGetTournament godoc
// @Summary      Get a tournament
// @Tags         tournaments
// @Produce      json
// @Param        tournamentID  path      int  true  "Tournament ID"
// @Success      200  {object}  domain.Tournament
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tournaments/{tournamentID} [get]
// @Security     BearerAuth
func (h *TournamentHandler) HandleGetTournament(ctx *gin.Context) {
	tournamentID, err := parseIDParam(ctx, "tournamentID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tournament, err := h.svc.GetTournament(ctx.Request.Context(), tournamentID)
	if err != nil {
		if errors.Is(err, service.ErrTournamentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", tournamentID))
			return
		}

		err = fmt.Errorf("v1.HandleGetTournament -> h.svc.GetTournament -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tournament)
}

// HandleGetParticipants godoc
// @Summary      List a tournament's participants
// @Tags         tournaments
// @Produce      json
// @Param        tournamentID  path      int  true  "Tournament ID"
// @Success      200  {array}   domain.Participant
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tournaments/{tournamentID}/participants [get]
// @Security     BearerAuth
func (h *TournamentHandler) HandleGetParticipants(ctx *gin.Context) {
	tournamentID, err := parseIDParam(ctx, "tournamentID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participants, err := h.svc.GetParticipants(ctx.Request.Context(), tournamentID)
	if err != nil {
		if errors.Is(err, service.ErrTournamentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", tournamentID))
			return
		}

		err = fmt.Errorf("v1.HandleGetParticipants -> h.svc.GetParticipants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, participants)
}

// HandleCompleteTournament godoc
// @Summary      Complete a tournament
// @Description  Marks the tournament completed. For majors this also ranks the field,
// @Description  applies the winner and last-place handicap adjustments and appends the
// @Description  matching handicap history rows, all in one transaction. Only admins can
// @Description  complete tournaments.
// @Tags         tournaments
// @Produce      json
// @Param        tournamentID  path      int  true  "Tournament ID"
// @Success      200  {object}  domain.Tournament
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tournaments/{tournamentID}/complete [post]
// @Security     BearerAuth
func (h *TournamentHandler) HandleCompleteTournament(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if user.Role != "admin" {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))
		return
	}

	tournamentID, err := parseIDParam(ctx, "tournamentID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tournament, err := h.svc.CompleteTournament(ctx.Request.Context(), tournamentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTournamentNotFound):
			response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", tournamentID))
		case errors.Is(err, service.ErrTournamentCompleted):
			response.RenderErr(ctx, response.ErrConflict(service.ErrTournamentCompleted))
		case errors.Is(err, service.ErrNoScoresRecorded):
			response.RenderErr(ctx, response.ErrUnprocessableEntity(service.ErrNoScoresRecorded))
		default:
			err = fmt.Errorf("v1.HandleCompleteTournament -> h.svc.CompleteTournament -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, tournament)
}
