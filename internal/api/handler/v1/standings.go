package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fairwaylabs/society-api/internal/api/handler/v1/response"
	"github.com/fairwaylabs/society-api/internal/domain"
)

type StandingsService interface {
	YearStandings(ctx context.Context, clubID uint, year int) (domain.StandingsReport, error)
}

type StandingsHandler struct {
	svc StandingsService
}

func NewStandingsHandler(svc StandingsService) *StandingsHandler {
	return &StandingsHandler{
		svc: svc,
	}
}

// HandleGetStandings godoc
// @Summary      Get season standings for a club
// @Description  Aggregates completed tournaments in the year into a season table.
// @Description  Players are ranked by their best five tournament results.
// @Tags         standings
// @Produce      json
// @Param        clubID  query     int  true   "Club ID"
// @Param        year    query     int  false  "Season year, defaults to the current year"
// @Success      200  {object}  domain.StandingsReport
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /standings [get]
// @Security     BearerAuth
func (h *StandingsHandler) HandleGetStandings(ctx *gin.Context) {
	clubID, err := parseQueryUint(ctx, "clubID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	year := time.Now().Year()
	if raw := ctx.Query("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil || year < 1900 {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("query parameter year must be a valid year")))
			return
		}
	}

	report, err := h.svc.YearStandings(ctx.Request.Context(), clubID, year)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStandings -> h.svc.YearStandings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, report)
}
