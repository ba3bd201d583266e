package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fairwaylabs/society-api/internal/api/handler/v1/response"
	"github.com/fairwaylabs/society-api/internal/domain"
	"github.com/fairwaylabs/society-api/internal/service"
)

type CourseService interface {
	GetCourse(ctx context.Context, id uint) (domain.Course, error)
	ListCourses(ctx context.Context) ([]domain.Course, error)
}

type CourseHandler struct {
	svc CourseService
}

func NewCourseHandler(svc CourseService) *CourseHandler {
	return &CourseHandler{
		svc: svc,
	}
}

// HandleListCourses godoc
// @Summary      List all courses
// @Tags         courses
// @Produce      json
// @Success      200  {array}   domain.Course
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /courses [get]
// @Security     BearerAuth
func (h *CourseHandler) HandleListCourses(ctx *gin.Context) {
	courses, err := h.svc.ListCourses(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListCourses -> h.svc.ListCourses -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// HandleGetCourse godoc
// @Summary      Get a course with its holes
// @Tags         courses
// @Produce      json
// @Param        courseID  path      int  true  "Course ID"
// @Success      200  {object}  domain.Course
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /courses/{courseID} [get]
// @Security     BearerAuth
func (h *CourseHandler) HandleGetCourse(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "courseID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	course, err := h.svc.GetCourse(ctx.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("course", "ID", courseID))
			return
		}

		err = fmt.Errorf("v1.HandleGetCourse -> h.svc.GetCourse -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, course)
}
