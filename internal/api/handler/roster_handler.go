package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/api/metrics"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/ports"
)

// RosterHandler handles enrollment of students and teachers.
type RosterHandler struct {
	service ports.RosterService
}

func NewRosterHandler(service ports.RosterService) *RosterHandler {
	return &RosterHandler{service: service}
}

// AddStudent enrolls a new student under the acting teacher. The generated
// studentId doubles as the student's initial password.
//
// @Summary      Enroll a student
// @Tags         roster
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addStudentRequest  true  "Student details"
// @Success      201   {object}  studentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /add-student [post]
func (h *RosterHandler) AddStudent(c echo.Context) error {
	var req addStudentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	student, err := h.service.AddStudent(c.Request().Context(), actor.ID, req.Name, req.Email)
	if err != nil {
		return err
	}

	metrics.StudentsEnrolledTotal.Inc()

	return c.JSON(http.StatusCreated, studentResponse{Student: student})
}

// AddTeacher creates a teacher account.
//
// @Summary      Create a teacher
// @Tags         roster
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addTeacherRequest  true  "Teacher details"
// @Success      201   {object}  teacherResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /add-teacher [post]
func (h *RosterHandler) AddTeacher(c echo.Context) error {
	var req addTeacherRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	teacher, err := h.service.AddTeacher(c.Request().Context(), actor.ID, req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, teacherResponse{Teacher: teacher})
}

// ListStudents returns every enrolled student.
//
// @Summary      List students
// @Tags         roster
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  studentsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /students [get]
func (h *RosterHandler) ListStudents(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	students, err := h.service.ListStudents(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, studentsResponse{Students: students})
}
