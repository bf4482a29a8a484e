// File: internal/handler/students/students.go
package students

import (
	"net/http"

	"student-registry/internal/dto"
	"student-registry/internal/handler"
	"student-registry/internal/service"

	"github.com/labstack/echo/v4"
)

func studentID(c echo.Context) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64("id", &id).BindError(); err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid student id")
	}
	return id, nil
}

// CreateStudentHandler stores a new student and answers 201 with the saved record.
// @Summary     Create a student
// @Tags        students
// @Accept      json
// @Produce     json
// @Param       body body     dto.StudentRequest true "student"
// @Success     201  {object} model.Student
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     403  {object} dto.HTTPError
// @Security    OAuth2Password
// @Router      /students [post]
func CreateStudentHandler(svc *service.Students) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.StudentRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.WriteError(c, err)
		}
		st, err := svc.Create(c.Request().Context(), req.Student())
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusCreated, st)
	}
}

// ListStudentsHandler returns every student ordered by id.
// @Summary     List students
// @Tags        students
// @Produce     json
// @Success     200 {array}  model.Student
// @Failure     401 {object} dto.HTTPError
// @Security    OAuth2Password
// @Router      /students [get]
func ListStudentsHandler(svc *service.Students) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := svc.List(c.Request().Context())
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}
}

// GetStudentHandler returns one student by path id.
// @Summary     Get a student
// @Tags        students
// @Produce     json
// @Param       id  path     int true "student id"
// @Success     200 {object} model.Student
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Security    OAuth2Password
// @Router      /students/{id} [get]
func GetStudentHandler(svc *service.Students) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := studentID(c)
		if err != nil {
			return handler.WriteError(c, err)
		}
		st, err := svc.Get(c.Request().Context(), id)
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, st)
	}
}
