// File: internal/handler/students/update.go
package students

import (
	"net/http"

	"student-registry/internal/dto"
	"student-registry/internal/handler"
	"student-registry/internal/service"

	"github.com/labstack/echo/v4"
)

// UpdateStudentHandler replaces every field. Admin only.
// @Summary     Replace a student
// @Tags        students
// @Accept      json
// @Produce     json
// @Param       id   path     int                true "student id"
// @Param       body body     dto.StudentRequest true "student"
// @Success     200  {object} dto.UpdateStudentResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     403  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Security    OAuth2Password
// @Router      /students/{id} [put]
func UpdateStudentHandler(svc *service.Students) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := studentID(c)
		if err != nil {
			return handler.WriteError(c, err)
		}
		var req dto.StudentRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.WriteError(c, err)
		}
		st, err := svc.UpdateFull(c.Request().Context(), id, req.Student())
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, dto.UpdateStudentResponse{Message: "Successfully updated", Data: *st})
	}
}

// PatchStudentHandler changes only the fields present in the body. Admin only.
// @Summary     Update part of a student
// @Tags        students
// @Accept      json
// @Produce     json
// @Param       id   path     int                     true "student id"
// @Param       body body     dto.StudentPatchRequest true "fields to change"
// @Success     200  {object} dto.UpdateStudentResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     403  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Security    OAuth2Password
// @Router      /students/{id} [patch]
func PatchStudentHandler(svc *service.Students) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := studentID(c)
		if err != nil {
			return handler.WriteError(c, err)
		}
		var req dto.StudentPatchRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.WriteError(c, err)
		}
		st, err := svc.UpdatePartial(c.Request().Context(), id, req.Patch())
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, dto.UpdateStudentResponse{Message: "Successfully updated", Data: *st})
	}
}
