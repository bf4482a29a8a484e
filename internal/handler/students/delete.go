// File: internal/handler/students/delete.go
package students

import (
	"net/http"

	"student-registry/internal/dto"
	"student-registry/internal/handler"
	"student-registry/internal/service"

	"github.com/labstack/echo/v4"
)

// DeleteStudentHandler removes a student by path id. Admin only.
// @Summary     Delete a student
// @Tags        students
// @Produce     json
// @Param       id  path     int true "student id"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Security    OAuth2Password
// @Router      /students/{id} [delete]
func DeleteStudentHandler(svc *service.Students) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := studentID(c)
		if err != nil {
			return handler.WriteError(c, err)
		}
		if _, err := svc.Delete(c.Request().Context(), id); err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully deleted"})
	}
}
