package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/httpresp"
	ucAccount "github.com/BruksfildServices01/pet-shop/internal/usecase/account"
)

type UserAdminHandler struct {
	assignRole *ucAccount.AssignRole
	listUsers  *ucAccount.ListUsers
	log        zerolog.Logger
}

func NewUserAdminHandler(
	assignRole *ucAccount.AssignRole,
	listUsers *ucAccount.ListUsers,
	log zerolog.Logger,
) *UserAdminHandler {
	return &UserAdminHandler{
		assignRole: assignRole,
		listUsers:  listUsers,
		log:        log,
	}
}

type AssignRoleRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

func (h *UserAdminHandler) AssignRole(c *gin.Context, u *identity.AuthenticatedUser) {
	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	out, err := h.assignRole.Execute(c.Request.Context(), ucAccount.AssignRoleInput{
		Actor: u,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		writeError(c, h.log, err, "ROLE_ASSIGNMENT_FAILED")
		return
	}

	httpresp.OKMessage(c, out, "Role updated.")
}

func (h *UserAdminHandler) List(c *gin.Context, _ *identity.AuthenticatedUser) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := h.listUsers.Execute(c.Request.Context(), page, limit)
	if err != nil {
		writeError(c, h.log, err, "INTERNAL_ERROR")
		return
	}

	httpresp.Page(c, out.Users, out.Page, out.Limit, out.Total)
}
