package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/pet-shop/internal/usecase/catalog"
)

type AdminServiceHandler struct {
	list     *ucCatalog.ListServices
	get      *ucCatalog.GetService
	create   *ucCatalog.CreateService
	update   *ucCatalog.UpdateService
	remove   *ucCatalog.DeleteService
	overview *ucCatalog.Overview
	log      zerolog.Logger
}

func NewAdminServiceHandler(
	list *ucCatalog.ListServices,
	get *ucCatalog.GetService,
	create *ucCatalog.CreateService,
	update *ucCatalog.UpdateService,
	remove *ucCatalog.DeleteService,
	overview *ucCatalog.Overview,
	log zerolog.Logger,
) *AdminServiceHandler {
	return &AdminServiceHandler{
		list:     list,
		get:      get,
		create:   create,
		update:   update,
		remove:   remove,
		overview: overview,
		log:      log,
	}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"required,max=255"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Duration    int     `json:"duration" binding:"required,gt=0"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,max=100"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Price       *float64 `json:"price,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *AdminServiceHandler) List(c *gin.Context, _ *identity.AuthenticatedUser) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	out, err := h.list.Execute(c.Request.Context(), c.Query("search"), page, limit)
	if err != nil {
		writeError(c, h.log, err, "FETCH_ERROR")
		return
	}

	httpresp.Page(c, out.Services, out.Page, out.Limit, out.Total)
}

func (h *AdminServiceHandler) Get(c *gin.Context, _ *identity.AuthenticatedUser) {
	id, ok := serviceID(c)
	if !ok {
		return
	}

	detail, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err, "FETCH_ERROR")
		return
	}

	httpresp.OK(c, detail)
}

func (h *AdminServiceHandler) Create(c *gin.Context, u *identity.AuthenticatedUser) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	svc, err := h.create.Execute(c.Request.Context(), ucCatalog.CreateServiceInput{
		Actor:       u,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
	})
	if err != nil {
		writeError(c, h.log, err, "CREATE_ERROR")
		return
	}

	httpresp.Created(c, svc)
}

func (h *AdminServiceHandler) Update(c *gin.Context, u *identity.AuthenticatedUser) {
	id, ok := serviceID(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	svc, err := h.update.Execute(c.Request.Context(), ucCatalog.UpdateServiceInput{
		Actor:       u,
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Active:      req.Active,
	})
	if err != nil {
		writeError(c, h.log, err, "UPDATE_ERROR")
		return
	}

	httpresp.OKMessage(c, svc, "Service updated.")
}

func (h *AdminServiceHandler) Delete(c *gin.Context, u *identity.AuthenticatedUser) {
	id, ok := serviceID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), u, id); err != nil {
		writeError(c, h.log, err, "DELETE_ERROR")
		return
	}

	httpresp.OKMessage(c, nil, "Service deleted.")
}

func (h *AdminServiceHandler) Dashboard(c *gin.Context, _ *identity.AuthenticatedUser) {
	o, err := h.overview.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err, "FETCH_ERROR")
		return
	}

	httpresp.OK(c, o)
}

func serviceID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "INVALID_ID", "Invalid service id.")
		return 0, false
	}
	return uint(id), true
}
