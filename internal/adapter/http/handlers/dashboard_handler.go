package handlers

import (
	"net/http"

	response "gestao360/internal/adapter/http/dto/response"
	"gestao360/internal/usecase"
	"gestao360/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the read-only aggregate views.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Summary godoc
// @Summary  Dashboard summary
// @Description  Revenue excludes canceled orders. Recomputed from the store on every call.
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} usecase.DashboardSummary
// @Router   /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, summary)
}

// InventoryReport godoc
// @Summary  Inventory report
// @Description  Product-type items classified by stock level; services excluded.
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} response.InventoryReportResponse
// @Router   /inventory/report [get]
func (h *DashboardHandler) InventoryReport(c *gin.Context) {
	report, err := h.usecase.InventoryReport(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInventoryReport(report))
}

// Schedule godoc
// @Summary  Scheduled orders grouped by date
// @Description  Orders without a scheduled date are excluded. Groups ascend by date; each group ascends by time.
// @Tags     dashboard
// @Produce  json
// @Success  200 {array} response.ScheduleGroupResponse
// @Router   /schedule [get]
func (h *DashboardHandler) Schedule(c *gin.Context) {
	groups, err := h.usecase.Schedule(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromScheduleGroups(groups))
}

func mapDashboardError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
