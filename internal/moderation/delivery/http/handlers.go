package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"iffy-moderation/internal/moderation"
	pkgErrors "iffy-moderation/pkg/errors"
	"iffy-moderation/pkg/response"
)

// Moderate godoc
// @Summary     Moderate content
// @Description Sends text and image URLs to Iffy and stores the verdict.
// @Tags        Moderation
// @Accept      json
// @Produce     json
// @Param       body body moderateReq true "Content to moderate"
// @Success     200  {object} moderateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     502  {object} response.Resp "Upstream error, data.record holds the stored record"
// @Router      /api/v1/moderations [POST]
func (h *handler) Moderate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processModerateReq(c)
	if err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error()), nil)
		return
	}

	output, err := h.uc.Moderate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Moderate: %v", err)
		var data map[string]interface{}
		if output.Record.ID != "" {
			data = map[string]interface{}{"record": newRecordResp(output.Record)}
		}
		h.respondError(c, err, data)
		return
	}

	response.OK(c, h.newModerateResp(output))
}

// List godoc
// @Summary     List moderation records
// @Description Returns recent moderation records, newest first.
// @Tags        Moderation
// @Produce     json
// @Param       status query string false "Filter by status (clean/flagged/server_error/transport_error)"
// @Param       limit  query int    false "Page size (default: 20, max: 100)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/moderations [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error()), nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err, nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get moderation record
// @Description Returns a single moderation record by its ID.
// @Tags        Moderation
// @Produce     json
// @Param       id path string true "Record ID"
// @Success     200 {object} detailResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/moderations/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		if !errors.Is(err, moderation.ErrRecordNotFound) {
			h.l.Errorf(ctx, "uc.Detail: %v", err)
		}
		h.respondError(c, err, nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

func (h *handler) respondError(c *gin.Context, err error, data map[string]interface{}) {
	mapped := h.mapError(err)
	if errors.Is(mapped, pkgErrors.ErrInternalServerError) {
		response.InternalError(c, err)
		return
	}
	response.Error(c, mapped, data)
}
