package http

import (
	"github.com/gin-gonic/gin"
)

// processModerateReq binds and validates the moderate request body.
func (h *handler) processModerateReq(c *gin.Context) (moderateReq, error) {
	var req moderateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
