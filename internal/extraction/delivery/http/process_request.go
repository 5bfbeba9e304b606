package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processRecoverReq(c *gin.Context) (recoverReq, error) {
	var req recoverReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processPromptReq(c *gin.Context) (promptReq, error) {
	var req promptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
