package http

import (
	"github.com/gin-gonic/gin"

	"action-item-extractor/internal/model"
	"action-item-extractor/pkg/response"
)

func scopeFromRequest(c *gin.Context) model.Scope {
	return model.Scope{UserID: c.ClientIP(), Source: model.SourceHTTP}
}

// Extract godoc
// @Summary     Extract action items from a chat transcript
// @Description Prompts the configured language model and recovers action items from its output.
// @Description An unparseable model answer yields an empty list and an empty stage.
// @Tags        ActionItems
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Chat transcript"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     413  {object} response.Resp "Dialogue too long"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Language model unavailable"
// @Router      /api/v1/action-items/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Extract(ctx, scopeFromRequest(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		h.renderError(c, err)
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// Recover godoc
// @Summary     Recover action items from raw model output
// @Description Runs only the JSON recovery pipeline and schema enforcement on the given text.
// @Tags        ActionItems
// @Accept      json
// @Produce     json
// @Param       body body recoverReq true "Raw model output"
// @Success     200  {object} recoverResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/action-items/recover [POST]
func (h *handler) Recover(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRecoverReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Recover(ctx, scopeFromRequest(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Recover: %v", err)
		h.renderError(c, err)
		return
	}

	response.OK(c, h.newRecoverResp(output))
}

// Prompt godoc
// @Summary     Render the extraction prompt
// @Description Returns the exact few-shot prompt that would be sent for the dialogue.
// @Tags        ActionItems
// @Accept      json
// @Produce     json
// @Param       body body promptReq true "Chat transcript"
// @Success     200  {object} promptResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/action-items/prompt [POST]
func (h *handler) Prompt(c *gin.Context) {
	req, err := h.processPromptReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output := h.uc.Prompt(c.Request.Context(), req.toInput())
	response.OK(c, promptResp{Prompt: output.Prompt})
}

// Examples godoc
// @Summary     List sample transcripts
// @Tags        ActionItems
// @Produce     json
// @Success     200 {object} examplesResp
// @Router      /api/v1/action-items/examples [GET]
func (h *handler) Examples(c *gin.Context) {
	response.OK(c, h.newExamplesResp(h.uc.Examples(c.Request.Context())))
}
