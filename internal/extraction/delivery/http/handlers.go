package http

import (
	"github.com/gin-gonic/gin"

	"meeting-task-extractor/pkg/response"
)

// Extract godoc
// @Summary     Extract action items from meeting notes
// @Description Returns the tasks found in the text and a follow-up message listing them.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body     extractReq true "Meeting notes"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.Resp "Bad Request - missing or blank text"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Model extraction not configured"
// @Failure     502  {object} response.Resp "Text generation service failed"
// @Router      /api/v1/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Extract(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExtractResp(output))
}
