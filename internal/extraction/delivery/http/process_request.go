package http

import (
	"github.com/gin-gonic/gin"

	"meeting-task-extractor/internal/extraction"
)

// processExtractReq binds the extract request body. A missing body or text
// field is reported as a ValidationError.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, &extraction.ValidationError{Field: "body", Err: err}
	}
	return req, nil
}
