// Package tools carries the shared plumbing for the marketing tool
// endpoints: quota enforcement, saved-content routes, and the public
// catalog. Each tool lives in its own subpackage and plugs into Deps.
package tools

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/meritlives/tools-core/internal/middleware"
	"github.com/meritlives/tools-core/internal/modules/billing"
	"github.com/meritlives/tools-core/internal/modules/toolcontent"
	"github.com/meritlives/tools-core/internal/pkg/response"
	"github.com/meritlives/tools-core/internal/pkg/textkit"
)

// Deps is the collaborator set shared by every tool handler.
type Deps struct {
	Store  *toolcontent.Service
	Usage  *billing.UsageService
	Logger *zap.Logger
}

// NewSource returns a time-seeded randomness source for one generation run.
func NewSource() textkit.Source {
	return textkit.NewSource(uint64(time.Now().UnixNano()))
}

// ConsumeQuota spends one generation from the caller's daily quota, writing
// the error response itself when the plan cap is hit. Returns false when the
// request was aborted.
func ConsumeQuota(c *gin.Context, d Deps) bool {
	userID := middleware.CurrentUserID(c)
	if err := d.Usage.Consume(c.Request.Context(), userID); err != nil {
		WriteError(c, err)
		return false
	}
	return true
}

// PersistResult stores a generation for later retrieval. Saving is best
// effort: a full store or a Mongo hiccup never fails the generation that
// already succeeded, the caller just gets no saved-content id back.
func PersistResult(c *gin.Context, d Deps, toolID, title string, input, output interface{}) string {
	userID := middleware.CurrentUserID(c)
	ctx := c.Request.Context()

	rec := toolcontent.ContentRecord{
		UserID: userID,
		ToolID: toolID,
		Title:  title,
		Input:  input,
		Output: output,
	}
	id, err := d.Store.Save(ctx, rec, d.Usage.SavedContentLimit(ctx, userID))
	if err != nil {
		if errors.Is(err, toolcontent.ErrSavedLimit) {
			d.Logger.Debug("saved content limit reached", zap.String("user_id", userID), zap.String("tool", toolID))
		} else {
			d.Logger.Warn("persist generation failed", zap.String("tool", toolID), zap.Error(err))
		}
		return ""
	}
	return id
}

// WriteError maps domain errors onto the response envelope.
func WriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, billing.ErrDailyLimitReached):
		response.ForbiddenMsg(c, billing.ErrDailyLimitReached.Error())
	case errors.Is(err, billing.ErrSavedLimitReached):
		response.ForbiddenMsg(c, billing.ErrSavedLimitReached.Error())
	case errors.Is(err, textkit.ErrUnknownCategoryKey),
		errors.Is(err, toolcontent.ErrInvalidObjID):
		response.BadRequest(c, "")
	case toolcontent.IsNotFound(err):
		response.NotFound(c)
	case errors.Is(err, textkit.ErrEmptyTemplateSet):
		// An empty template table is a build defect, not a caller mistake.
		response.InternalError(c, "")
	default:
		response.InternalError(c, "")
	}
}
