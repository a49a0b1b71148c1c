package tools

import (
	"github.com/gin-gonic/gin"

	"github.com/meritlives/tools-core/internal/middleware"
	"github.com/meritlives/tools-core/internal/pkg/pagination"
	"github.com/meritlives/tools-core/internal/pkg/response"
)

// RegisterContentRoutes mounts the saved-content surface every tool shares:
// list, delete, and favorite toggle, always scoped to the caller and toolID.
func RegisterContentRoutes(g *gin.RouterGroup, d Deps, toolID string) {
	g.GET("/content", func(c *gin.Context) { listContent(c, d, toolID) })
	g.DELETE("/content/:id", func(c *gin.Context) { deleteContent(c, d) })
	g.POST("/content/:id/favorite", func(c *gin.Context) { toggleFavorite(c, d) })
}

func listContent(c *gin.Context, d Deps, toolID string) {
	userID := middleware.CurrentUserID(c)
	q := pagination.FromContext(c)
	favoritesOnly := c.Query("favorites") == "true"

	rows, total, err := d.Store.List(c.Request.Context(), userID, toolID, favoritesOnly, q.Page, q.Size)
	if err != nil {
		WriteError(c, err)
		return
	}
	response.Paged(c, rows, response.Pagination{
		Total:       total,
		CurrentPage: q.Page,
		TotalPage:   pagination.TotalPages(total, q.Size),
		Size:        q.Size,
		HasNextPage: q.Page < pagination.TotalPages(total, q.Size),
	})
}

func deleteContent(c *gin.Context, d Deps) {
	userID := middleware.CurrentUserID(c)
	if err := d.Store.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		WriteError(c, err)
		return
	}
	response.NoContent(c)
}

func toggleFavorite(c *gin.Context, d Deps) {
	userID := middleware.CurrentUserID(c)
	favorite, err := d.Store.ToggleFavorite(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		WriteError(c, err)
		return
	}
	response.OK(c, gin.H{"favorite": favorite})
}
