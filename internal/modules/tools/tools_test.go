package tools

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/meritlives/tools-core/internal/modules/billing"
	"github.com/meritlives/tools-core/internal/modules/toolcontent"
	"github.com/meritlives/tools-core/internal/pkg/textkit"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"daily limit", billing.ErrDailyLimitReached, http.StatusForbidden},
		{"saved limit", billing.ErrSavedLimitReached, http.StatusForbidden},
		{"unknown category", textkit.ErrUnknownCategoryKey, http.StatusBadRequest},
		{"invalid object id", toolcontent.ErrInvalidObjID, http.StatusBadRequest},
		{"empty template set", textkit.ErrEmptyTemplateSet, http.StatusInternalServerError},
		{"wrapped empty template set", fmt.Errorf("render: %w", textkit.ErrEmptyTemplateSet), http.StatusInternalServerError},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			WriteError(c, tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
