package backup_controller

import (
	"io"
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

const maxBackupSize = 5 << 20 // 5 MB

// ImportBackup godoc
// @Summary Restore store state from an exported bundle
// @Description All-or-nothing: the bundle is validated in full before anything
// @Description is replaced. A malformed bundle changes nothing.
// @Tags Admin - Backup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.BackupBundle true "Exported bundle"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid bundle"
// @Router /admin/backup/import [post]
func ImportBackup(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBackupSize))
	if err != nil || len(raw) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read backup file"))
		return
	}

	if err := store.Get().Import(raw); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid backup bundle: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Backup restored", nil))
}
