package backup_controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// ExportBackup godoc
// @Summary Download the whole store state as one JSON file
// @Description Catalog, settings, policies and orders in a single bundle.
// @Description Carts are session-scoped and deliberately excluded.
// @Tags Admin - Backup
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.BackupBundle
// @Router /admin/backup/export [get]
func ExportBackup(c *gin.Context) {
	bundle := store.Get().Export()

	filename := fmt.Sprintf("montclaire-backup-%s.json", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.JSON(http.StatusOK, bundle)
}
