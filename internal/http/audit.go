package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcafe/internal/audit"
	"github.com/mrlokans/bookcafe/internal/entities"
	"github.com/mrlokans/bookcafe/internal/middleware"
)

// recordMutation forwards a successful write to the audit trail, if any.
func recordMutation(c *gin.Context, rec MutationRecorder, action entities.AuditAction, entityType string, id uint, label string, fields []string) {
	if rec == nil {
		return
	}
	rec.LogMutation(audit.Mutation{
		Action:     action,
		EntityType: entityType,
		EntityID:   id,
		Label:      label,
		Fields:     fields,
		RequestID:  middleware.RequestID(c),
		IPAddress:  c.ClientIP(),
	})
}
