package audit

import (
	"encoding/json"
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/mrlokans/bookcafe/internal/database/audit"
	"github.com/mrlokans/bookcafe/internal/entities"
)

// Service provides high-level audit logging functionality.
type Service struct {
	repo *audit.Repository
	wg   sync.WaitGroup
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// Mutation describes a successful write made through the API.
type Mutation struct {
	Action     entities.AuditAction
	EntityType string // "book", "category", "menu", "order"
	EntityID   uint
	Label      string   // human readable name of the record, e.g. a book title
	Fields     []string // columns changed by an update
	RequestID  string
	IPAddress  string
}

// Log records a generic audit event.
func (s *Service) Log(event *entities.AuditEvent) error {
	return s.repo.LogEvent(event)
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.repo.LogEvent(event); err != nil {
			logrus.WithError(err).WithField("action", event.Action).Warn("Failed to log audit event")
		}
	}()
}

// Wait blocks until all pending asynchronous events are written.
func (s *Service) Wait() {
	s.wg.Wait()
}

// LogMutation records a create, update or delete of an API resource.
func (s *Service) LogMutation(m Mutation) {
	id := m.EntityID
	event := &entities.AuditEvent{
		Action:      m.Action,
		EntityType:  m.EntityType,
		EntityID:    &id,
		Description: truncate(describe(m), 500),
		RequestID:   m.RequestID,
		IPAddress:   m.IPAddress,
		Status:      entities.AuditStatusSuccess,
	}

	if len(m.Fields) > 0 {
		fields := append([]string(nil), m.Fields...)
		sort.Strings(fields)
		if md, err := json.Marshal(map[string]any{"fields": fields}); err == nil {
			event.Metadata = datatypes.JSON(md)
		}
	}

	s.LogAsync(event)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}

func describe(m Mutation) string {
	var verb string
	switch m.Action {
	case entities.AuditActionCreate:
		verb = "Created"
	case entities.AuditActionUpdate:
		verb = "Updated"
	case entities.AuditActionDelete:
		verb = "Deleted"
	default:
		verb = string(m.Action)
	}
	if m.Label == "" {
		return verb + " " + m.EntityType
	}
	return verb + " " + m.EntityType + ": " + m.Label
}

// truncate shortens a string to at most maxLen bytes without splitting a
// UTF-8 sequence.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
