package events

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Event describes a document event to store in the outbox.
type Event struct {
	DocumentID snowflake.ID
	Type       string
	Payload    map[string]any
	DedupeKey  string
}

// DocumentEvent is the persisted outbox row.
type DocumentEvent struct {
	ID         snowflake.ID      `gorm:"primaryKey"`
	DocumentID snowflake.ID      `gorm:"not null;uniqueIndex:idx_document_events_dedupe,priority:1"`
	EventType  string            `gorm:"type:text;not null"`
	Payload    datatypes.JSONMap `gorm:"type:json"`
	DedupeKey  *string           `gorm:"type:text;uniqueIndex:idx_document_events_dedupe,priority:2"`
	Published  bool              `gorm:"not null;default:false"`
	CreatedAt  time.Time         `gorm:"not null"`
}

// TableName sets the database table name.
func (DocumentEvent) TableName() string { return "document_events" }

// Outbox inserts document events into the document_events table.
type Outbox struct {
	db    *gorm.DB
	genID *snowflake.Node
}

func NewOutbox(db *gorm.DB, genID *snowflake.Node) *Outbox {
	return &Outbox{db: db, genID: genID}
}

// Publish stores an event using the default database connection.
func (o *Outbox) Publish(ctx context.Context, event Event) error {
	return o.publish(ctx, o.db, event)
}

// PublishTx stores an event using an existing transaction.
func (o *Outbox) PublishTx(ctx context.Context, tx *gorm.DB, event Event) error {
	if tx == nil {
		return errors.New("missing_transaction")
	}
	return o.publish(ctx, tx, event)
}

func (o *Outbox) publish(ctx context.Context, db *gorm.DB, event Event) error {
	if o == nil || db == nil || o.genID == nil {
		return errors.New("outbox_unavailable")
	}
	if event.DocumentID == 0 {
		return errors.New("invalid_document_id")
	}
	name := strings.TrimSpace(event.Type)
	if name == "" {
		return errors.New("missing_event_type")
	}

	payload := datatypes.JSONMap{}
	for key, value := range event.Payload {
		if strings.TrimSpace(key) == "" {
			continue
		}
		payload[key] = value
	}

	dedupe := strings.TrimSpace(event.DedupeKey)
	var dedupeValue any
	if dedupe != "" {
		dedupeValue = dedupe
	}

	now := time.Now().UTC()
	return db.WithContext(ctx).Exec(
		`INSERT INTO document_events (id, document_id, event_type, payload, dedupe_key, published, created_at)
		 VALUES (?, ?, ?, ?, ?, false, ?)
		 ON CONFLICT (document_id, dedupe_key) DO NOTHING`,
		o.genID.Generate(),
		event.DocumentID,
		name,
		payload,
		dedupeValue,
		now,
	).Error
}
