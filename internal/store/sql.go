package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"roombooking/internal/domain"
)

// documentRow keeps one JSON document per row. Seq preserves insertion order,
// which is the order Find returns documents in.
type documentRow struct {
	Seq        int64     `gorm:"column:seq;primaryKey;autoIncrement"`
	Collection string    `gorm:"column:collection;size:64;not null;uniqueIndex:idx_documents_collection_doc"`
	DocID      string    `gorm:"column:doc_id;size:24;not null;uniqueIndex:idx_documents_collection_doc"`
	Body       string    `gorm:"column:body;type:text;not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (documentRow) TableName() string { return "documents" }

// SQLStore is a document store on top of a single gorm table. It works with
// both the PostgreSQL and the SQLite dialects.
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Migrate creates the documents table.
func (s *SQLStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&documentRow{})
}

func (s *SQLStore) Find(ctx context.Context, collection string, q Query) ([]Document, error) {
	tx := s.scope(ctx, collection, q).Order("seq ASC")
	if q.Skip > 0 {
		tx = tx.Offset(int(q.Skip))
	}
	if q.Limit > 0 {
		tx = tx.Limit(int(q.Limit))
	}

	var rows []documentRow
	if err := tx.Find(&rows).Error; err != nil {
		return nil, wrap("find", collection, describe(err))
	}

	out := make([]Document, 0, len(rows))
	for _, row := range rows {
		doc, err := row.document()
		if err != nil {
			return nil, wrap("find", collection, err)
		}
		out = append(out, doc)
	}
	return out, nil
}

func (s *SQLStore) FindOne(ctx context.Context, collection string, q Query) (Document, error) {
	var rows []documentRow
	if err := s.scope(ctx, collection, q).Order("seq ASC").Limit(1).Find(&rows).Error; err != nil {
		return nil, wrap("findOne", collection, describe(err))
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	doc, err := rows[0].document()
	if err != nil {
		return nil, wrap("findOne", collection, err)
	}
	return doc, nil
}

func (s *SQLStore) InsertOne(ctx context.Context, collection string, rec Record) (domain.ID, error) {
	body, err := json.Marshal(rec)
	if err != nil {
		return domain.ID{}, wrap("insertOne", collection, err)
	}

	id := rec.DocumentID()
	row := documentRow{
		Collection: collection,
		DocID:      id.Hex(),
		Body:       string(body),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.ID{}, wrap("insertOne", collection, describe(err))
	}
	return id, nil
}

func (s *SQLStore) Count(ctx context.Context, collection string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&documentRow{}).
		Where("collection = ?", collection).
		Count(&n).Error
	if err != nil {
		return 0, wrap("count", collection, describe(err))
	}
	return n, nil
}

func (s *SQLStore) Close(_ context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLStore) scope(ctx context.Context, collection string, q Query) *gorm.DB {
	tx := s.db.WithContext(ctx).Where("collection = ?", collection)

	if len(q.IDs) > 0 {
		hexes := make([]string, 0, len(q.IDs))
		for _, id := range q.IDs {
			hexes = append(hexes, id.Hex())
		}
		tx = tx.Where("doc_id IN ?", hexes)
	}

	for field, value := range q.Where {
		if id, ok := value.(domain.ID); ok {
			value = id.Hex()
		}
		expr, key := s.jsonField(field)
		tx = tx.Where(expr+" = ?", key, value)
	}
	return tx
}

// jsonField returns the dialect's expression for a top-level text field of
// the body and the argument it takes.
func (s *SQLStore) jsonField(field string) (string, string) {
	if s.db.Dialector.Name() == "postgres" {
		return "(body::jsonb ->> ?)", field
	}
	return "json_extract(body, ?)", "$." + field
}

func (r documentRow) document() (Document, error) {
	doc := Document{}
	if err := json.Unmarshal([]byte(r.Body), &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", r.DocID, err)
	}
	doc["_id"] = r.DocID
	return doc, nil
}

// describe adds the SQLSTATE to PostgreSQL errors so it shows up in the
// response details.
func describe(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%s (SQLSTATE %s): %w", pgErr.Message, pgErr.Code, err)
	}
	return err
}
