package sqlite

import (
	"context"
	"database/sql"
	"math"
	"strings"
	"time"

	"github.com/fwojciec/kmlstat"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ kmlstat.DocumentService = (*DocumentService)(nil)

// DocumentService implements kmlstat.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// CreateDocument stores a document with its elements and counts.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *kmlstat.Document, content string) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	hash := HashContent(content)

	var existing string
	err := s.db.QueryRowContext(ctx, "SELECT id FROM documents WHERE content_hash = ?", hash).Scan(&existing)
	if err == nil {
		return kmlstat.Errorf(kmlstat.ECONFLICT, "document already imported as %s", existing)
	}
	if err != sql.ErrNoRows {
		return err
	}

	doc.ID = uuid.New().String()
	doc.ContentHash = hash
	doc.CreatedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO documents (id, name, content_hash, created_at)
		VALUES (?, ?, ?, ?)
	`, doc.ID, doc.Name, doc.ContentHash, doc.CreatedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for i, e := range doc.Result.Elements {
		var hasLength int
		var length sql.NullFloat64
		if e.Length != nil {
			hasLength = 1
			if !math.IsNaN(*e.Length) {
				length = sql.NullFloat64{Float64: *e.Length, Valid: true}
			}
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO elements (document_id, position, kind, name, description, coordinates, has_length, length)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, doc.ID, i, string(e.Kind), e.Name, e.Description, encodeCoordinates(e.Coordinates), hasLength, length); err != nil {
			return err
		}
	}

	for kind, count := range doc.Result.Counts {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO counts (document_id, kind, count) VALUES (?, ?, ?)
		`, doc.ID, string(kind), count); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*kmlstat.Document, error) {
	docs, err := s.FindDocuments(ctx, kmlstat.DocumentFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, kmlstat.Errorf(kmlstat.ENOTFOUND, "document not found")
	}
	return docs[0], nil
}

// FindDocuments retrieves documents matching the filter, newest first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter kmlstat.DocumentFilter) ([]*kmlstat.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, content_hash, created_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	docs, err := s.scanDocuments(ctx, query.String(), args)
	if err != nil {
		return nil, err
	}

	for _, doc := range docs {
		if doc.Result, err = s.findResult(ctx, doc.ID); err != nil {
			return nil, err
		}
	}

	return docs, nil
}

func (s *DocumentService) scanDocuments(ctx context.Context, query string, args []any) ([]*kmlstat.Document, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*kmlstat.Document
	for rows.Next() {
		var doc kmlstat.Document
		var createdAt string

		if err := rows.Scan(&doc.ID, &doc.Name, &doc.ContentHash, &createdAt); err != nil {
			return nil, err
		}

		if doc.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// findResult loads the elements and counts of a document.
func (s *DocumentService) findResult(ctx context.Context, id string) (*kmlstat.Result, error) {
	result := &kmlstat.Result{Counts: make(map[kmlstat.Kind]int)}

	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, name, description, coordinates, has_length, length
		FROM elements
		WHERE document_id = ?
		ORDER BY position ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var e kmlstat.Element
		var kind, coords string
		var hasLength bool
		var length sql.NullFloat64

		if err := rows.Scan(&kind, &e.Name, &e.Description, &coords, &hasLength, &length); err != nil {
			return nil, err
		}

		e.Kind = kmlstat.Kind(kind)
		e.Coordinates = kmlstat.ParseCoordinates(coords)
		if hasLength {
			v := math.NaN()
			if length.Valid {
				v = length.Float64
			}
			e.Length = &v
		}
		result.Elements = append(result.Elements, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	countRows, err := s.db.QueryContext(ctx, "SELECT kind, count FROM counts WHERE document_id = ?", id)
	if err != nil {
		return nil, err
	}
	defer countRows.Close()

	for countRows.Next() {
		var kind string
		var count int
		if err := countRows.Scan(&kind, &count); err != nil {
			return nil, err
		}
		result.Counts[kmlstat.Kind(kind)] = count
	}

	return result, countRows.Err()
}

// DeleteDocument permanently removes a document and its elements.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return kmlstat.Errorf(kmlstat.ENOTFOUND, "document not found")
	}

	return nil
}
