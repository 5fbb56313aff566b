package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/256dpi/lungo/bsonkit"
	"github.com/256dpi/lungo/mongokit"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// document is the SQL row holding one BSON document.
type document struct {
	ID         string    `gorm:"primaryKey;type:varchar(24)"`
	Collection string    `gorm:"type:varchar(64);not null;index;uniqueIndex:idx_documents_unique_key,priority:1"`
	UniqueKey  *string   `gorm:"type:varchar(255);uniqueIndex:idx_documents_unique_key,priority:2"`
	Body       []byte    `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (document) TableName() string {
	return "documents"
}

// loadedDocument pairs a row with its decoded body.
type loadedDocument struct {
	row document
	doc bsonkit.Doc
}

// GormStore implements Store on a relational database. Every collection lives in the documents
// table. Filters on _id or on a collection's unique field narrow the rows in SQL; the rest of the
// filter and all updates are evaluated with mongokit.
type GormStore struct {
	db *gorm.DB

	mu     sync.RWMutex
	unique map[string]string
}

// NewGormStore creates a GormStore. The gorm.DB should be opened with TranslateError enabled so
// unique violations surface as ErrDuplicateKey.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:     db,
		unique: make(map[string]string),
	}
}

// Migrate creates the documents table and its indexes.
func (s *GormStore) Migrate() error {
	if err := s.db.AutoMigrate(&document{}); err != nil {
		return fmt.Errorf("failed to migrate documents table: %w", err)
	}
	return nil
}

func (s *GormStore) FindOne(ctx context.Context, collection string, filter bson.M, out any) error {
	query, err := toDoc(filter)
	if err != nil {
		return err
	}

	docs, err := s.candidates(s.db.WithContext(ctx), collection, filter)
	if err != nil {
		return err
	}

	target, err := firstMatch(docs, query)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrNoDocuments
	}
	return bson.Unmarshal(target.row.Body, out)
}

func (s *GormStore) Find(ctx context.Context, collection string, filter bson.M, out any, opts ...FindOptions) error {
	query, err := toDoc(filter)
	if err != nil {
		return err
	}

	docs, err := s.candidates(s.db.WithContext(ctx), collection, filter)
	if err != nil {
		return err
	}

	matched, err := filterDocuments(docs, query)
	if err != nil {
		return err
	}

	o := mergeFindOptions(opts)
	if o.SortBy != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			c := bsonkit.Compare(bsonkit.Get(matched[i].doc, o.SortBy), bsonkit.Get(matched[j].doc, o.SortBy))
			if o.Desc {
				return c > 0
			}
			return c < 0
		})
	}

	if o.Skip > 0 {
		if o.Skip >= int64(len(matched)) {
			matched = nil
		} else {
			matched = matched[o.Skip:]
		}
	}
	if o.Limit > 0 && int64(len(matched)) > o.Limit {
		matched = matched[:o.Limit]
	}

	return decodeAll(out, matched)
}

func (s *GormStore) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	query, err := toDoc(filter)
	if err != nil {
		return 0, err
	}

	docs, err := s.candidates(s.db.WithContext(ctx), collection, filter)
	if err != nil {
		return 0, err
	}

	matched, err := filterDocuments(docs, query)
	if err != nil {
		return 0, err
	}
	return int64(len(matched)), nil
}

func (s *GormStore) InsertOne(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to encode document: %w", err)
	}

	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to decode document: %w", err)
	}

	var id primitive.ObjectID
	switch v := m["_id"].(type) {
	case nil:
		id = primitive.NewObjectID()
	case primitive.ObjectID:
		id = v
		if id.IsZero() {
			id = primitive.NewObjectID()
		}
	default:
		return primitive.NilObjectID, fmt.Errorf("store: _id must be an ObjectID, got %T", v)
	}
	m["_id"] = id

	body, err := bson.Marshal(m)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to encode document: %w", err)
	}

	stored, err := decodeRow(document{ID: id.Hex(), Collection: collection, Body: body})
	if err != nil {
		return primitive.NilObjectID, err
	}
	stored.row.UniqueKey = s.uniqueKey(collection, stored.doc)

	if err := s.db.WithContext(ctx).Create(&stored.row).Error; err != nil {
		if isDuplicateKey(err) {
			return primitive.NilObjectID, fmt.Errorf("%w: %v", ErrDuplicateKey, err)
		}
		return primitive.NilObjectID, err
	}

	return id, nil
}

func (s *GormStore) UpdateOne(ctx context.Context, collection string, filter, update bson.M) (UpdateResult, error) {
	query, err := toDoc(filter)
	if err != nil {
		return UpdateResult{}, err
	}
	changes, err := toDoc(update)
	if err != nil {
		return UpdateResult{}, err
	}

	var result UpdateResult
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		target, err := s.lockFirst(tx, collection, filter, query)
		if err != nil || target == nil {
			return err
		}
		result.MatchedCount = 1

		modified, err := applyUpdate(target.doc, query, changes)
		if err != nil {
			return err
		}
		if !modified {
			return nil
		}

		body, err := bson.Marshal(target.doc)
		if err != nil {
			return fmt.Errorf("failed to encode document: %w", err)
		}

		err = tx.Model(&document{}).
			Where("id = ?", target.row.ID).
			Updates(map[string]any{
				"body":       body,
				"unique_key": s.uniqueKey(collection, target.doc),
				"updated_at": time.Now(),
			}).Error
		if err != nil {
			if isDuplicateKey(err) {
				return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
			}
			return err
		}

		result.ModifiedCount = 1
		return nil
	})
	if err != nil {
		return UpdateResult{}, err
	}

	return result, nil
}

func (s *GormStore) DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error) {
	query, err := toDoc(filter)
	if err != nil {
		return 0, err
	}

	var deleted int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		target, err := s.lockFirst(tx, collection, filter, query)
		if err != nil || target == nil {
			return err
		}

		res := tx.Where("id = ?", target.row.ID).Delete(&document{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

func (s *GormStore) ListCollections(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&document{}).
		Distinct("collection").
		Order("collection").
		Pluck("collection", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// EnsureUniqueIndex registers field as the unique key of collection and indexes the documents
// already stored.
func (s *GormStore) EnsureUniqueIndex(ctx context.Context, collection, field string) error {
	s.mu.Lock()
	s.unique[collection] = field
	s.mu.Unlock()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		docs, err := s.candidates(tx, collection, nil)
		if err != nil {
			return err
		}

		for _, d := range docs {
			err := tx.Model(&document{}).
				Where("id = ?", d.row.ID).
				Update("unique_key", s.uniqueKey(collection, d.doc)).Error
			if err != nil {
				if isDuplicateKey(err) {
					return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
				}
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) Close(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// candidates loads the rows of collection that can satisfy filter, in _id order. A filter on _id,
// or on the collection's unique field, is answered from the index instead of a collection scan.
func (s *GormStore) candidates(tx *gorm.DB, collection string, filter bson.M) ([]loadedDocument, error) {
	query := tx.Where("collection = ?", collection)
	if id, ok := filter["_id"].(primitive.ObjectID); ok {
		query = query.Where("id = ?", id.Hex())
	} else if key, ok := s.pinnedUniqueKey(collection, filter); ok {
		query = query.Where("unique_key = ?", key)
	}

	var rows []document
	if err := query.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load collection %s: %w", collection, err)
	}

	docs := make([]loadedDocument, 0, len(rows))
	for _, row := range rows {
		d, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}

	return docs, nil
}

// lockFirst finds the first document matching query and locks its row for the rest of tx. The
// document is re-read under the lock and dropped if it no longer matches.
func (s *GormStore) lockFirst(tx *gorm.DB, collection string, filter bson.M, query bsonkit.Doc) (*loadedDocument, error) {
	docs, err := s.candidates(tx, collection, filter)
	if err != nil {
		return nil, err
	}

	target, err := firstMatch(docs, query)
	if err != nil || target == nil {
		return nil, err
	}

	// SQLite serializes writers on its own and has no row locks.
	if tx.Dialector.Name() == "sqlite" {
		return target, nil
	}

	var row document
	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", target.row.ID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	locked, err := decodeRow(row)
	if err != nil {
		return nil, err
	}
	ok, err := mongokit.Match(locked.doc, query)
	if err != nil || !ok {
		return nil, err
	}
	return &locked, nil
}

func (s *GormStore) uniqueField(collection string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	field, ok := s.unique[collection]
	return field, ok
}

// pinnedUniqueKey returns the unique key a filter selects by plain string equality.
func (s *GormStore) pinnedUniqueKey(collection string, filter bson.M) (string, bool) {
	field, ok := s.uniqueField(collection)
	if !ok {
		return "", false
	}
	key, ok := filter[field].(string)
	return key, ok
}

func (s *GormStore) uniqueKey(collection string, doc bsonkit.Doc) *string {
	field, ok := s.uniqueField(collection)
	if !ok {
		return nil
	}

	value := bsonkit.Get(doc, field)
	if value == bsonkit.Missing || value == nil {
		return nil
	}

	key := fmt.Sprint(value)
	return &key
}

func decodeRow(row document) (loadedDocument, error) {
	var doc bson.D
	if err := bson.Unmarshal(row.Body, &doc); err != nil {
		return loadedDocument{}, fmt.Errorf("failed to decode document %s: %w", row.ID, err)
	}
	return loadedDocument{row: row, doc: &doc}, nil
}

func filterDocuments(docs []loadedDocument, query bsonkit.Doc) ([]loadedDocument, error) {
	matched := make([]loadedDocument, 0, len(docs))
	for _, d := range docs {
		ok, err := mongokit.Match(d.doc, query)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

func firstMatch(docs []loadedDocument, query bsonkit.Doc) (*loadedDocument, error) {
	for i := range docs {
		ok, err := mongokit.Match(docs[i].doc, query)
		if err != nil {
			return nil, err
		}
		if ok {
			return &docs[i], nil
		}
	}
	return nil, nil
}

// decodeAll decodes the document bodies into out, a pointer to a slice.
func decodeAll(out any, docs []loadedDocument) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("store: out must be a pointer to a slice, got %T", out)
	}

	slice := rv.Elem()
	elemType := slice.Type().Elem()
	result := reflect.MakeSlice(slice.Type(), 0, len(docs))

	for _, d := range docs {
		elem := reflect.New(elemType)
		if err := bson.Unmarshal(d.row.Body, elem.Interface()); err != nil {
			return fmt.Errorf("failed to decode document %s: %w", d.row.ID, err)
		}
		result = reflect.Append(result, elem.Elem())
	}

	slice.Set(result)
	return nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate")
}
