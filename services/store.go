package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is implemented by every model so the store and the CRUD
// controllers can read and pin primary keys generically.
type Record interface {
	GetID() uint
	SetID(id uint)
}

// Store wraps the database with the create/list/get/update/delete contract
// shared by every entity. T is the model type, P is *T. Reads eagerly
// preload the relations the entity is served with.
type Store[T any, P interface {
	*T
	Record
}] struct {
	db       *gorm.DB
	preloads []string
}

func NewStore[T any, P interface {
	*T
	Record
}](db *gorm.DB, preloads ...string) *Store[T, P] {
	return &Store[T, P]{db: db, preloads: preloads}
}

func (s *Store[T, P]) query() *gorm.DB {
	q := s.db
	for _, preload := range s.preloads {
		q = q.Preload(preload)
	}
	return q
}

// Create inserts one row. Associations carried in the payload are not
// auto-saved; related rows are managed through their own endpoints.
func (s *Store[T, P]) Create(rec P) error {
	return s.db.Omit(clause.Associations).Create(rec).Error
}

// List returns every row with its relations preloaded, or ErrNoRecords
// when the table is empty.
func (s *Store[T, P]) List() ([]T, error) {
	var recs []T
	if err := s.query().Find(&recs).Error; err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrNoRecords
	}
	return recs, nil
}

// Get returns the row with the given id and its relations preloaded.
func (s *Store[T, P]) Get(id uint) (P, error) {
	rec := P(new(T))
	err := s.query().First(rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		var zero P
		return zero, ErrNotFound
	}
	if err != nil {
		var zero P
		return zero, err
	}
	return rec, nil
}

// Update replaces the mutable fields of the row with the given id. The
// payload's id is pinned to the target so a stray body id can never move
// the write to another row.
func (s *Store[T, P]) Update(id uint, rec P) error {
	rec.SetID(id)
	return s.db.Omit(clause.Associations).Save(rec).Error
}

// Delete removes the row with the given id; dependents go with it via the
// schema's ON DELETE CASCADE constraints.
func (s *Store[T, P]) Delete(id uint) error {
	res := s.db.Delete(P(new(T)), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
