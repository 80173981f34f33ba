package crud

import (
	"gorm.io/gorm"
)

// Repository is the one data-access shape every flat resource of the
// panel shares. List semantics are whole-table replace: callers refetch
// after each mutation instead of patching in place.
type Repository[T any] struct {
	db *gorm.DB
}

func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

func (r *Repository[T]) FindAll() ([]T, error) {
	var records []T
	if err := r.db.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Repository[T]) FindByID(id uint) (*T, error) {
	var record T
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *Repository[T]) Create(record *T) error {
	return r.db.Create(record).Error
}

func (r *Repository[T]) Save(record *T) error {
	return r.db.Save(record).Error
}

// Delete reports whether a row was actually removed so handlers can 404
// on ids that never existed.
func (r *Repository[T]) Delete(id uint) (bool, error) {
	var record T
	res := r.db.Delete(&record, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
