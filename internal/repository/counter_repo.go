package repository

import (
	"errors"

	"go-ricemill/internal/model"

	"gorm.io/gorm"
)

type CounterRepository interface {
	Next(name string) (int64, error)
}

type counterRepo struct {
	db *gorm.DB
}

func NewCounterRepo(db *gorm.DB) CounterRepository {
	return &counterRepo{db}
}

// Next increments and returns the named sequence under a row lock, so two
// concurrent id assignments can never read the same value.
func (r *counterRepo) Next(name string) (int64, error) {
	var value int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var counter model.Counter
		err := lockForUpdate(tx).
			First(&counter, "name = ?", name).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			counter = model.Counter{Name: name, Value: 1}
			if err := tx.Create(&counter).Error; err != nil {
				return err
			}
			value = counter.Value
			return nil
		}
		if err != nil {
			return err
		}

		counter.Value++
		if err := tx.Save(&counter).Error; err != nil {
			return err
		}
		value = counter.Value
		return nil
	})

	return value, err
}
