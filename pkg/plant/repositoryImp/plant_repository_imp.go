package repositoryImp

import (
	"fmt"

	"gorm.io/gorm"

	"plantlog/entities"
	"plantlog/pkg/plant/repository"
)

type plantRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantRepository { return &plantRepo{db} }

func (r *plantRepo) Load() ([]entities.Plant, error) {
	var out []entities.Plant
	err := r.db.
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("plant_id ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("load plants: %w", err)
	}
	return out, nil
}

func (r *plantRepo) FindByID(id uint) (*entities.Plant, error) {
	var p entities.Plant
	err := r.db.
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&p, "plant_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Replace is the full-collection write: everything out, everything back in,
// in one transaction. Plants keep their IDs (new ones get fresh ones, written
// back into the slice); event rows are reinserted so their IDs are not stable
// across writes.
func (r *plantRepo) Replace(plants []entities.Plant) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.StageEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&entities.Plant{}).Error; err != nil {
			return err
		}
		for i := range plants {
			p := plants[i]
			hist := p.History
			p.History = nil
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			plants[i].PlantID = p.PlantID
			for j := range hist {
				ev := hist[j]
				ev.EventID = 0
				ev.PlantID = p.PlantID
				if err := tx.Create(&ev).Error; err != nil {
					return err
				}
				plants[i].History[j].PlantID = p.PlantID
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace plants: %w", err)
	}
	return nil
}
