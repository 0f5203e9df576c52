package repository

import "plantlog/entities"

// PlantRepository is the persistence gateway: the collection is read and
// replaced whole. Replace keeps plant IDs stable; event rows are rewritten.
type PlantRepository interface {
	Load() ([]entities.Plant, error)
	Replace(plants []entities.Plant) error
	FindByID(id uint) (*entities.Plant, error)
}
