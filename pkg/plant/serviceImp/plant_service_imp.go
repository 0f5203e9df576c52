package serviceImp

import (
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"plantlog/entities"
	"plantlog/pkg/plant/repository"
	svc "plantlog/pkg/plant/service"
	"plantlog/pkg/stage"
)

type plantSvc struct{ repo repository.PlantRepository }

func New(r repository.PlantRepository) svc.PlantService { return &plantSvc{repo: r} }

func (s *plantSvc) Overview(now time.Time) ([]entities.Plant, error) {
	plants, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	return stage.SortForDisplay(plants, now), nil
}

func (s *plantSvc) Get(id uint) (*entities.Plant, error) {
	return s.repo.FindByID(id)
}

// Submit validates the whole request up front; any failure means no load and
// no write. On success the new or extended plant is written back with the
// rest of the collection in one replace.
func (s *plantSvc) Submit(req svc.SubmitRequest) (*entities.Plant, error) {
	meta, errs := checkMeta(req.Common, req.Latin, req.Location, req.Notes)
	ev, evErrs := stage.BuildEvent(req.Event)
	errs = append(errs, evErrs...)
	if len(errs) > 0 {
		return nil, errs
	}

	plants, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	idx := -1
	if req.Idx != nil {
		for i := range plants {
			if plants[i].PlantID == *req.Idx {
				idx = i
				break
			}
		}
	}

	if idx >= 0 {
		plants[idx] = stage.AppendStage(plants[idx], ev, meta)
	} else {
		// absent or unknown idx means create, never an error
		plants = append(plants, stage.NewPlant(meta, ev))
		idx = len(plants) - 1
	}

	// Replace fills in store-assigned IDs for new plants.
	if err := s.repo.Replace(plants); err != nil {
		return nil, err
	}
	return &plants[idx], nil
}

// UpdateMeta edits the metadata riding next to the current stage; history is
// untouched.
func (s *plantSvc) UpdateMeta(id uint, meta stage.Meta) (*entities.Plant, error) {
	checked, errs := checkMeta(meta.Common, meta.Latin, meta.Location, meta.Notes)
	if len(errs) > 0 {
		return nil, errs
	}
	plants, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range plants {
		if plants[i].PlantID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, gorm.ErrRecordNotFound
	}
	plants[idx].Common = checked.Common
	plants[idx].Latin = checked.Latin
	plants[idx].Location = checked.Location
	plants[idx].Notes = checked.Notes
	if err := s.repo.Replace(plants); err != nil {
		return nil, err
	}
	return &plants[idx], nil
}

func (s *plantSvc) Locations() ([]string, error) {
	plants, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var out []string
	for _, p := range plants {
		if p.Location != "" && !seen[p.Location] {
			seen[p.Location] = true
			out = append(out, p.Location)
		}
	}
	sort.Strings(out)
	return out, nil
}

func checkMeta(common, latin, location, notes string) (stage.Meta, stage.ValidationErrors) {
	var errs stage.ValidationErrors
	meta := stage.Meta{
		Common:   strings.TrimSpace(common),
		Latin:    strings.TrimSpace(latin),
		Location: strings.TrimSpace(location),
		Notes:    strings.TrimSpace(notes),
	}
	if meta.Common == "" {
		errs = append(errs, "common name required")
	}
	if meta.Latin == "" {
		errs = append(errs, "latin name required")
	}
	return meta, errs
}
