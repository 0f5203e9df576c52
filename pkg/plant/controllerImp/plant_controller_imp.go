package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"plantlog/entities"
	psvc "plantlog/pkg/plant/service"
	"plantlog/pkg/stage"
)

type PlantCtrl struct{ s psvc.PlantService }

func New(s psvc.PlantService) *PlantCtrl { return &PlantCtrl{s} }

type submitReq struct {
	Idx      *uint  `json:"idx"`
	Common   string `json:"common"`
	Latin    string `json:"latin"`
	Location string `json:"location"`
	Notes    string `json:"notes"`

	Stage     string `json:"stage"`
	Date      string `json:"date"`
	RangeMin  int    `json:"range_min"`
	RangeMinU string `json:"range_min_u"`
	RangeMax  int    `json:"range_max"`
	RangeMaxU string `json:"range_max_u"`
	DurVal    int    `json:"dur_val"`
	DurUnit   string `json:"dur_unit"`
}

type metaReq struct {
	Common   string `json:"common"`
	Latin    string `json:"latin"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// stageView is one classified history entry. WindowMin/WindowMax carry the
// expected end dates (equal for soak/strat); labels are the consumer's job.
type stageView struct {
	entities.StageEvent
	Status    stage.Status `json:"status"`
	WindowMin string       `json:"window_min,omitempty"`
	WindowMax string       `json:"window_max,omitempty"`
}

type plantView struct {
	PlantID  uint         `json:"plant_id"`
	Common   string       `json:"common"`
	Latin    string       `json:"latin"`
	Location string       `json:"location,omitempty"`
	Notes    string       `json:"notes,omitempty"`
	Status   stage.Status `json:"status"`
	History  []stageView  `json:"history"`
}

func (h *PlantCtrl) List(c echo.Context) error {
	now := asOf(c)
	plants, err := h.s.Overview(now)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	out := make([]plantView, 0, len(plants))
	for _, p := range plants {
		out = append(out, toView(p, now))
	}
	return c.JSON(http.StatusOK, echo.Map{"as_of": now.Format("2006-01-02"), "plants": out})
}

func (h *PlantCtrl) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	p, err := h.s.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, toView(*p, asOf(c)))
}

func (h *PlantCtrl) Submit(c echo.Context) error {
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	p, err := h.s.Submit(psvc.SubmitRequest{
		Idx:      req.Idx,
		Common:   req.Common,
		Latin:    req.Latin,
		Location: req.Location,
		Notes:    req.Notes,
		Event: stage.EventInput{
			Stage:     req.Stage,
			Date:      req.Date,
			RangeMin:  req.RangeMin,
			RangeMinU: req.RangeMinU,
			RangeMax:  req.RangeMax,
			RangeMaxU: req.RangeMaxU,
			DurVal:    req.DurVal,
			DurUnit:   req.DurUnit,
		},
	})
	if err != nil {
		var verrs stage.ValidationErrors
		if errors.As(err, &verrs) {
			return c.JSON(http.StatusBadRequest, echo.Map{"errors": verrs})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, toView(*p, asOf(c)))
}

func (h *PlantCtrl) UpdateMeta(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req metaReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	p, err := h.s.UpdateMeta(uint(id), stage.Meta{
		Common:   req.Common,
		Latin:    req.Latin,
		Location: req.Location,
		Notes:    req.Notes,
	})
	if err != nil {
		var verrs stage.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			return c.JSON(http.StatusBadRequest, echo.Map{"errors": verrs})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, toView(*p, asOf(c)))
}

func (h *PlantCtrl) Locations(c echo.Context) error {
	locs, err := h.s.Locations()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if locs == nil {
		locs = []string{}
	}
	return c.JSON(http.StatusOK, echo.Map{"locations": locs})
}

// asOf reads the injected reference date, defaulting to today. Time of day
// never participates in classification.
func asOf(c echo.Context) time.Time {
	if v := c.QueryParam("as_of"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			return t
		}
	}
	return stage.DateOnly(time.Now())
}

func toView(p entities.Plant, now time.Time) plantView {
	v := plantView{
		PlantID:  p.PlantID,
		Common:   p.Common,
		Latin:    p.Latin,
		Location: p.Location,
		Notes:    p.Notes,
		Status:   stage.Status{Kind: stage.StatusCompleted},
		History:  make([]stageView, 0, len(p.History)),
	}
	for i, rec := range p.History {
		sv := stageView{StageEvent: rec, Status: stage.ClassifyRecord(rec, now)}
		if ev, err := stage.FromRecord(rec); err == nil {
			if min, max, ok := stage.Window(ev); ok {
				sv.WindowMin = min.Format("2006-01-02")
				sv.WindowMax = max.Format("2006-01-02")
			}
		}
		if i == 0 {
			v.Status = sv.Status
		}
		v.History = append(v.History, sv)
	}
	return v
}
