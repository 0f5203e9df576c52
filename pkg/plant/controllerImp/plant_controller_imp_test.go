package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"plantlog/entities"
	psvc "plantlog/pkg/plant/service"
	"plantlog/pkg/stage"
)

// fakeService returns canned data; handler tests only exercise the HTTP
// mapping, not the rules behind it.
type fakeService struct {
	plants []entities.Plant
	err    error
}

func (f *fakeService) Overview(now time.Time) ([]entities.Plant, error) {
	return f.plants, f.err
}

func (f *fakeService) Get(id uint) (*entities.Plant, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.plants {
		if f.plants[i].PlantID == id {
			return &f.plants[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeService) Submit(req psvc.SubmitRequest) (*entities.Plant, error) {
	if f.err != nil {
		return nil, f.err
	}
	p := entities.Plant{PlantID: 7, Common: req.Common, Latin: req.Latin}
	return &p, nil
}

func (f *fakeService) UpdateMeta(id uint, meta stage.Meta) (*entities.Plant, error) {
	return f.Get(id)
}

func (f *fakeService) Locations() ([]string, error) {
	return []string{"greenhouse"}, f.err
}

func doReq(t *testing.T, h echo.HandlerFunc, method, target, body string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	var rd *strings.Reader
	if body != "" {
		rd = strings.NewReader(body)
	} else {
		rd = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	if err := h(c); err != nil {
		t.Fatal(err)
	}
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad response body: %v\n%s", err, rec.Body.String())
	}
	return out
}

func TestListAsOfEcho(t *testing.T) {
	dur := 2
	ctrl := New(&fakeService{plants: []entities.Plant{{
		PlantID: 1, Common: "lupin", Latin: "Lupinus",
		History: []entities.StageEvent{{Kind: "soak", Start: "2024-05-31", DurVal: &dur, DurUnit: "days"}},
	}}})

	rec := doReq(t, ctrl.List, http.MethodGet, "/plants?as_of=2024-06-01", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	if body["as_of"] != "2024-06-01" {
		t.Fatalf("as_of = %v", body["as_of"])
	}
	plants := body["plants"].([]any)
	if len(plants) != 1 {
		t.Fatalf("plants = %v", plants)
	}
	status := plants[0].(map[string]any)["status"].(map[string]any)
	if status["kind"] != "remaining" {
		t.Fatalf("status = %v", status)
	}
}

func TestSubmitValidationErrors(t *testing.T) {
	ctrl := New(&fakeService{err: stage.ValidationErrors{"common name required", "duration must be > 0"}})

	rec := doReq(t, ctrl.Submit, http.MethodPost, "/plants",
		`{"stage": "soak", "date": "2024-03-01"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	msgs := body["errors"].([]any)
	if len(msgs) != 2 || msgs[0] != "common name required" {
		t.Fatalf("errors = %v", msgs)
	}
}

func TestSubmitCreated(t *testing.T) {
	ctrl := New(&fakeService{})
	rec := doReq(t, ctrl.Submit, http.MethodPost, "/plants",
		`{"common": "lupin", "latin": "Lupinus", "stage": "sprout", "date": "2024-04-10"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	if body["plant_id"] != float64(7) || body["common"] != "lupin" {
		t.Fatalf("body = %v", body)
	}
}

func TestSubmitBadJSON(t *testing.T) {
	ctrl := New(&fakeService{})
	rec := doReq(t, ctrl.Submit, http.MethodPost, "/plants", `{"common":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGetNotFound(t *testing.T) {
	ctrl := New(&fakeService{})
	rec := doReq(t, ctrl.Get, http.MethodGet, "/plants/99", "", "id", "99")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGetBadID(t *testing.T) {
	ctrl := New(&fakeService{})
	rec := doReq(t, ctrl.Get, http.MethodGet, "/plants/abc", "", "id", "abc")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestLocationsHandler(t *testing.T) {
	ctrl := New(&fakeService{})
	rec := doReq(t, ctrl.Locations, http.MethodGet, "/locations", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	locs := body["locations"].([]any)
	if len(locs) != 1 || locs[0] != "greenhouse" {
		t.Fatalf("locations = %v", locs)
	}
}
