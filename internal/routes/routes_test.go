package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-scheduler/internal/config"
	"github.com/BruksfildServices01/agenda-scheduler/internal/infra/repository/memory"
	"github.com/BruksfildServices01/agenda-scheduler/internal/lock"
	"github.com/BruksfildServices01/agenda-scheduler/internal/notification"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := memory.New()
	cfg := &config.Config{
		Env:      "test",
		Timezone: "America/Sao_Paulo",
		WhatsApp: config.WhatsAppConfig{
			Provider:           config.ProviderMeta,
			Simulated:          true,
			CountryCode:        "55",
			WebhookVerifyToken: "verify-me",
			Timeout:            time.Second,
		},
	}

	r := gin.New()
	RegisterRoutes(r, Deps{
		Config:       cfg,
		Logger:       zap.NewNop(),
		Appointments: repo,
		Catalog:      repo,
		AuditStore:   repo,
		Locker:       lock.NewLocalLocker(),
		Sender:       notification.NewSimulated(zap.NewNop()),
		Clock: func() time.Time {
			return time.Date(2024, 6, 10, 17, 0, 0, 0, time.UTC)
		},
	})
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

type idBody struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

type slotsBody struct {
	Data []struct {
		Start string `json:"start"`
	} `json:"data"`
	Total int `json:"total"`
}

func slotStarts(b slotsBody) []string {
	out := make([]string, 0, len(b.Data))
	for _, s := range b.Data {
		out = append(out, s.Start)
	}
	return out
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated request id header")
	}
}

func TestBookingFlow(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/services", map[string]any{"name": "Corte", "duration_min": 30})
	if w.Code != http.StatusCreated {
		t.Fatalf("create service: %d %s", w.Code, w.Body.String())
	}
	svc := decode[idBody](t, w)

	w = do(t, r, http.MethodPost, "/api/professionals", map[string]any{
		"name":        "Ana",
		"shift_start": "09:00",
		"shift_end":   "10:00",
		"service_ids": []uint{svc.ID},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create professional: %d %s", w.Code, w.Body.String())
	}
	pro := decode[idBody](t, w)

	availPath := fmt.Sprintf("/api/availability?service_id=%d&date=2024-06-11", svc.ID)
	w = do(t, r, http.MethodGet, availPath, nil)
	if got := slotStarts(decode[slotsBody](t, w)); len(got) != 2 || got[0] != "09:00" || got[1] != "09:30" {
		t.Fatalf("expected [09:00 09:30], got %v", got)
	}

	booking := map[string]any{
		"client_name":      "Maria",
		"client_phone":     "(11) 98765-4321",
		"service_id":       svc.ID,
		"professional_id":  pro.ID,
		"date":             "2024-06-11",
		"time":             "09:00",
		"reminder_enabled": true,
	}
	w = do(t, r, http.MethodPost, "/api/appointments", booking)
	if w.Code != http.StatusCreated {
		t.Fatalf("book: %d %s", w.Code, w.Body.String())
	}
	ap := decode[idBody](t, w)
	if ap.Status != "agendado" {
		t.Fatalf("expected agendado, got %q", ap.Status)
	}

	w = do(t, r, http.MethodPost, "/api/appointments", booking)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on double booking, got %d", w.Code)
	}
	if code := decode[map[string]any](t, w)["error_code"]; code != "slot_conflict" {
		t.Fatalf("expected slot_conflict, got %v", code)
	}

	w = do(t, r, http.MethodGet, availPath, nil)
	if got := slotStarts(decode[slotsBody](t, w)); len(got) != 1 || got[0] != "09:30" {
		t.Fatalf("expected [09:30] after booking, got %v", got)
	}

	w = do(t, r, http.MethodPost, "/api/reminders/run", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("run reminders: %d %s", w.Code, w.Body.String())
	}
	if res := decode[map[string]int](t, w); res["sent"] != 1 || res["failed"] != 0 {
		t.Fatalf("expected one reminder sent, got %v", res)
	}

	payload := `{"entry":[{"changes":[{"value":{"messages":[{"from":"5511987654321","type":"text","text":{"body":"2"}}]}}]}]}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("webhook: %d", rec.Code)
	}

	w = do(t, r, http.MethodGet, "/api/appointments?date=2024-06-11", nil)
	list := decode[struct {
		Data []idBody `json:"data"`
	}](t, w)
	if len(list.Data) != 1 || list.Data[0].Status != "cancelado" {
		t.Fatalf("expected the reply to cancel the appointment, got %+v", list.Data)
	}
}

func TestBooking_IneligibleProfessional(t *testing.T) {
	r := newTestRouter(t)

	svc := decode[idBody](t, do(t, r, http.MethodPost, "/api/services", map[string]any{"name": "Escova", "duration_min": 45}))
	pro := decode[idBody](t, do(t, r, http.MethodPost, "/api/professionals", map[string]any{
		"name": "Bia", "shift_start": "09:00", "shift_end": "18:00",
	}))

	w := do(t, r, http.MethodPost, "/api/appointments", map[string]any{
		"client_name":     "Joana",
		"service_id":      svc.ID,
		"professional_id": pro.ID,
		"date":            "2024-06-11",
		"time":            "10:00",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d %s", w.Code, w.Body.String())
	}
}

func TestAgendaGrid(t *testing.T) {
	r := newTestRouter(t)

	pro := decode[idBody](t, do(t, r, http.MethodPost, "/api/professionals", map[string]any{
		"name": "Bia", "shift_start": "08:00", "shift_end": "18:00",
	}))

	w := do(t, r, http.MethodPost, "/api/agenda", map[string]any{
		"professional_id": pro.ID, "date": "2024-06-11", "time": "08:30", "client_name": "Carla",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("save cell: %d %s", w.Code, w.Body.String())
	}
	if action := decode[map[string]any](t, w)["action"]; action != "created" {
		t.Fatalf("expected created, got %v", action)
	}

	w = do(t, r, http.MethodGet, "/api/agenda?date=2024-06-11", nil)
	grid := decode[struct {
		Date    string `json:"date"`
		Columns []struct {
			Name string `json:"name"`
		} `json:"columns"`
		Rows []struct {
			Time  string `json:"time"`
			Cells []struct {
				ClientName string `json:"client_name"`
			} `json:"cells"`
		} `json:"rows"`
	}](t, w)

	if grid.Date != "2024-06-11" || len(grid.Columns) != 5 {
		t.Fatalf("unexpected grid header: %+v", grid)
	}
	if grid.Columns[0].Name != "Bia" || grid.Columns[4].Name != "(sem profissional)" {
		t.Fatalf("expected Bia then placeholder columns, got %+v", grid.Columns)
	}
	if grid.Rows[1].Time != "08:30" || grid.Rows[1].Cells[0].ClientName != "Carla" {
		t.Fatalf("expected Carla at 08:30, got %+v", grid.Rows[1])
	}
}

func TestWebhookVerify(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/webhooks/whatsapp?hub.mode=subscribe&hub.verify_token=verify-me&hub.challenge=42", nil)
	if w.Code != http.StatusOK || w.Body.String() != "42" {
		t.Fatalf("expected challenge echo, got %d %q", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/webhooks/whatsapp?hub.mode=subscribe&hub.verify_token=nope&hub.challenge=42", nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}
