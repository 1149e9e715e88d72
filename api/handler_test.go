package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap/zaptest"

	"cpu-scheduler-simulator/config"
	"cpu-scheduler-simulator/internal/cache"
	"cpu-scheduler-simulator/internal/responses"
)

func newTestApp(t *testing.T, cfg *config.SchedulerConfig) *fiber.App {
	t.Helper()
	if cfg == nil {
		cfg = &config.SchedulerConfig{AllowedOrigins: "*", MaxProcesses: 100, MaxTotalBurst: 10000}
	}
	resultCache, err := cache.NewResultCache(100)
	if err != nil {
		t.Fatalf("create cache: %v", err)
	}
	t.Cleanup(resultCache.Close)

	logger := zaptest.NewLogger(t)
	handler := NewSchedulerHandlerImpl(cfg, resultCache, logger)
	return NewApp(cfg, handler, logger)
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	return v
}

func TestScheduleFirstComeFirstServe(t *testing.T) {
	app := newTestApp(t, nil)
	status, body := doRequest(t, app, http.MethodPost, "/schedule",
		`{"algorithm":"FCFS","processes":[{"id":"A","arrivalTime":0,"burstTime":5},{"id":"B","arrivalTime":1,"burstTime":3}]}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body = %s", status, body)
	}

	response := decode[responses.ScheduleResponse](t, body)
	if len(response.Result) != 2 {
		t.Fatalf("expected 2 results, got %+v", response.Result)
	}
	b := response.Result[1]
	if b.ID != "B" || b.Start != 5 || b.End != 8 || b.WaitingTime != 4 || b.TurnaroundTime != 7 {
		t.Errorf("unexpected schedule for B: %+v", b)
	}
	if response.AvgWaitingTime != 2 || response.AvgTurnaroundTime != 6 {
		t.Errorf("averages = %v/%v, want 2/6", response.AvgWaitingTime, response.AvgTurnaroundTime)
	}
}

func TestScheduleResponseUsesCamelCaseKeys(t *testing.T) {
	app := newTestApp(t, nil)
	_, body := doRequest(t, app, http.MethodPost, "/api/v1/schedule",
		`{"algorithm":"SJF-Non-Preemptive","processes":[{"id":"A","arrivalTime":0,"burstTime":2}]}`)
	for _, key := range []string{`"result"`, `"avgWaitingTime"`, `"avgTurnaroundTime"`, `"arrivalTime"`, `"burstTime"`, `"turnaroundTime"`, `"timeline"`} {
		if !bytes.Contains(body, []byte(key)) {
			t.Errorf("response is missing %s: %s", key, body)
		}
	}
}

func TestScheduleUnsupportedAlgorithm(t *testing.T) {
	app := newTestApp(t, nil)
	status, body := doRequest(t, app, http.MethodPost, "/schedule",
		`{"algorithm":"RoundRobin","processes":[{"id":"A","arrivalTime":0,"burstTime":5}]}`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	errResponse := decode[responses.ErrorResponse](t, body)
	if errResponse.Error != "Unsupported algorithm" || errResponse.StatusCode != http.StatusBadRequest {
		t.Errorf("unexpected error response: %+v", errResponse)
	}
	if errResponse.RequestId == "" {
		t.Error("expected a request id on the error response")
	}
}

func TestScheduleRejectsInvalidInput(t *testing.T) {
	cfg := &config.SchedulerConfig{AllowedOrigins: "*", MaxProcesses: 2, MaxTotalBurst: 100}
	app := newTestApp(t, cfg)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"empty list", `{"algorithm":"FCFS","processes":[]}`, "process list is empty"},
		{"malformed json", `{"algorithm":`, "invalid request format"},
		{"duplicate ids", `{"algorithm":"FCFS","processes":[{"id":"A","burstTime":1},{"id":"A","burstTime":2}]}`, "duplicate process id"},
		{"zero burst", `{"algorithm":"SRJF","processes":[{"id":"A","burstTime":0}]}`, "non-positive burst time"},
		{"clock overflow", `{"algorithm":"FCFS","processes":[{"id":"A","arrivalTime":9223372036854775806,"burstTime":5}]}`, "total burst time too large"},
		{"too many", `{"algorithm":"FCFS","processes":[{"id":"A","burstTime":1},{"id":"B","burstTime":1},{"id":"C","burstTime":1}]}`, "too many processes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, app, http.MethodPost, "/schedule", tt.body)
			if status != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (%s)", status, body)
			}
			errResponse := decode[responses.ErrorResponse](t, body)
			if !strings.Contains(errResponse.Error, tt.message) {
				t.Errorf("error %q does not mention %q", errResponse.Error, tt.message)
			}
		})
	}
}

func TestAlgorithmRoutes(t *testing.T) {
	app := newTestApp(t, nil)
	body := `{"processes":[{"id":"A","arrivalTime":0,"burstTime":8},{"id":"B","arrivalTime":1,"burstTime":4}]}`

	tests := []struct {
		path       string
		firstID    string
		aStart     int
		aCompleted int
	}{
		{"/api/v1/fcfs", "A", 0, 8},
		{"/api/v1/sjf", "A", 0, 8},
		{"/api/v1/sjf-preemptive", "B", 0, 12},
		{"/api/v1/srjf", "B", 0, 12},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, data := doRequest(t, app, http.MethodPost, tt.path, body)
			if status != http.StatusOK {
				t.Fatalf("status = %d, body = %s", status, data)
			}
			response := decode[responses.ScheduleResponse](t, data)
			if response.Result[0].ID != tt.firstID {
				t.Errorf("first completed = %s, want %s", response.Result[0].ID, tt.firstID)
			}
			for _, p := range response.Result {
				if p.ID == "A" && (p.Start != tt.aStart || p.End != tt.aCompleted) {
					t.Errorf("A ran %d-%d, want %d-%d", p.Start, p.End, tt.aStart, tt.aCompleted)
				}
			}
		})
	}
}

func TestAllAlgorithms(t *testing.T) {
	app := newTestApp(t, nil)
	status, data := doRequest(t, app, http.MethodPost, "/api/v1/all",
		`{"processes":[{"id":"A","arrivalTime":0,"burstTime":6},{"id":"B","arrivalTime":1,"burstTime":2},{"id":"C","arrivalTime":2,"burstTime":1}]}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body = %s", status, data)
	}
	response := decode[responses.AllAlgorithmsResponse](t, data)
	for _, name := range []string{"FCFS", "SJF-Non-Preemptive", "SJF-Preemptive", "SRJF"} {
		result, ok := response.Results[name]
		if !ok {
			t.Fatalf("missing result for %s", name)
		}
		if len(result.Result) != 3 {
			t.Errorf("%s scheduled %d processes, want 3", name, len(result.Result))
		}
	}
	order := response.Results["SJF-Non-Preemptive"].Result
	if order[1].ID != "C" || order[2].ID != "B" {
		t.Errorf("unexpected SJF order: %+v", order)
	}
}

func TestAllAlgorithmsRejectsEmptyList(t *testing.T) {
	app := newTestApp(t, nil)
	status, _ := doRequest(t, app, http.MethodPost, "/api/v1/all", `{"processes":[]}`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestRepeatedRequestsAreIdentical(t *testing.T) {
	app := newTestApp(t, nil)
	body := `{"algorithm":"SRJF","processes":[{"id":"A","arrivalTime":0,"burstTime":8},{"id":"B","arrivalTime":1,"burstTime":4}]}`
	_, first := doRequest(t, app, http.MethodPost, "/schedule", body)
	_, second := doRequest(t, app, http.MethodPost, "/schedule", body)
	if !bytes.Equal(first, second) {
		t.Fatalf("responses differ:\n%s\n%s", first, second)
	}
}

func TestListAlgorithms(t *testing.T) {
	app := newTestApp(t, nil)
	status, data := doRequest(t, app, http.MethodGet, "/api/v1/algorithms", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	response := decode[responses.AlgorithmsResponse](t, data)
	want := []string{"FCFS", "SJF-Non-Preemptive", "SJF-Preemptive", "SRJF"}
	if strings.Join(response.Algorithms, ",") != strings.Join(want, ",") {
		t.Errorf("algorithms = %v, want %v", response.Algorithms, want)
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, nil)
	status, data := doRequest(t, app, http.MethodGet, "/health", "")
	if status != http.StatusOK || !bytes.Contains(data, []byte(`"ok"`)) {
		t.Fatalf("status = %d, body = %s", status, data)
	}
}

func TestUnknownRouteReturnsErrorResponse(t *testing.T) {
	app := newTestApp(t, nil)
	status, data := doRequest(t, app, http.MethodGet, "/nope", "")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	errResponse := decode[responses.ErrorResponse](t, data)
	if errResponse.StatusCode != http.StatusNotFound {
		t.Errorf("unexpected error response: %+v", errResponse)
	}
}
