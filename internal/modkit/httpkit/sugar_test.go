package httpkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "skypulse/internal/platform/errors"
)

type echoIn struct {
	Actor string `json:"actor"`
}

func TestPostJSON_DecodesBodyAndWrapsEnvelope(t *testing.T) {
	root := &fakeRouter{}

	PostJSON(root, "/echo", func(r *http.Request, in echoIn) (any, error) {
		return map[string]string{"actor": in.Actor}, nil
	})

	if len(root.verbCalls) != 1 || root.verbCalls[0].verb != "POST" {
		t.Fatalf("expected a single POST registration, got %+v", root.verbCalls)
	}

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"actor":"did:plc:abc"}`))
	rr := httptest.NewRecorder()
	root.verbCalls[0].ph(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var env Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("envelope decode: %v", err)
	}
	data, ok := env.Data.(map[string]any)
	if !ok || data["actor"] != "did:plc:abc" {
		t.Fatalf("unexpected envelope data: %+v", env.Data)
	}
}

func TestPostJSON_HandlerErrorMapsStatus(t *testing.T) {
	root := &fakeRouter{}

	PostJSON(root, "/boom", func(r *http.Request, in echoIn) (any, error) {
		return nil, perr.NotFoundf("actor %q not found", in.Actor)
	})

	req := httptest.NewRequest(http.MethodPost, "/boom", strings.NewReader(`{"actor":"ghost"}`))
	rr := httptest.NewRecorder()
	root.verbCalls[0].ph(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestGet_NoBodyHandler(t *testing.T) {
	root := &fakeRouter{}

	Get(root, "/status", func(r *http.Request) (any, error) {
		return map[string]string{"status": "ok"}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rr := httptest.NewRecorder()
	root.verbCalls[0].ph(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"OK"`) && !strings.Contains(rr.Body.String(), `"ok"`) {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestGet_HandlerCanReturnResponseDirectly(t *testing.T) {
	root := &fakeRouter{}

	Get(root, "/cached", func(r *http.Request) (any, error) {
		return StaleOK(map[string]int{"rank": 1}), nil
	})

	req := httptest.NewRequest(http.MethodGet, "/cached", nil)
	rr := httptest.NewRecorder()
	root.verbCalls[0].ph(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var env Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("envelope decode: %v", err)
	}
	if !env.Stale {
		t.Fatalf("expected stale flag on envelope, body=%s", rr.Body.String())
	}
}
