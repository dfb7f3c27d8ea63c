package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/samber/do"
	"github.com/stretchr/testify/require"

	"shopbot/app/client/assistant"
	"shopbot/app/client/elevenlabs"
	"shopbot/app/client/whatsapp"
	"shopbot/app/config"
	"shopbot/app/service/callflow"
	"shopbot/app/service/chat"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	di := do.New()
	t.Cleanup(func() {
		_ = di.Shutdown()
	})

	do.ProvideValue(di, &config.Config{
		Server:   config.Server{Addr: ":0"},
		WhatsApp: config.WhatsApp{VerifyToken: "test-verify"},
	})
	do.Provide(di, assistant.NewClient)
	do.Provide(di, elevenlabs.NewClient)
	do.Provide(di, whatsapp.NewClient)
	do.Provide(di, callflow.New)
	do.Provide(di, chat.New)

	srv, err := New(di)
	require.NoError(t, err)

	return srv
}

func postJSON(t *testing.T, srv *Server, path, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)

	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

func TestChatEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/chat", `{"messages":[{"role":"user","content":"Bonjour"}]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Reply string `json:"reply"`
	}
	decodeBody(t, resp, &body)
	require.Contains(t, body.Reply, "Élégance Paris")
}

func TestChatEndpointRejectsBadInput(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/chat", `{"messages":[]}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, srv, "/api/chat", `{"messages":[{"role":"system","content":"x"}]}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, srv, "/api/chat", `{"messages":[{"role":"user","content":""}]}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, srv, "/api/chat", `not json`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTTSEndpointValidation(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/tts", `{"text":""}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	long := strings.Repeat("a", 1001)
	resp = postJSON(t, srv, "/api/tts", `{"text":"`+long+`"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Valid text, but no API key configured.
	resp = postJSON(t, srv, "/api/tts", `{"text":"Bonjour"}`)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, "No API key", body.Error)
}

func TestWhatsAppVerification(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, "/api/whatsapp?hub.mode=subscribe&hub.verify_token=test-verify&hub.challenge=12345", nil)
	require.NoError(t, err)

	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "12345", string(data))

	req, err = http.NewRequest(http.MethodGet, "/api/whatsapp?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345", nil)
	require.NoError(t, err)

	resp, err = srv.App().Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestWhatsAppStatusCallback(t *testing.T) {
	srv := newTestServer(t)

	// Delivery-status callbacks have no messages array; they still get 200.
	resp := postJSON(t, srv, "/api/whatsapp", `{"entry":[{"changes":[{"value":{"statuses":[{"status":"delivered"}]}}]}]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status string `json:"status"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, "ok", body.Status)
}

func TestCallEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/call", `{"text":"","state":""}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Reply string         `json:"reply"`
		State callflow.State `json:"state"`
		Slots callflow.Slots `json:"slots"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, callflow.StateWaitingProblem, body.State)
	require.Contains(t, body.Reply, "Martin Plomberie")

	resp = postJSON(t, srv, "/api/call", `{"text":"j'ai une fuite","state":"waiting_problem"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	decodeBody(t, resp, &body)
	require.Equal(t, callflow.StateWaitingName, body.State)
	require.Equal(t, "une fuite d'eau", body.Slots.Problem)
}

func TestCallEndpointRejectsUnknownState(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/call", `{"text":"hello","state":"teleporting"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
