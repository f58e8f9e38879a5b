package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masjidhub_backend/internals/features/messages/dto"
	"masjidhub_backend/internals/mirror"
)

func newTestApp(t *testing.T) (*fiber.App, *mirror.Mirror) {
	t.Helper()
	m := mirror.New(mirror.NewMemorySidestore(), nil)
	t.Cleanup(m.Close)

	ctrl := NewMessageController(m)
	app := fiber.New()
	app.Post("/contact-messages", ctrl.Create)
	app.Get("/messages", ctrl.GetAll)
	app.Get("/messages/:id", ctrl.GetByID)
	app.Delete("/messages/:id", ctrl.Delete)
	return app, m
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.True(t, envelope.Success)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// Skenario kotak masuk: kirim → tampil unread → buka detail → terbaca → hapus.
func TestContactMessageLifecycle(t *testing.T) {
	app, m := newTestApp(t)

	resp := postJSON(t, app, "/contact-messages", dto.ContactMessageRequest{
		Name:    "Hamba Allah",
		Email:   "jamaah@gmail.com",
		Subject: "Jadwal kajian",
		Message: "Assalamualaikum, kapan kajian rutin dimulai?",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.ContactMessageResponse
	decodeData(t, resp, &created)
	assert.False(t, created.IsRead)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)

	// tampil di daftar, masih unread
	req := httptest.NewRequest(http.MethodGet, "/messages", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	var listed []dto.ContactMessageResponse
	decodeData(t, resp, &listed)
	require.Len(t, listed, 1)
	assert.False(t, listed[0].IsRead)

	// membuka detail menandai terbaca
	req = httptest.NewRequest(http.MethodGet, "/messages/"+created.ID, nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	var detail dto.ContactMessageResponse
	decodeData(t, resp, &detail)
	assert.True(t, detail.IsRead)

	listed = nil
	req = httptest.NewRequest(http.MethodGet, "/messages", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	decodeData(t, resp, &listed)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].IsRead)

	// hapus, daftar kosong lagi
	req = httptest.NewRequest(http.MethodDelete, "/messages/"+created.ID, nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, m.Messages())
}

func TestContactMessageIgnoresCallerReadFlag(t *testing.T) {
	app, _ := newTestApp(t)

	// caller mencoba menyelundupkan is_read=true
	resp := postJSON(t, app, "/contact-messages", fiber.Map{
		"name":    "Hamba Allah",
		"email":   "jamaah@gmail.com",
		"subject": "Tes",
		"message": "Isi pesan",
		"is_read": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.ContactMessageResponse
	decodeData(t, resp, &created)
	assert.False(t, created.IsRead)
}

func TestContactMessageValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/contact-messages", dto.ContactMessageRequest{
		Name:    "Hamba Allah",
		Email:   "bukan-email",
		Subject: "Tes",
		Message: "Isi pesan",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestMessageDetailUnknownID(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/messages/"+"6a1d2f30-9a7b-4c51-8f24-0d3c5b1a9e77", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
