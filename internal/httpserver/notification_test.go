package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notification-enricher/internal/enrich"
	"notification-enricher/internal/model"
	pkgLog "notification-enricher/pkg/log"
	"notification-enricher/pkg/response"
)

type stubEnrichUC struct {
	rec   model.NotificationRecord
	recs  []model.NotificationRecord
	types map[string]model.TypeDescriptor
	err   error
}

func (s *stubEnrichUC) Enrich(_ context.Context, _ model.RawSubscriptionRecord) (model.NotificationRecord, error) {
	return s.rec, s.err
}

func (s *stubEnrichUC) EnrichBatch(_ context.Context, _ []model.RawSubscriptionRecord) ([]model.NotificationRecord, error) {
	return s.recs, s.err
}

func (s *stubEnrichUC) Types(_ context.Context) map[string]model.TypeDescriptor {
	return s.types
}

func newTestServer(t *testing.T, uc enrich.UseCase) *HTTPServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return &HTTPServer{
		logger:   pkgLog.Init(pkgLog.ZapConfig{Level: pkgLog.LevelError, Mode: pkgLog.ModeDevelopment, Encoding: pkgLog.EncodingConsole}),
		enrichUC: uc,
	}
}

func doRequest(srv *HTTPServer, handler gin.HandlerFunc, method, target string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestEnrichOne(t *testing.T) {
	uc := &stubEnrichUC{rec: model.NotificationRecord{ID: "sub-1", Caption: "Critical incidents"}}
	srv := newTestServer(t, uc)

	body, _ := json.Marshal(model.RawSubscriptionRecord{ID: "sub-1", EntityCode: "incidents/alerts"})
	w := doRequest(srv, srv.enrichOne, http.MethodPost, "/api/v1/notifications/enrich", body)

	require.Equal(t, http.StatusOK, w.Code)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.ErrorCode)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "sub-1", data["id"])
}

func TestEnrichOne_BadBody(t *testing.T) {
	srv := newTestServer(t, &stubEnrichUC{})

	w := doRequest(srv, srv.enrichOne, http.MethodPost, "/api/v1/notifications/enrich", []byte("{"))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, response.ValidationErrorCode, resp.ErrorCode)
	assert.Contains(t, resp.Message, "body")
}

func TestEnrichOne_MissingID(t *testing.T) {
	srv := newTestServer(t, &stubEnrichUC{err: enrich.ErrInvalidRawRecord})

	body, _ := json.Marshal(model.RawSubscriptionRecord{EntityCode: "incidents/alerts"})
	w := doRequest(srv, srv.enrichOne, http.MethodPost, "/api/v1/notifications/enrich", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEnrichBatch(t *testing.T) {
	uc := &stubEnrichUC{recs: []model.NotificationRecord{{ID: "a"}, {ID: "b"}}}
	srv := newTestServer(t, uc)

	body, _ := json.Marshal(enrichBatchReq{Records: []model.RawSubscriptionRecord{
		{ID: "a", EntityCode: "incidents/alerts"},
		{ID: "b", EntityCode: "health/alerts"},
	}})
	w := doRequest(srv, srv.enrichBatch, http.MethodPost, "/api/v1/notifications/enrich-batch", body)

	require.Equal(t, http.StatusOK, w.Code)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestEnrichBatch_RecordsWithoutID(t *testing.T) {
	srv := newTestServer(t, &stubEnrichUC{})

	body, _ := json.Marshal(enrichBatchReq{Records: []model.RawSubscriptionRecord{
		{ID: "a", EntityCode: "incident"},
		{EntityCode: "health"},
		{EntityCode: "incident"},
	}})
	w := doRequest(srv, srv.enrichBatch, http.MethodPost, "/api/v1/notifications/enrich-batch", body)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, response.ValidationErrorCode, resp.ErrorCode)
	assert.Equal(t, response.ValidationErrorMsg, resp.Message)

	errs, ok := resp.Errors.([]any)
	require.True(t, ok)
	require.Len(t, errs, 2)
	first, ok := errs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "records[1].id", first["field"])
}

func TestEnrichBatch_MissingRecords(t *testing.T) {
	srv := newTestServer(t, &stubEnrichUC{})

	w := doRequest(srv, srv.enrichBatch, http.MethodPost, "/api/v1/notifications/enrich-batch", []byte(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationTypes(t *testing.T) {
	uc := &stubEnrichUC{types: map[string]model.TypeDescriptor{
		"incidents/alerts": {EntityCode: "incidents/alerts", NotificationType: model.TypeIncident, Group: model.GroupAlert},
	}}
	srv := newTestServer(t, uc)

	w := doRequest(srv, srv.notificationTypes, http.MethodGet, "/api/v1/notification-types", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, data, "incidents/alerts")
}
