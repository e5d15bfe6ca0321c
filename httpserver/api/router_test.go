package api

import (
	"encoding/json"
	"encoding/xml"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/n0rdy/mockdata/generator"
	"github.com/n0rdy/mockdata/httpserver/models"
	"github.com/n0rdy/mockdata/httpserver/utils"
	"github.com/n0rdy/mockdata/refdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestRouter(t *testing.T) (*MockdataRouter, http.Handler, chan struct{}) {
	t.Helper()

	ds, err := refdata.DefaultDataset()
	require.NoError(t, err)

	rnd := generator.NewRandom(7)
	store := refdata.NewMemoryStore(ds, refdata.WithPicker(rnd))
	gen := generator.New(store,
		generator.WithRandom(rnd),
		generator.WithClock(func() time.Time { return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC) }),
	)

	openApiContent, err := os.ReadFile("../../docs/openapi.yaml")
	require.NoError(t, err)

	shutdownCh := make(chan struct{}, 1)
	info := models.InfoResponse{Source: "embedded", Counts: ds.Counts()}
	mr, err := NewMockdataRouter(gen, info, openApiContent, shutdownCh)
	require.NoError(t, err)
	return mr, mr.NewRouter(), shutdownCh
}

func doGet(handler http.Handler, target string, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeJson(t *testing.T, rec *httptest.ResponseRecorder) interface{} {
	t.Helper()

	var body interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestNewMockdataRouter_InvalidOpenApiDoc(t *testing.T) {
	_, err := NewMockdataRouter(nil, models.InfoResponse{}, []byte("openapi: [broken"), make(chan struct{}))
	assert.Error(t, err)
}

func TestRouter_EndpointsMatchSchemas(t *testing.T) {
	mr, handler, _ := newTestRouter(t)

	tests := []struct {
		path   string
		schema string
	}{
		{path: "/api/v1/mockdata/person", schema: "Person"},
		{path: "/api/v1/mockdata/person?state=ar", schema: "Person"},
		{path: "/api/v1/mockdata/name?gender=F", schema: "FullName"},
		{path: "/api/v1/mockdata/address?zip=72034", schema: "Address"},
		{path: "/api/v1/mockdata/state?state=TX", schema: "State"},
		{path: "/api/v1/mockdata/phone?state=NY", schema: "Value"},
		{path: "/api/v1/mockdata/phone?toll_free=true", schema: "Value"},
		{path: "/api/v1/mockdata/ssn?state=CA", schema: "Value"},
		{path: "/api/v1/mockdata/internet", schema: "Internet"},
		{path: "/api/v1/mockdata/credit-card", schema: "CreditCard"},
		{path: "/api/v1/mockdata/credit-card?weighted=false", schema: "CreditCard"},
		{path: "/api/v1/mockdata/bank-account", schema: "BankAccount"},
		{path: "/api/v1/mockdata/driver-license?state=OK", schema: "DriverLicense"},
		{path: "/api/v1/mockdata/info", schema: "Info"},
		{path: "/healthcheck", schema: "Health"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := doGet(handler, tt.path, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, utils.JsonMediaType, rec.Header().Get("Content-Type"))

			schemaRef := mr.openApiDoc.Components.Schemas[tt.schema]
			require.NotNil(t, schemaRef)
			assert.NoError(t, schemaRef.Value.VisitJSON(decodeJson(t, rec)))
		})
	}
}

func TestRouter_AddressHonorsZip(t *testing.T) {
	_, handler, _ := newTestRouter(t)

	rec := doGet(handler, "/api/v1/mockdata/address?zip=72034", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var address generator.Address
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &address))
	assert.Equal(t, "72034", address.Zip)
	assert.Equal(t, "Conway", address.City)
	assert.Equal(t, "AR", address.State.Code)
}

func TestRouter_People(t *testing.T) {
	_, handler, _ := newTestRouter(t)

	rec := doGet(handler, "/api/v1/mockdata/people?count=3&state=AR", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var people []generator.Person
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &people))
	require.Len(t, people, 3)
	for _, person := range people {
		assert.Equal(t, "AR", person.Address.State.Code)
		assert.Equal(t, person.Address.Zip, person.Address2.Zip)
	}

	rec = doGet(handler, "/api/v1/mockdata/people", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &people))
	assert.Len(t, people, utils.DefaultCount)
}

func TestRouter_InvalidQueryParams(t *testing.T) {
	_, handler, _ := newTestRouter(t)

	tests := []string{
		"/api/v1/mockdata/person?state=Arkansas",
		"/api/v1/mockdata/address?zip=7203",
		"/api/v1/mockdata/address?zip=abcde",
		"/api/v1/mockdata/name?gender=X",
		"/api/v1/mockdata/people?count=0",
		"/api/v1/mockdata/people?count=101",
		"/api/v1/mockdata/people?count=ten",
		"/api/v1/mockdata/phone?toll_free=maybe",
		"/api/v1/mockdata/credit-card?weighted=nope",
	}

	for _, target := range tests {
		t.Run(target, func(t *testing.T) {
			rec := doGet(handler, target, "")
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var errResp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, utils.ErrorCodeInvalidQueryParam, errResp.Code)
		})
	}
}

func TestRouter_UnknownReferenceData(t *testing.T) {
	_, handler, _ := newTestRouter(t)

	for _, target := range []string{
		"/api/v1/mockdata/address?zip=00000",
		"/api/v1/mockdata/state?state=ZZ",
	} {
		t.Run(target, func(t *testing.T) {
			rec := doGet(handler, target, "")
			require.Equal(t, http.StatusNotFound, rec.Code)

			var errResp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, utils.ErrorCodeNotFoundReferenceData, errResp.Code)
		})
	}
}

func TestRouter_ContentNegotiation(t *testing.T) {
	_, handler, _ := newTestRouter(t)

	t.Run("yaml", func(t *testing.T) {
		rec := doGet(handler, "/api/v1/mockdata/state?state=AR", "application/x-yaml")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, utils.YamlMediaType, rec.Header().Get("Content-Type"))

		var state generator.State
		require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &state))
		assert.Equal(t, generator.State{Code: "AR", Name: "Arkansas"}, state)
	})

	t.Run("xml struct", func(t *testing.T) {
		rec := doGet(handler, "/api/v1/mockdata/state?state=AR", "text/html;q=0.9, application/xml")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, utils.XmlMediaType, rec.Header().Get("Content-Type"))

		var state struct {
			XMLName xml.Name `xml:"state"`
			generator.State
		}
		require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &state))
		assert.Equal(t, "AR", state.Code)
		assert.Equal(t, "Arkansas", state.Name)
	})

	t.Run("xml value", func(t *testing.T) {
		rec := doGet(handler, "/api/v1/mockdata/ssn?state=AR", "application/xml")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			XMLName xml.Name `xml:"response"`
			Value   string   `xml:"value"`
		}
		require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Regexp(t, `^429[0-9]{6}$`, resp.Value)
	})

	t.Run("xml list", func(t *testing.T) {
		rec := doGet(handler, "/api/v1/mockdata/people?count=2", "application/xml")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			XMLName xml.Name           `xml:"people"`
			People  []generator.Person `xml:"person"`
		}
		require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.People, 2)
	})

	t.Run("wildcard", func(t *testing.T) {
		rec := doGet(handler, "/healthcheck", "*/*")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, utils.JsonMediaType, rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":"OK"}`, rec.Body.String())
	})

	t.Run("not acceptable", func(t *testing.T) {
		rec := doGet(handler, "/api/v1/mockdata/bank-account", "text/html")
		require.Equal(t, http.StatusNotAcceptable, rec.Code)

		var errResp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, utils.ErrorCodeNotAcceptable, errResp.Code)
	})
}

func TestRouter_OpenApiDocument(t *testing.T) {
	mr, handler, _ := newTestRouter(t)

	rec := doGet(handler, "/api/v1/mockdata/openapi.yaml", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, utils.YamlMediaType, rec.Header().Get("Content-Type"))
	assert.Equal(t, mr.openApiContent, rec.Body.Bytes())
}

func TestRouter_RequestId(t *testing.T) {
	_, handler, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(utils.RequestIdHeader, "req-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "req-42", rec.Header().Get(utils.RequestIdHeader))

	rec = doGet(handler, "/healthcheck", "")
	assert.NotEmpty(t, rec.Header().Get(utils.RequestIdHeader))
}

func TestRouter_Shutdown(t *testing.T) {
	_, handler, shutdownCh := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/mockdata/admin/shutdown", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	select {
	case <-shutdownCh:
	default:
		t.Fatal("shutdown was not requested")
	}
}
