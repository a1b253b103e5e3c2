package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/formdrop/formdrop/internal/database"
	"github.com/formdrop/formdrop/internal/record"
	"github.com/formdrop/formdrop/internal/record/repository"
	"github.com/formdrop/formdrop/internal/record/service"
	"github.com/formdrop/formdrop/internal/seed"
	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type failingRepo struct{ err error }

func (f failingRepo) Insert(context.Context, *record.Record) error        { return f.err }
func (f failingRepo) FindAll(context.Context) ([]record.Document, error) { return nil, f.err }

func newRouter(t *testing.T, repo repository.Repository) (*gin.Engine, afero.Fs) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	fs := afero.NewMemMapFs()
	st := seed.NewFileStore(fs, "data.json")
	_, err := st.Ensure(context.Background())
	require.NoError(t, err)

	r := gin.New()
	NewHandler(service.New(repo), st).Register(r)
	return r, fs
}

func postForm(r http.Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

type apiResponse struct {
	Status  string                   `json:"status"`
	Message string                   `json:"message"`
	Count   int                      `json:"count"`
	Data    []map[string]interface{} `json:"data"`
}

func decodeAPI(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var out apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestIndexAndSuccessPages(t *testing.T) {
	r, _ := newRouter(t, repository.NewMemoryRepo())

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `<form method="post" action="/submit">`)
	require.NotContains(t, w.Body.String(), "flash-error")

	w = get(r, "/success")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Submission received")
}

func TestSubmit_ValidRedirectsAndStores(t *testing.T) {
	repo := repository.NewMemoryRepo()
	r, _ := newRouter(t, repo)

	w := postForm(r, url.Values{"name": {"Ann"}, "email": {"a@x.com"}, "age": {"30"}, "city": {"NYC"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/success", w.Header().Get("Location"))

	list, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 30, list[0]["age"])
	require.Equal(t, "NYC", list[0]["city"])
	require.Contains(t, list[0], "created_at")
}

func TestSubmit_StoresFieldsUntrimmed(t *testing.T) {
	repo := repository.NewMemoryRepo()
	r, _ := newRouter(t, repo)

	w := postForm(r, url.Values{"name": {"  Ann  "}, "email": {" a@x.com "}, "city": {" NYC "}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	w = postForm(r, url.Values{"name": {"   "}, "email": {"b@x.com"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	resp := decodeAPI(t, get(r, "/api/users"))
	require.Equal(t, 2, resp.Count)
	require.Equal(t, "  Ann  ", resp.Data[0]["name"])
	require.Equal(t, " a@x.com ", resp.Data[0]["email"])
	require.Equal(t, " NYC ", resp.Data[0]["city"])
	require.Equal(t, "   ", resp.Data[1]["name"])
}

func TestSubmit_MissingFieldReRendersForm(t *testing.T) {
	repo := repository.NewMemoryRepo()
	r, _ := newRouter(t, repo)

	for _, v := range []url.Values{
		{"name": {""}, "email": {"a@x.com"}},
		{"name": {"Ann"}},
		{},
	} {
		w := postForm(r, v)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "flash-error")
		require.Contains(t, w.Body.String(), msgRequired)
	}
	require.Equal(t, 0, repo.Len())
}

func TestSubmit_InvalidAgeReRendersForm(t *testing.T) {
	repo := repository.NewMemoryRepo()
	r, _ := newRouter(t, repo)

	w := postForm(r, url.Values{"name": {"Ann"}, "email": {"a@x.com"}, "age": {"abc"}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), msgInvalidAge)
	require.Equal(t, 0, repo.Len())
}

func TestUnavailableDatabase(t *testing.T) {
	repo := repository.NewMongoRepo(database.Unavailable(errors.New("dial refused")), "flask_app", "user_data")
	r, _ := newRouter(t, repo)

	w := postForm(r, url.Values{"name": {"Ann"}, "email": {"a@x.com"}})
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Contains(t, w.Body.String(), msgUnavailable)

	w = get(r, "/api/users")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeAPI(t, w)
	require.Equal(t, "error", resp.Status)
	require.Equal(t, "Database not connected", resp.Message)
}

func TestDriverErrors(t *testing.T) {
	r, _ := newRouter(t, failingRepo{err: errors.New("write conflict")})

	w := postForm(r, url.Values{"name": {"Ann"}, "email": {"a@x.com"}})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Error submitting data:")

	w = get(r, "/api/users")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeAPI(t, w)
	require.Equal(t, "error", resp.Status)
	require.Contains(t, resp.Message, "write conflict")
}

func TestUsers_NoInternalIdentifier(t *testing.T) {
	repo := repository.NewMemoryRepo()
	r, _ := newRouter(t, repo)

	postForm(r, url.Values{"name": {"Ann"}, "email": {"a@x.com"}, "age": {"30"}})
	postForm(r, url.Values{"name": {"Bo"}, "email": {"b@x.com"}})

	w := get(r, "/api/users")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeAPI(t, w)
	require.Equal(t, "success", resp.Status)
	require.Equal(t, 2, resp.Count)
	for _, rec := range resp.Data {
		require.NotContains(t, rec, "_id")
		require.NotContains(t, rec, "id")
		require.Contains(t, rec, "created_at")
	}
	require.EqualValues(t, 30, resp.Data[0]["age"])
	require.NotContains(t, resp.Data[1], "age")
}

func TestSeeds_FreshStartHasThree(t *testing.T) {
	r, _ := newRouter(t, repository.NewMemoryRepo())

	w := get(r, "/api")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeAPI(t, w)
	require.Equal(t, "success", resp.Status)
	require.Equal(t, 3, resp.Count)
	require.Len(t, resp.Data, 3)
	require.Equal(t, "John Doe", resp.Data[0]["name"])

	// idempotent while the file is unchanged
	w2 := get(r, "/api")
	require.Equal(t, w.Body.String(), w2.Body.String())
}

func TestSeeds_ReadsFileOnEveryRequest(t *testing.T) {
	r, fs := newRouter(t, repository.NewMemoryRepo())

	require.NoError(t, afero.WriteFile(fs, "data.json", []byte(`[{"id":7,"name":"New","email":"n@x.com"}]`), 0o644))
	resp := decodeAPI(t, get(r, "/api"))
	require.Equal(t, 1, resp.Count)
	require.EqualValues(t, 7, resp.Data[0]["id"])

	require.NoError(t, afero.WriteFile(fs, "data.json", []byte(`{broken`), 0o644))
	w := get(r, "/api")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	errResp := decodeAPI(t, w)
	require.Equal(t, "error", errResp.Status)
	require.NotEmpty(t, errResp.Message)
}

func TestSeeds_ServesEntriesAsStored(t *testing.T) {
	r, fs := newRouter(t, repository.NewMemoryRepo())

	doc := `[{"id":1,"name":"A","email":"a@x.com","phone":"555"},{"id":"x1","name":"B","email":"b@x.com"}]`
	require.NoError(t, afero.WriteFile(fs, "data.json", []byte(doc), 0o644))

	w := get(r, "/api")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeAPI(t, w)
	require.Equal(t, 2, resp.Count)
	require.Equal(t, "555", resp.Data[0]["phone"])
	require.Equal(t, "x1", resp.Data[1]["id"])

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.JSONEq(t, doc, string(body.Data))
}
