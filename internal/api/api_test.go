package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/protocols-go/internal/api"
	"github.com/mcoot/protocols-go/internal/api/apierr"
	"github.com/mcoot/protocols-go/internal/api/response"
	"github.com/mcoot/protocols-go/internal/factory"
	"github.com/mcoot/protocols-go/internal/testutil"
)

// testServer wraps the API router with mocked dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()

	router := api.NewRouter(api.RouterConfig{
		Logger:       testutil.NopLogger(),
		DiceService:  app.DiceService,
		FleetService: app.FleetService,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func (ts *testServer) createStarship(t *testing.T, id, name, prefix string) response.Starship {
	t.Helper()
	ts.app.MockRandom.QueueString(id)
	rr := ts.request(http.MethodPost, "/api/v1/starships", map[string]string{"name": name, "prefix": prefix})
	require.Equal(t, http.StatusCreated, rr.Code)
	return decode[response.Starship](t, rr)
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decode[response.Health](t, rr).Status)
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeNotFound, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestGetPerson(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/people/Johnny%20Hicks", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Johnny Hicks", decode[response.Person](t, rr).FullName)
}

// Starship tests

func TestCreateStarship(t *testing.T) {
	ts := newTestServer(t)

	ship := ts.createStarship(t, "ENT", "Enterprise", "USS")

	assert.Equal(t, "ss_ENT", ship.ID)
	assert.Equal(t, "Enterprise", ship.Name)
	require.NotNil(t, ship.Prefix)
	assert.Equal(t, "USS", *ship.Prefix)
	assert.Equal(t, "USS Enterprise", ship.FullName)
}

func TestCreateStarshipWithoutPrefix(t *testing.T) {
	ts := newTestServer(t)

	ship := ts.createStarship(t, "SER", "Serenity", "")

	assert.Nil(t, ship.Prefix)
	assert.Equal(t, "Serenity", ship.FullName)
}

func TestCreateStarshipValidation(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/starships", map[string]string{"prefix": "USS"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeNameRequired, decode[apierr.ErrorResponse](t, rr).Error.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/starships", bytes.NewBufferString("{"))
	bad := httptest.NewRecorder()
	ts.handler.ServeHTTP(bad, req)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decode[apierr.ErrorResponse](t, bad).Error.Code)
}

func TestGetStarship(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createStarship(t, "ENT", "Enterprise", "USS")

	rr := ts.request(http.MethodGet, "/api/v1/starships/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "USS Enterprise", decode[response.Starship](t, rr).FullName)

	rr = ts.request(http.MethodGet, "/api/v1/starships/ss_missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeStarshipNotFound, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestListStarships(t *testing.T) {
	ts := newTestServer(t)
	ts.createStarship(t, "A", "Enterprise", "USS")
	ts.createStarship(t, "B", "Serenity", "")

	rr := ts.request(http.MethodGet, "/api/v1/starships", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	list := decode[response.StarshipList](t, rr)
	require.Len(t, list.Starships, 2)
	assert.Equal(t, "USS Enterprise", list.Starships[0].FullName)
	assert.Equal(t, "Serenity", list.Starships[1].FullName)
}

func TestCompareStarships(t *testing.T) {
	ts := newTestServer(t)
	enterprise := ts.createStarship(t, "A", "Enterprise", "USS")
	serenity := ts.createStarship(t, "B", "Serenity", "")
	lookalike := ts.createStarship(t, "C", "USS Enterprise", "")

	rr := ts.request(http.MethodPost, "/api/v1/starships/compare", map[string]string{
		"left_id": enterprise.ID, "right_id": serenity.ID,
	})
	require.Equal(t, http.StatusOK, rr.Code)
	cmp := decode[response.Comparison](t, rr)
	assert.False(t, cmp.Equal)
	assert.Equal(t, "USS Enterprise", cmp.LeftFullName)
	assert.Equal(t, "Serenity", cmp.RightFullName)

	rr = ts.request(http.MethodPost, "/api/v1/starships/compare", map[string]string{
		"left_id": enterprise.ID, "right_id": lookalike.ID,
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decode[response.Comparison](t, rr).Equal)
}

func TestCompareStarshipsValidation(t *testing.T) {
	ts := newTestServer(t)
	ship := ts.createStarship(t, "A", "Enterprise", "USS")

	rr := ts.request(http.MethodPost, "/api/v1/starships/compare", map[string]string{"left_id": ship.ID})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/starships/compare", map[string]string{
		"left_id": ship.ID, "right_id": "ss_missing",
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// Dice tests

func TestRollDie(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueDraws(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	ts.app.MockRandom.QueueString("0", "1", "2", "3", "4", "5", "6", "7", "8", "9")

	rr := ts.request(http.MethodPost, "/api/v1/dice/roll", map[string]int{"sides": 6, "count": 10})
	require.Equal(t, http.StatusOK, rr.Code)

	result := decode[response.RollResult](t, rr)
	assert.Equal(t, 6, result.Sides)

	var values []int
	for _, r := range result.Rolls {
		values = append(values, r.Value)
	}
	assert.Equal(t, []int{2, 3, 4, 5, 6, 1, 2, 3, 4, 5}, values)
}

func TestRollDieDefaultsToOneRoll(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueDraws(9)

	rr := ts.request(http.MethodPost, "/api/v1/dice/roll", map[string]int{"sides": 1})
	require.Equal(t, http.StatusOK, rr.Code)

	result := decode[response.RollResult](t, rr)
	require.Len(t, result.Rolls, 1)
	assert.Equal(t, 1, result.Rolls[0].Value)
}

func TestRollDieInvalidSides(t *testing.T) {
	ts := newTestServer(t)

	for _, sides := range []int{0, -4} {
		rr := ts.request(http.MethodPost, "/api/v1/dice/roll", map[string]int{"sides": sides})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, apierr.CodeInvalidSides, decode[apierr.ErrorResponse](t, rr).Error.Code)
	}
}

func TestRollDieInvalidCount(t *testing.T) {
	for _, count := range []int{0, -1, 101} {
		t.Run(strconv.Itoa(count), func(t *testing.T) {
			ts := newTestServer(t)

			rr := ts.request(http.MethodPost, "/api/v1/dice/roll", map[string]int{"sides": 6, "count": count})
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, apierr.CodeInvalidRequest, decode[apierr.ErrorResponse](t, rr).Error.Code)

			history, err := ts.app.DiceService.History(context.Background(), 0)
			require.NoError(t, err)
			assert.Empty(t, history)
		})
	}
}

func TestRollHistory(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueDraws(2, 3, 4)
	ts.app.MockRandom.QueueString("a", "b", "c")

	rr := ts.request(http.MethodPost, "/api/v1/dice/roll", map[string]int{"sides": 10, "count": 3})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/dice/rolls?limit=2", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	history := decode[response.RollList](t, rr)
	require.Len(t, history.Rolls, 2)
	assert.Equal(t, "r_c", history.Rolls[0].ID)
	assert.Equal(t, 5, history.Rolls[0].Value)
	assert.Equal(t, "r_b", history.Rolls[1].ID)

	rr = ts.request(http.MethodGet, "/api/v1/dice/rolls?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRecoveryReturnsJSON(t *testing.T) {
	// A router without services panics on the first starship call
	router := api.NewRouter(api.RouterConfig{Logger: testutil.NopLogger()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/starships", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, apierr.CodeInternalError, decode[apierr.ErrorResponse](t, rr).Error.Code)
}
