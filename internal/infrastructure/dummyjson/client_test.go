package dummyjson_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	config "github.com/avatarctic/admin-dashboard/configs"
	"github.com/avatarctic/admin-dashboard/internal/infrastructure/dummyjson"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *dummyjson.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return dummyjson.NewClient(&config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, logger)
}

func TestUserClient_List(t *testing.T) {
	var gotPath, gotQuery string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"users":[{"id":1,"firstName":"Emily","lastName":"Johnson","email":"emily@x.com"}],"total":208}`))
	}))

	users, total, err := dummyjson.NewUserClient(c).List(context.Background(), 10, 20)
	require.NoError(t, err)
	require.Equal(t, "/users", gotPath)
	require.Equal(t, "limit=10&skip=20", gotQuery)
	require.Equal(t, 208, total)
	require.Len(t, users, 1)
	require.Equal(t, "Emily", users[0].FirstName)
}

func TestUserClient_SearchForwardsQuery(t *testing.T) {
	var gotPath, gotQ string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQ = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(`{"users":[],"total":0}`))
	}))

	_, _, err := dummyjson.NewUserClient(c).Search(context.Background(), "john doe")
	require.NoError(t, err)
	require.Equal(t, "/users/search", gotPath)
	require.Equal(t, "john doe", gotQ)
}

func TestUserClient_GetByID_NotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"User with id '9999' not found"}`, http.StatusNotFound)
	}))

	u, err := dummyjson.NewUserClient(c).GetByID(context.Background(), 9999)
	require.Error(t, err)
	require.Nil(t, u)
	require.True(t, dummyjson.IsNotFound(err))
}

func TestProductClient_ByCategory(t *testing.T) {
	var gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"products":[{"id":7,"title":"MacBook","category":"laptops"}],"total":12}`))
	}))

	products, total, err := dummyjson.NewProductClient(c).ByCategory(context.Background(), "laptops", 10, 0)
	require.NoError(t, err)
	require.Equal(t, "/products/category/laptops", gotPath)
	require.Equal(t, 12, total)
	require.Equal(t, "laptops", products[0].Category)
}

func TestProductClient_CategoriesNormalizesObjects(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"slug":"smartphones","name":"Smartphones","url":"https://x/c/smartphones"},{"slug":"laptops","name":"Laptops"}]`))
	}))

	categories, err := dummyjson.NewProductClient(c).Categories(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"smartphones", "laptops"}, categories)
}

func TestProductClient_CategoriesPassesStringsThrough(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`["a","b"]`))
	}))

	categories, err := dummyjson.NewProductClient(c).Categories(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, categories)
}

func TestClient_MalformedBodyIsParseError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"users": [`))
	}))

	_, _, err := dummyjson.NewUserClient(c).List(context.Background(), 10, 0)
	var pe *dummyjson.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestClient_ConnectionFailureIsNetworkError(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	// point at a closed port
	c := dummyjson.NewClient(&config.UpstreamConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}, logger)

	_, _, err := dummyjson.NewUserClient(c).List(context.Background(), 10, 0)
	var ne *dummyjson.NetworkError
	require.ErrorAs(t, err, &ne)
}

func TestLogin_Success(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "emilys", body["username"])

		_, _ = w.Write([]byte(`{"id":1,"username":"emilys","email":"emily@x.com","firstName":"Emily","lastName":"Johnson","accessToken":"upstream-jwt"}`))
	}))

	u, err := c.Login(context.Background(), "emilys", "emilyspass")
	require.NoError(t, err)
	require.Equal(t, "emilys", u.Username)
	require.Equal(t, "upstream-jwt", u.Token())
}

func TestLogin_LegacyTokenField(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1,"username":"emilys","token":"legacy-jwt"}`))
	}))

	u, err := c.Login(context.Background(), "emilys", "emilyspass")
	require.NoError(t, err)
	require.Equal(t, "legacy-jwt", u.Token())
}

func TestLogin_BadCredentials(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Invalid credentials"}`, http.StatusBadRequest)
	}))

	_, err := c.Login(context.Background(), "emilys", "wrong")
	var se *dummyjson.StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusBadRequest, se.StatusCode)
}
