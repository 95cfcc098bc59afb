package authorHandler

import (
	"context"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"BlogPlatform/internal/api/author"
	"BlogPlatform/internal/middleware"
	"BlogPlatform/internal/validation"
	jwtPkg "BlogPlatform/pkg/jwt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

type stubService struct {
	registered []author.RegisterAuthorRequest
	registerFn func(author.RegisterAuthorRequest) (author.AuthorResponse, error)
	loginFn    func(author.LoginRequest) (author.LoginResponse, error)
}

func (s *stubService) RegisterAuthor(_ context.Context, req author.RegisterAuthorRequest) (author.AuthorResponse, error) {
	s.registered = append(s.registered, req)
	if s.registerFn != nil {
		return s.registerFn(req)
	}
	return author.AuthorResponse{ID: "01HZX3J8Q6W6E8N9T3V5K7M2PA", Email: req.Email}, nil
}

func (s *stubService) Login(_ context.Context, req author.LoginRequest) (author.LoginResponse, error) {
	if s.loginFn != nil {
		return s.loginFn(req)
	}
	return author.LoginResponse{Token: "signed.jwt.token", AuthorID: "01HZX3J8Q6W6E8N9T3V5K7M2PA"}, nil
}

type envelope struct {
	Status bool                `json:"status"`
	Msg    string              `json:"msg"`
	Data   jsoniter.RawMessage `json:"data"`
}

func newApp(t *testing.T, svc *stubService) *fiber.App {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(validation.JSONFieldName)
	require.NoError(t, validation.RegisterTags(validate))

	app := fiber.New()
	New(logger, svc, validate, middleware.New(logger)).Start(app)
	return app
}

func post(t *testing.T, app *fiber.App, path string, body string) (*fiberResponse, envelope) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&env))
	return &fiberResponse{status: resp.StatusCode, apiKey: resp.Header.Get(jwtPkg.APIKeyHeader)}, env
}

type fiberResponse struct {
	status int
	apiKey string
}

func TestHandleRegisterValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
		msg  string
	}{
		{"empty object", `{}`, "please provide author details"},
		{"missing fname", `{"lname":"B","title":"Mr","email":"a@b.co","password":"x"}`, "First name is required"},
		{"blank lname", `{"fname":"A","lname":"  ","title":"Mr","email":"a@b.co","password":"x"}`, "Last name is required"},
		{"bad title", `{"fname":"A","lname":"B","title":"Dr","email":"a@b.co","password":"x"}`, "Title should be one of Mr, Mrs, Miss"},
		{"bad email", `{"fname":"A","lname":"B","title":"Mr","email":"not-an-email","password":"x"}`, "Email should be a valid email address"},
		{"missing password", `{"fname":"A","lname":"B","title":"Mr","email":"a@b.co"}`, "Password is required"},
		{"first violation wins", `{"title":"Dr"}`, "First name is required"},
		{"wrong type", `{"fname":5}`, errMalformedBody.Error()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubService{}
			res, env := post(t, newApp(t, svc), "/authors", tc.body)

			assert.Equal(t, fiber.StatusBadRequest, res.status)
			assert.False(t, env.Status)
			assert.Equal(t, tc.msg, env.Msg)
			assert.Empty(t, svc.registered)
		})
	}
}

func TestHandleRegister(t *testing.T) {
	svc := &stubService{}
	res, env := post(t, newApp(t, svc), "/authors",
		`{"fname":"A","lname":"B","title":"Mr","email":"a@b.co","password":"x"}`)

	assert.Equal(t, fiber.StatusCreated, res.status)
	assert.True(t, env.Status)
	require.Len(t, svc.registered, 1)
	assert.Equal(t, "a@b.co", svc.registered[0].Email)

	var data map[string]interface{}
	require.NoError(t, jsoniter.Unmarshal(env.Data, &data))
	assert.NotContains(t, data, "password")
}

func TestHandleRegisterTrimsEmail(t *testing.T) {
	svc := &stubService{}
	res, _ := post(t, newApp(t, svc), "/authors",
		`{"fname":"A","lname":"B","title":"Mr","email":"  A@B.co ","password":"x"}`)

	assert.Equal(t, fiber.StatusCreated, res.status)
	require.Len(t, svc.registered, 1)
	assert.Equal(t, "a@b.co", svc.registered[0].Email)
}

func TestHandleRegisterDuplicate(t *testing.T) {
	svc := &stubService{registerFn: func(author.RegisterAuthorRequest) (author.AuthorResponse, error) {
		return author.AuthorResponse{}, author.ErrEmailAlreadyRegistered
	}}

	res, env := post(t, newApp(t, svc), "/authors",
		`{"fname":"A","lname":"B","title":"Mr","email":"a@b.co","password":"x"}`)

	assert.Equal(t, fiber.StatusBadRequest, res.status)
	assert.Equal(t, "email address is already registered", env.Msg)
}

func TestHandleLogin(t *testing.T) {
	res, env := post(t, newApp(t, &stubService{}), "/login", `{"email":"a@b.co","password":"x"}`)

	assert.Equal(t, fiber.StatusOK, res.status)
	assert.Equal(t, "signed.jwt.token", res.apiKey)

	var data author.LoginResponse
	require.NoError(t, jsoniter.Unmarshal(env.Data, &data))
	assert.Equal(t, "signed.jwt.token", data.Token)
}

func TestHandleLoginTrimsEmail(t *testing.T) {
	var got author.LoginRequest
	svc := &stubService{loginFn: func(req author.LoginRequest) (author.LoginResponse, error) {
		got = req
		return author.LoginResponse{Token: "signed.jwt.token"}, nil
	}}

	res, _ := post(t, newApp(t, svc), "/login", `{"email":" a@b.co  ","password":"x"}`)

	assert.Equal(t, fiber.StatusOK, res.status)
	assert.Equal(t, "a@b.co", got.Email)
}

func TestHandleLoginErrors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		err    error
		status int
		msg    string
	}{
		{"empty body", `{}`, nil, fiber.StatusBadRequest, "please provide login details"},
		{"missing password", `{"email":"a@b.co"}`, nil, fiber.StatusBadRequest, "Password is required"},
		{"bad credentials", `{"email":"a@b.co","password":"y"}`, author.ErrInvalidCredentials, fiber.StatusUnauthorized, "invalid credentials"},
		{"throttled", `{"email":"a@b.co","password":"y"}`, author.ErrTooManyLoginAttempts, fiber.StatusTooManyRequests, "too many failed login attempts, try again later"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubService{loginFn: func(author.LoginRequest) (author.LoginResponse, error) {
				return author.LoginResponse{}, tc.err
			}}

			res, env := post(t, newApp(t, svc), "/login", tc.body)

			assert.Equal(t, tc.status, res.status)
			assert.Equal(t, tc.msg, env.Msg)
			assert.Empty(t, res.apiKey)
		})
	}
}
