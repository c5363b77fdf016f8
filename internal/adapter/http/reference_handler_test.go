package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"medevac-case-service/internal/domain/user"
	"medevac-case-service/internal/testutil/referencemock"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func newReferenceFixture(users *referencemock.UserRepo) *echo.Echo {
	h := NewReferenceHandler(&referencemock.HospitalRepo{}, &referencemock.DistrictRepo{}, users, zap.NewNop())
	e := echo.New()
	e.GET("/users", h.ListUsers)
	e.GET("/users/:id", h.GetUser)
	return e
}

func TestListUsers_Returns200(t *testing.T) {
	users := &referencemock.UserRepo{
		ListFn: func(ctx context.Context) ([]user.User, error) {
			return []user.User{
				{ID: 1, Username: "cmo.shimla", Role: user.RoleCMO, FullName: "Dr. Verma", PasswordHash: "x"},
				{ID: 2, Username: "dm.mandi", Role: user.RoleDM, FullName: "S. Thakur", PasswordHash: "y"},
			}, nil
		},
	}
	e := newReferenceFixture(users)

	rec := doJSON(e, http.MethodGet, "/users", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
	var rows []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len=%d", len(rows))
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}

func TestGetUser_Unknown_Returns404(t *testing.T) {
	e := newReferenceFixture(&referencemock.UserRepo{})

	rec := doJSON(e, http.MethodGet, "/users/9", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestGetUser_Returns200(t *testing.T) {
	users := &referencemock.UserRepo{
		GetByIDFn: func(ctx context.Context, id uint64) (*user.User, error) {
			return &user.User{ID: id, Username: "cmo.shimla", Role: user.RoleCMO, FullName: "Dr. Verma"}, nil
		},
	}
	e := newReferenceFixture(users)

	rec := doJSON(e, http.MethodGet, "/users/1", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
	var got user.User
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != 1 || got.Role != user.RoleCMO {
		t.Fatalf("got=%+v", got)
	}
}
