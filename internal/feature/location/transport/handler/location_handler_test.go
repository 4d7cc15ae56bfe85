package handler

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

	authentity "places_backend/internal/feature/auth/domain/entity"
	"places_backend/internal/feature/location/domain/entity"
	"places_backend/internal/feature/location/usecase"
	jwtmw "places_backend/internal/platform/jwt"
)

// mockLocationUsecase is a mock implementation of the LocationUsecase interface.
type mockLocationUsecase struct {
	CreateFunc          func(ctx context.Context, actor usecase.Actor, in usecase.LocationInput) (*entity.Location, error)
	ListFunc            func(ctx context.Context) ([]entity.Location, error)
	GetFunc             func(ctx context.Context, id uint) (*entity.Location, error)
	UpdateFunc          func(ctx context.Context, id uint, actor usecase.Actor, in usecase.LocationInput) (*entity.Location, error)
	DeleteFunc          func(ctx context.Context, id uint, actor usecase.Actor) error
	AttachOwnerInfoFunc func(ctx context.Context, locationID uint, actor usecase.Actor, in usecase.OwnerInfoInput) (*entity.OwnerInfo, error)
	AddReviewFunc       func(ctx context.Context, locationID uint, actor usecase.Actor, rating int, comment string) (*entity.Review, error)
	ListReviewsFunc     func(ctx context.Context, locationID uint) ([]entity.Review, error)
}

func (m *mockLocationUsecase) Create(ctx context.Context, actor usecase.Actor, in usecase.LocationInput) (*entity.Location, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, in)
	}
	return &entity.Location{ID: 1, Name: in.Name, CreatedBy: actor.ID}, nil
}

func (m *mockLocationUsecase) List(ctx context.Context) ([]entity.Location, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockLocationUsecase) Get(ctx context.Context, id uint) (*entity.Location, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, usecase.ErrLocationNotFound
}

func (m *mockLocationUsecase) Update(ctx context.Context, id uint, actor usecase.Actor, in usecase.LocationInput) (*entity.Location, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, actor, in)
	}
	return nil, usecase.ErrLocationNotFound
}

func (m *mockLocationUsecase) Delete(ctx context.Context, id uint, actor usecase.Actor) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, actor)
	}
	return usecase.ErrLocationNotFound
}

func (m *mockLocationUsecase) AttachOwnerInfo(ctx context.Context, locationID uint, actor usecase.Actor, in usecase.OwnerInfoInput) (*entity.OwnerInfo, error) {
	if m.AttachOwnerInfoFunc != nil {
		return m.AttachOwnerInfoFunc(ctx, locationID, actor, in)
	}
	return nil, usecase.ErrLocationNotFound
}

func (m *mockLocationUsecase) AddReview(ctx context.Context, locationID uint, actor usecase.Actor, rating int, comment string) (*entity.Review, error) {
	if m.AddReviewFunc != nil {
		return m.AddReviewFunc(ctx, locationID, actor, rating, comment)
	}
	return nil, usecase.ErrLocationNotFound
}

func (m *mockLocationUsecase) ListReviews(ctx context.Context, locationID uint) ([]entity.Review, error) {
	if m.ListReviewsFunc != nil {
		return m.ListReviewsFunc(ctx, locationID)
	}
	return nil, nil
}

// newTestRouter wires the handler routes. When user is non-nil, a stub
// middleware injects it as the authenticated user.
func newTestRouter(uc LocationUsecase, user *authentity.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewLocationHandler(uc)

	r := gin.New()
	if user != nil {
		r.Use(func(c *gin.Context) { c.Set(jwtmw.ContextUser, user) })
	}
	r.POST("/locations/add-location", h.Create)
	r.GET("/locations/", h.List)
	r.GET("/locations/:id", h.Get)
	r.PUT("/locations/:id", h.Update)
	r.DELETE("/locations/:id", h.Delete)
	r.POST("/locations/", h.AttachOwnerInfo)
	r.POST("/locations/:id/reviews", h.AddReview)
	r.GET("/locations/:id/reviews", h.ListReviews)
	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// cafeBody returns a request body that passes binding.
func cafeBody() gin.H {
	return gin.H{
		"name":                "Cafe",
		"latitude":            55.75,
		"longitude":           37.61,
		"working_hours_start": "09:00",
		"working_hours_end":   "21:00",
	}
}

func TestLocationHandler_Create(t *testing.T) {
	alice := &authentity.User{ID: 1, Username: "alice"}

	t.Run("success: location without owner info", func(t *testing.T) {
		uc := &mockLocationUsecase{
			CreateFunc: func(ctx context.Context, actor usecase.Actor, in usecase.LocationInput) (*entity.Location, error) {
				assert.Equal(t, uint(1), actor.ID)
				return &entity.Location{ID: 7, Name: in.Name, CreatedBy: actor.ID}, nil
			},
		}
		router := newTestRouter(uc, alice)

		w := doJSON(t, router, http.MethodPost, "/locations/add-location", cafeBody())

		assert.Equal(t, http.StatusOK, w.Code)
		var resp gin.H
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, float64(7), resp["id"])
		assert.NotContains(t, resp, "owner_info")
	})

	t.Run("success: owner info attached inline", func(t *testing.T) {
		uc := &mockLocationUsecase{
			CreateFunc: func(ctx context.Context, actor usecase.Actor, in usecase.LocationInput) (*entity.Location, error) {
				return &entity.Location{ID: 7, Name: in.Name, CreatedBy: actor.ID}, nil
			},
			AttachOwnerInfoFunc: func(ctx context.Context, locationID uint, actor usecase.Actor, in usecase.OwnerInfoInput) (*entity.OwnerInfo, error) {
				assert.Equal(t, uint(7), locationID)
				return &entity.OwnerInfo{ID: 3, UserID: actor.ID, LocationID: locationID, OwnerInfo: in.OwnerInfo}, nil
			},
		}
		router := newTestRouter(uc, alice)

		body := cafeBody()
		body["owner_info"] = gin.H{"owner_info": "Family-run cafe"}
		w := doJSON(t, router, http.MethodPost, "/locations/add-location", body)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp gin.H
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp, "owner_info")
	})

	t.Run("failure: unauthenticated", func(t *testing.T) {
		router := newTestRouter(&mockLocationUsecase{}, nil)

		w := doJSON(t, router, http.MethodPost, "/locations/add-location", cafeBody())

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("failure: malformed working hours", func(t *testing.T) {
		router := newTestRouter(&mockLocationUsecase{}, alice)

		body := cafeBody()
		body["working_hours_start"] = "9am"
		w := doJSON(t, router, http.MethodPost, "/locations/add-location", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLocationHandler_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockLocationUsecase{
			GetFunc: func(ctx context.Context, id uint) (*entity.Location, error) {
				return &entity.Location{ID: id, Name: "Cafe"}, nil
			},
		}
		router := newTestRouter(uc, nil)

		w := doJSON(t, router, http.MethodGet, "/locations/7", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("failure: not found", func(t *testing.T) {
		router := newTestRouter(&mockLocationUsecase{}, nil)

		w := doJSON(t, router, http.MethodGet, "/locations/99", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("failure: non-numeric id", func(t *testing.T) {
		router := newTestRouter(&mockLocationUsecase{}, nil)

		w := doJSON(t, router, http.MethodGet, "/locations/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLocationHandler_Update(t *testing.T) {
	alice := &authentity.User{ID: 1, Username: "alice"}

	t.Run("failure: not the creator", func(t *testing.T) {
		uc := &mockLocationUsecase{
			UpdateFunc: func(ctx context.Context, id uint, actor usecase.Actor, in usecase.LocationInput) (*entity.Location, error) {
				return nil, usecase.ErrForbidden
			},
		}
		router := newTestRouter(uc, alice)

		w := doJSON(t, router, http.MethodPut, "/locations/7", cafeBody())

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("failure: not found", func(t *testing.T) {
		router := newTestRouter(&mockLocationUsecase{}, alice)

		w := doJSON(t, router, http.MethodPut, "/locations/99", cafeBody())

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLocationHandler_Delete(t *testing.T) {
	alice := &authentity.User{ID: 1, Username: "alice"}

	t.Run("failure: not an admin", func(t *testing.T) {
		uc := &mockLocationUsecase{
			DeleteFunc: func(ctx context.Context, id uint, actor usecase.Actor) error {
				return usecase.ErrForbidden
			},
		}
		router := newTestRouter(uc, alice)

		w := doJSON(t, router, http.MethodDelete, "/locations/7", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("success: admin delete", func(t *testing.T) {
		admin := &authentity.User{ID: 2, Username: "root", Role: authentity.RoleAdmin}
		uc := &mockLocationUsecase{
			DeleteFunc: func(ctx context.Context, id uint, actor usecase.Actor) error {
				assert.True(t, actor.Admin)
				return nil
			},
		}
		router := newTestRouter(uc, admin)

		w := doJSON(t, router, http.MethodDelete, "/locations/7", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLocationHandler_AttachOwnerInfo(t *testing.T) {
	alice := &authentity.User{ID: 1, Username: "alice"}
	body := gin.H{"location_id": 7, "owner_info": "Family-run cafe"}

	t.Run("success", func(t *testing.T) {
		uc := &mockLocationUsecase{
			AttachOwnerInfoFunc: func(ctx context.Context, locationID uint, actor usecase.Actor, in usecase.OwnerInfoInput) (*entity.OwnerInfo, error) {
				return &entity.OwnerInfo{ID: 3, UserID: actor.ID, LocationID: locationID, OwnerInfo: in.OwnerInfo}, nil
			},
		}
		router := newTestRouter(uc, alice)

		w := doJSON(t, router, http.MethodPost, "/locations/", body)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("failure: not the creator", func(t *testing.T) {
		uc := &mockLocationUsecase{
			AttachOwnerInfoFunc: func(ctx context.Context, locationID uint, actor usecase.Actor, in usecase.OwnerInfoInput) (*entity.OwnerInfo, error) {
				return nil, usecase.ErrForbidden
			},
		}
		router := newTestRouter(uc, alice)

		w := doJSON(t, router, http.MethodPost, "/locations/", body)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("failure: unknown location", func(t *testing.T) {
		router := newTestRouter(&mockLocationUsecase{}, alice)

		w := doJSON(t, router, http.MethodPost, "/locations/", body)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLocationHandler_AddReview(t *testing.T) {
	alice := &authentity.User{ID: 1, Username: "alice"}

	t.Run("success", func(t *testing.T) {
		uc := &mockLocationUsecase{
			AddReviewFunc: func(ctx context.Context, locationID uint, actor usecase.Actor, rating int, comment string) (*entity.Review, error) {
				assert.Equal(t, 5, rating)
				r := rating
				return &entity.Review{ID: 1, UserID: actor.ID, LocationID: locationID, Rating: &r, Comment: comment}, nil
			},
		}
		router := newTestRouter(uc, alice)

		w := doJSON(t, router, http.MethodPost, "/locations/7/reviews", gin.H{"rating": 5, "comment": "great"})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("failure: rating out of range", func(t *testing.T) {
		router := newTestRouter(&mockLocationUsecase{}, alice)

		w := doJSON(t, router, http.MethodPost, "/locations/7/reviews", gin.H{"rating": 6})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
