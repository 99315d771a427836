package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "poolbook/internal/errors"
	"poolbook/internal/models"
	"poolbook/internal/services"
)

// --- mock pool service ---

type mockPoolService struct {
	createPoolFn   func(userID uint, name string, poolType models.PoolType, description string) (*models.Pool, error)
	getUserPoolsFn func(userID uint) ([]models.Pool, error)
	getPoolByIDFn  func(userID, poolID uint) (*models.Pool, error)
	updatePoolFn   func(userID, poolID uint, name, description string) (*models.Pool, error)
	deletePoolFn   func(userID, poolID uint) error
}

func (m *mockPoolService) CreatePool(userID uint, name string, poolType models.PoolType, description string) (*models.Pool, error) {
	if m.createPoolFn != nil {
		return m.createPoolFn(userID, name, poolType, description)
	}
	return &models.Pool{}, nil
}

func (m *mockPoolService) GetUserPools(userID uint) ([]models.Pool, error) {
	if m.getUserPoolsFn != nil {
		return m.getUserPoolsFn(userID)
	}
	return []models.Pool{}, nil
}

func (m *mockPoolService) GetPoolByID(userID, poolID uint) (*models.Pool, error) {
	if m.getPoolByIDFn != nil {
		return m.getPoolByIDFn(userID, poolID)
	}
	return &models.Pool{}, nil
}

func (m *mockPoolService) UpdatePool(userID, poolID uint, name, description string) (*models.Pool, error) {
	if m.updatePoolFn != nil {
		return m.updatePoolFn(userID, poolID, name, description)
	}
	return &models.Pool{}, nil
}

func (m *mockPoolService) DeletePool(userID, poolID uint) error {
	if m.deletePoolFn != nil {
		return m.deletePoolFn(userID, poolID)
	}
	return nil
}

var _ services.PoolServicer = (*mockPoolService)(nil)

func setupPoolRouter(handler *PoolHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/pools", handler.CreatePool)
	auth.GET("/pools", handler.GetPools)
	auth.GET("/pools/:id", handler.GetPool)
	auth.PUT("/pools/:id", handler.UpdatePool)
	auth.DELETE("/pools/:id", handler.DeletePool)
	return r
}

// --- tests ---

func TestPoolHandler_CreatePool(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockPoolService{
			createPoolFn: func(userID uint, name string, poolType models.PoolType, _ string) (*models.Pool, error) {
				return &models.Pool{Base: models.Base{ID: 1}, UserID: userID, Name: name, Type: poolType}, nil
			},
		}
		r := setupPoolRouter(NewPoolHandler(svc))

		rec := doRequest(r, "POST", "/pools", `{"name":"Checking","type":"expense"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		r := setupPoolRouter(NewPoolHandler(&mockPoolService{}))

		rec := doRequest(r, "POST", "/pools", `{"name":"X","type":"savings"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestPoolHandler_DeletePool(t *testing.T) {
	t.Run("returns 409 when referenced", func(t *testing.T) {
		svc := &mockPoolService{
			deletePoolFn: func(uint, uint) error {
				return apperrors.ErrPoolInUse
			},
		}
		r := setupPoolRouter(NewPoolHandler(svc))

		rec := doRequest(r, "DELETE", "/pools/1", "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "POOL_IN_USE")
	})
}
