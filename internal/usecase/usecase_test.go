package usecase_test

import (
	"testing"

	"admin-panel/internal/testutil"
	"admin-panel/internal/usecase"

	"go.uber.org/zap"
)

func newService(t *testing.T) (*usecase.Service, *testutil.Store) {
	t.Helper()

	store := testutil.NewStore()
	return usecase.NewService(store.Repository(), testutil.Config(), zap.NewNop()), store
}

func ptr[T any](v T) *T {
	return &v
}
