package repository

import (
	"github.com/google/wire"
)

// 統一管理所有 SQL store repository
type SQLStoreRepository struct {
	apiRequestRepository *APIRequestRepository
}

// 建立 SQL store repository 物件
func NewSQLStoreRepository(
	apiRequestRepository *APIRequestRepository,
) *SQLStoreRepository {
	return &SQLStoreRepository{
		apiRequestRepository: apiRequestRepository,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewAPIRequestRepository,
	NewSQLStoreRepository)
