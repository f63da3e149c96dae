package database

import (
	client "apitracker/internal/database/client"
	cloudwatchRepo "apitracker/internal/database/cloudwatch/repository"
	sqlstoreRepo "apitracker/internal/database/sqlstore/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewSQLClient,
	client.NewSinkClient,
	sqlstoreRepo.ProviderSet,
	cloudwatchRepo.ProviderSet,
)
