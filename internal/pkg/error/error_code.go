package error

const (
	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR = 50000 // 500 - 內部錯誤
	DATABASE_ERROR = 50001 // 500 - 資料庫錯誤
)
