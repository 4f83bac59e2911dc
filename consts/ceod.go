package consts

const (
	// DefaultTimezone is used for report dates when `report.timezone` is not set
	DefaultTimezone = "America/Sao_Paulo"

	StoreDriverMongo = "mongo"
	StoreDriverORM   = "orm"

	MetricsPrefix = "ceod"
)
