package constants

const (
	MAX_PAGE_SIZE           = 100
	DEFAULT_HISTORY_LIMIT   = 20
	DEFAULT_OFFSET          = uint64(0)
	MAX_EARNERS_PER_SPLIT   = 100
	MAX_REASON_LENGTH       = 1024
	MAX_ASSET_NAME_LENGTH   = 200
	MAX_ASSET_SYMBOL_LENGTH = 16
)
