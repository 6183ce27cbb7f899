package wala

import "github.com/pryank18/ArchaeologyWala/internal/runtimeconfig"

var (
	ErrStorageDriverUnknown   = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired     = runtimeconfig.ErrStorageDSNRequired
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
	ErrSearchThresholdInvalid = runtimeconfig.ErrSearchThresholdInvalid
	ErrReadingPaceInvalid     = runtimeconfig.ErrReadingPaceInvalid
	ErrReadingFloorInvalid    = runtimeconfig.ErrReadingFloorInvalid
)

type (
	Config         = runtimeconfig.Config
	StorageConfig  = runtimeconfig.StorageConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	SearchConfig   = runtimeconfig.SearchConfig
	ReadingConfig  = runtimeconfig.ReadingConfig
	ReviewConfig   = runtimeconfig.ReviewConfig
	GlossaryConfig = runtimeconfig.GlossaryConfig
)

// DefaultConfig returns the configuration used when the host supplies none.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
