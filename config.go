package site

import "github.com/goliatone/go-agency-site/internal/runtimeconfig"

var (
	ErrServerAddrRequired        = runtimeconfig.ErrServerAddrRequired
	ErrContentDirRequired        = runtimeconfig.ErrContentDirRequired
	ErrContentLocalesRequired    = runtimeconfig.ErrContentLocalesRequired
	ErrDefaultLocaleUnknown      = runtimeconfig.ErrDefaultLocaleUnknown
	ErrRendererInvalid           = runtimeconfig.ErrRendererInvalid
	ErrPriceBandInvalid          = runtimeconfig.ErrPriceBandInvalid
	ErrStorageDriverInvalid      = runtimeconfig.ErrStorageDriverInvalid
	ErrStorageDSNRequired        = runtimeconfig.ErrStorageDSNRequired
	ErrEstimatePersistNeedsStore = runtimeconfig.ErrEstimatePersistNeedsStore
	ErrLoggingLevelInvalid       = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid      = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	ServerConfig   = runtimeconfig.ServerConfig
	ContentConfig  = runtimeconfig.ContentConfig
	RoutesConfig   = runtimeconfig.RoutesConfig
	EstimateConfig = runtimeconfig.EstimateConfig
	StorageConfig  = runtimeconfig.StorageConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
	LoadOptions    = runtimeconfig.LoadOptions
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads configuration from an optional YAML file and AGENCY_*
// environment variables. It returns the config file used, if any.
func LoadConfig(opts LoadOptions) (Config, string, error) {
	return runtimeconfig.Load(opts)
}
