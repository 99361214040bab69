package models

type Configuration struct {
	App     AppConfiguration     `mapstructure:"app"     validate:"required"`
	API     APIConfiguration     `mapstructure:"api"     validate:"required"`
	Storage StorageConfiguration `mapstructure:"storage" validate:"required"`
}

type AppConfiguration struct {
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error fatal panic"`
}

type APIConfiguration struct {
	BaseURL        string `mapstructure:"base_url"        validate:"omitempty,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=1,lte=120"`
}

type StorageConfiguration struct {
	Type   string                      `mapstructure:"type"   validate:"required,oneof=sqlite memory"`
	SQLite *SQLiteStorageConfiguration `mapstructure:"sqlite" validate:"required_if=Type sqlite"`
}

type SQLiteStorageConfiguration struct {
	Path string `mapstructure:"path" validate:"required"`
}
