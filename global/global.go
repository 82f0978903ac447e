package global

import (
	"github.com/rs/zerolog"

	"portfolio-admin/config"
)

var (
	Config *config.Config
	Logger zerolog.Logger
)
