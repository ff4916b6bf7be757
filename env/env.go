package env

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	FormatKey    = "PTNET_FORMAT"
	OutputDirKey = "PTNET_OUTPUT_DIR"
	RankDirKey   = "PTNET_RANKDIR"
	DebugKey     = "PTNET_DEBUG"
)

type Environment struct {
	Format    string
	OutputDir string
	RankDir   string
	Debug     bool
}

// Defaults are used for every variable that is not set.
var Defaults = Environment{
	Format:    "dot",
	OutputDir: "",
	RankDir:   "LR",
	Debug:     false,
}

// LoadEnv reads the optional .env files and then the process environment.
func LoadEnv(logger *zap.Logger, filenames ...string) (*Environment, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	e := Defaults
	if v, ok := os.LookupEnv(FormatKey); ok {
		e.Format = v
	}
	if v, ok := os.LookupEnv(OutputDirKey); ok {
		e.OutputDir = v
	}
	if v, ok := os.LookupEnv(RankDirKey); ok {
		e.RankDir = v
	}
	if v, ok := os.LookupEnv(DebugKey); ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("ignoring malformed value", zap.String("key", DebugKey), zap.String("value", v))
		} else {
			e.Debug = debug
		}
	}
	logger.Debug("environment loaded",
		zap.String("format", e.Format),
		zap.String("outputDir", e.OutputDir),
		zap.String("rankDir", e.RankDir),
		zap.Bool("debug", e.Debug),
	)
	return &e, nil
}
