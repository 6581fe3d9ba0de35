package logging

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/eytandecker/simresult-mcp/internal/config"
	"github.com/eytandecker/simresult-mcp/pkg/types"
)

// New builds a logger from cfg that writes to out. Unparseable levels fall
// back to info. The MCP server talks over stdout, so callers pass stderr.
func New(cfg config.LoggingConfig, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	return log
}

// FailureFields returns log fields describing err. Simulator failures get
// their kind, code and code name.
func FailureFields(err error) logrus.Fields {
	fields := logrus.Fields{"kind": string(types.KindOf(err))}
	if code, ok := types.CodeOf(err); ok {
		fields["code"] = code
		fields["result"] = types.ResultCode(code).String()
	}
	return fields
}
