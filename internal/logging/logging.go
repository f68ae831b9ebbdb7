// Package logging builds the zap logger used by the HTTP server.
package logging

import (
	"go.uber.org/zap"

	"github.com/3-lines-studio/folio/internal/core"
)

// New returns a development logger in dev mode and a production JSON logger
// otherwise.
func New(mode core.Mode) (*zap.Logger, error) {
	if mode == core.ModeDev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
