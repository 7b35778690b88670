package logger

import "go.uber.org/zap"

// New builds the process logger; dev mode gets human-readable output.
func New(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
