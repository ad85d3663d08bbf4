package cobinhood

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// quietSyncer isolates a log sink from the request that is being logged. Whatever goes wrong while
// writing to the sink is dropped on the floor.
type quietSyncer struct {
	zapcore.WriteSyncer
}

func (o quietSyncer) Write(p []byte) (int, error) {
	_, _ = o.WriteSyncer.Write(p)

	return len(p), nil
}

func (o quietSyncer) Sync() error {
	_ = o.WriteSyncer.Sync()

	return nil
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	return cfg
}

func sinkCore(enc zapcore.Encoder, w zapcore.WriteSyncer) zapcore.Core {
	return zapcore.NewCore(enc, quietSyncer{w}, zap.InfoLevel)
}

// newLogger builds a logger that tees every entry into zero or more sinks: standard output (if console
// is set) and the file at logFile (if it is non-empty). The opened file, if any, is returned so that
// it can be closed later.
func newLogger(console bool, logFile string) (*zap.Logger, *os.File, error) {
	cores := make([]zapcore.Core, 0, 2)

	if console {
		cores = append(cores, sinkCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.Lock(os.Stdout)))
	}

	var handle *os.File

	if logFile != "" {
		var err error

		handle, err = os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}

		cores = append(cores, sinkCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(handle)))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil, nil
	}

	return zap.New(zapcore.NewTee(cores...)), handle, nil
}
