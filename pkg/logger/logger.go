package logger

import (
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger per kanal. Semuanya menulis file JSON di bawah logs/.
var (
	ErrorLogger    *zap.Logger
	AuditLogger    *zap.Logger
	RequestLogger  *zap.Logger
	SecurityLogger *zap.Logger
	SystemLogger   *zap.Logger
)

func newFileLogger(dir, name string, level zapcore.Level) (*zap.Logger, error) {
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(file),
		level,
	)
	return zap.New(core), nil
}

// InitLoggers menyiapkan semua logger kanal. Dipanggil sekali di awal proses.
func InitLoggers() {
	const dir = "logs"
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Cannot create log directory: %v", err)
	}

	channels := []struct {
		target **zap.Logger
		file   string
		level  zapcore.Level
	}{
		{&ErrorLogger, "errors.log", zapcore.ErrorLevel},
		{&AuditLogger, "audit.log", zapcore.InfoLevel},
		{&RequestLogger, "request.log", zapcore.InfoLevel},
		{&SecurityLogger, "security.log", zapcore.WarnLevel},
		{&SystemLogger, "system.log", zapcore.InfoLevel},
	}
	for _, ch := range channels {
		l, err := newFileLogger(dir, ch.file, ch.level)
		if err != nil {
			log.Fatalf("Cannot create %s logger: %v", ch.file, err)
		}
		*ch.target = l
	}
}

// InitTestLoggers mengganti semua logger dengan no-op supaya test tidak
// menulis file log.
func InitTestLoggers() {
	ErrorLogger = zap.NewNop()
	AuditLogger = zap.NewNop()
	RequestLogger = zap.NewNop()
	SecurityLogger = zap.NewNop()
	SystemLogger = zap.NewNop()
}

func SyncLoggers() {
	_ = ErrorLogger.Sync()
	_ = AuditLogger.Sync()
	_ = RequestLogger.Sync()
	_ = SecurityLogger.Sync()
	_ = SystemLogger.Sync()
}
