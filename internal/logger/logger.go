package logger

import (
    "time"

    "github.com/natefinch/lumberjack"
    logrus "github.com/sirupsen/logrus"
)

// Setup initializes Logrus via a rotating file.
func Setup(filename, level string) {
    // 1) Lumberjack for file rotation
    rotator := &lumberjack.Logger{
        Filename:   filename,
        MaxSize:    10,  // megabytes
        MaxBackups: 7,   // keep up to 7 old files
        MaxAge:     7,   // days
        Compress:   true,
    }

    // 2) Configure Logrus to write to that file
    logrus.SetOutput(rotator)
    logrus.SetFormatter(&logrus.TextFormatter{
        FullTimestamp:   true,
        TimestampFormat: time.RFC3339,
    })

    parsed, err := logrus.ParseLevel(level)
    if err != nil {
        parsed = logrus.InfoLevel
    }
    logrus.SetLevel(parsed)
}
