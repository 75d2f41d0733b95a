package rdlog

// Facade helpers using global Singleton logger.
// Usage: rdlog.Error("disk full")

func Emit(level Level, msg string) { L().Emit(level, msg) }

func Emitf(level Level, format string, args ...any) { L().Emitf(level, format, args...) }

func Panic(msg string) { L().Panic(msg) }
func Fatal(msg string) { L().Fatal(msg) }
func Error(msg string) { L().Error(msg) }
func Warn(msg string)  { L().Warn(msg) }
func Info(msg string)  { L().Info(msg) }
func Debug(msg string) { L().Debug(msg) }
func Trace(msg string) { L().Trace(msg) }
