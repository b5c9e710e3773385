package ai

import "sync/atomic"

// debugTicks включает отладочные логи тиков и решений autoplay.
// Флаг проверяется до сборки аргументов slog.Debug, поэтому горячий путь тика
// не платит за форматирование при выключенном debug.
var debugTicks atomic.Bool

// EnableDebugLogging включает или выключает отладочные логи тиков.
// Вызывается из main после разбора log_level.
func EnableDebugLogging(on bool) { debugTicks.Store(on) }

// IsDebugEnabled reports whether tick-level debug logging is on.
func IsDebugEnabled() bool { return debugTicks.Load() }
