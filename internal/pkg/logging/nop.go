package logging

// NopLogger — реализация AppLogger, которая ничего не делает.
// Используется в тестах и как заглушка до инициализации фасада.
type NopLogger struct{}

// NewNopLogger создаёт AppLogger, игнорирующий все записи.
func NewNopLogger() AppLogger {
	return &NopLogger{}
}

// Info ничего не делает.
func (n *NopLogger) Info(string, Fields) error { return nil }

// Warning ничего не делает.
func (n *NopLogger) Warning(string, Fields) error { return nil }

// Error ничего не делает.
func (n *NopLogger) Error(string, Fields) error { return nil }

// Critical ничего не делает.
func (n *NopLogger) Critical(string, Fields) error { return nil }

// Log ничего не делает.
func (n *NopLogger) Log(Level, string, Fields, bool) error { return nil }

// LogUserAction ничего не делает.
func (n *NopLogger) LogUserAction(string, string, Fields, string) error { return nil }

// LogAPICall ничего не делает.
func (n *NopLogger) LogAPICall(string, string, int, string, float64, string) error { return nil }

// LogExternalServiceEvent ничего не делает.
func (n *NopLogger) LogExternalServiceEvent(string, string, string, string, string) error {
	return nil
}

// LogSystemEvent ничего не делает.
func (n *NopLogger) LogSystemEvent(string, Fields, Level, bool) error { return nil }
