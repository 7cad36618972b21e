package logging

import "sync"

// MockEntry is a single captured log call.
type MockEntry struct {
	Level   string
	Message string
	Fields  []Field
	Err     error
}

// MockLogger captures log calls for assertions in tests.
type MockLogger struct {
	mu      sync.Mutex
	entries []MockEntry
	fields  []Field
	err     error
}

// NewMockLogger creates a MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

// Entries returns a copy of the captured entries.
func (m *MockLogger) Entries() []MockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// HasEntry reports whether any captured entry matches the level and message.
func (m *MockLogger) HasEntry(level, msg string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.Level == level && e.Message == msg {
			return true
		}
	}
	return false
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := append(append([]Field{}, m.fields...), fields...)
	m.entries = append(m.entries, MockEntry{Level: level, Message: msg, Fields: all, Err: m.err})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("info", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("warn", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("error", msg, fields) }
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("fatal", msg, fields) }

// WithError returns a child logger carrying the error. The child shares the
// parent's entry buffer so tests can assert on a single logger.
func (m *MockLogger) WithError(err error) Logger {
	return &childMock{parent: m, fields: m.fields, err: err}
}

// WithField returns a child logger with one extra field attached.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns a child logger with extra fields attached.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	return &childMock{parent: m, fields: append(append([]Field{}, m.fields...), fields...), err: m.err}
}

type childMock struct {
	parent *MockLogger
	fields []Field
	err    error
}

func (c *childMock) record(level, msg string, fields []Field) {
	c.parent.mu.Lock()
	defer c.parent.mu.Unlock()
	all := append(append([]Field{}, c.fields...), fields...)
	c.parent.entries = append(c.parent.entries, MockEntry{Level: level, Message: msg, Fields: all, Err: c.err})
}

func (c *childMock) Debug(msg string, fields ...Field) { c.record("debug", msg, fields) }
func (c *childMock) Info(msg string, fields ...Field)  { c.record("info", msg, fields) }
func (c *childMock) Warn(msg string, fields ...Field)  { c.record("warn", msg, fields) }
func (c *childMock) Error(msg string, fields ...Field) { c.record("error", msg, fields) }
func (c *childMock) Fatal(msg string, fields ...Field) { c.record("fatal", msg, fields) }

func (c *childMock) WithError(err error) Logger {
	return &childMock{parent: c.parent, fields: c.fields, err: err}
}

func (c *childMock) WithField(key string, value interface{}) Logger {
	return c.WithFields(Field{Key: key, Value: value})
}

func (c *childMock) WithFields(fields ...Field) Logger {
	return &childMock{parent: c.parent, fields: append(append([]Field{}, c.fields...), fields...), err: c.err}
}
