package satismeter

import (
	"testing"

	"github.com/Tap30/satismeter-go/adapters"
	"github.com/Tap30/satismeter-go/analytics"
)

func newBenchIntegration(b *testing.B) (*Integration, *analytics.Analytics) {
	host := analytics.New(analytics.Config{LoggerAdapter: adapters.NewNoOpLoggerAdapter()})
	runtime := &mockRuntime{}
	runtime.defined.Store(true)

	config := Config{Options: Options{APIKey: "test-key"}}
	config.Adapters.Runtime = runtime
	config.Adapters.LoggerAdapter = adapters.NewNoOpLoggerAdapter()

	satis, err := New(config, host)
	if err != nil {
		b.Fatal(err)
	}
	host.User().Identify("id", map[string]any{"email": "email@example.com", "plan": "pro"})
	return satis, host
}

func BenchmarkIdentify(b *testing.B) {
	satis, _ := newBenchIntegration(b)
	msg := analytics.NewIdentify("id", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = satis.Identify(msg)
	}
}

func BenchmarkTrack(b *testing.B) {
	satis, _ := newBenchIntegration(b)
	msg := analytics.NewTrack("event", map[string]any{"key": "value"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = satis.Track(msg)
	}
}

func BenchmarkPage(b *testing.B) {
	satis, _ := newBenchIntegration(b)
	msg := analytics.NewPage("Pricing", map[string]any{"customProperty": "Example"}, analytics.PageContext{Path: "/pricing"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = satis.Page(msg)
	}
}
