package satismeter

import (
	"reflect"
	"testing"

	"github.com/Tap30/satismeter-go/adapters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPluginContract validates the settings declared to the host.
func TestPluginContract(t *testing.T) {
	t.Run("name and global", func(t *testing.T) {
		assert.Equal(t, "SatisMeter", Name)
		assert.Equal(t, "satismeter", Global)
	})

	t.Run("script tag points at the vendor script", func(t *testing.T) {
		src, err := adapters.ScriptSource(Tag)
		require.NoError(t, err)
		assert.Equal(t, "https://app.satismeter.com/satismeter.js", src)
	})

	t.Run("options are the two string settings", func(t *testing.T) {
		optionsType := reflect.TypeOf(Options{})
		keys := make(map[string]reflect.Kind, optionsType.NumField())
		for i := 0; i < optionsType.NumField(); i++ {
			field := optionsType.Field(i)
			keys[field.Tag.Get("yaml")] = field.Type.Kind()
		}

		assert.Equal(t, map[string]reflect.Kind{
			"apiKey": reflect.String,
			"token":  reflect.String,
		}, keys)
	})

	t.Run("vendor calls use two distinct shapes", func(t *testing.T) {
		runtimeType := reflect.TypeOf((*VendorRuntime)(nil)).Elem()

		send, ok := runtimeType.MethodByName("Send")
		require.True(t, ok)
		assert.Equal(t, 2, send.Type.NumIn(), "Send(global, payload)")

		command, ok := runtimeType.MethodByName("Command")
		require.True(t, ok)
		assert.Equal(t, 4, command.Type.NumIn(), "Command(global, command, subject, properties)")
	})
}
