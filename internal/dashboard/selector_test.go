package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_SingleTrigger(t *testing.T) {
	for i, d := range Default.All() {
		triggers := make(Triggers, Default.Len())
		triggers[i] = true

		got, ok := Default.Select(triggers)
		require.True(t, ok)
		assert.Equal(t, d.Key, got.Key)
		assert.Equal(t, d.Embed, got.Embed)
	}
}

func TestSelect_NoTrigger(t *testing.T) {
	_, ok := Default.Select(make(Triggers, Default.Len()))
	assert.False(t, ok)

	sel := Default.Resolve()
	assert.Nil(t, sel.Dashboard)
	assert.Equal(t, DefaultMessage, sel.Message)
}

func TestSelect_PriorityOrder(t *testing.T) {
	tests := []struct {
		keys []string
		want string
	}{
		{[]string{"db5", "db2"}, "db2"},
		{[]string{"db4", "db3"}, "db3"},
		{[]string{"db5", "db1", "db4"}, "db1"},
		{[]string{"unknown", "db4"}, "db4"},
	}
	for _, tt := range tests {
		sel := Default.Resolve(tt.keys...)
		require.NotNil(t, sel.Dashboard, tt.keys)
		assert.Equal(t, tt.want, sel.Dashboard.Key)
		assert.Equal(t, LoadingMessage, sel.Message)
	}
}

func TestTriggersFromKeys(t *testing.T) {
	triggers := Default.TriggersFromKeys("db2", "nope")
	assert.Equal(t, Triggers{false, true, false, false, false}, triggers)
	assert.True(t, triggers.Any())
	assert.False(t, Default.TriggersFromKeys().Any())
}

func TestHeading(t *testing.T) {
	d, _ := Default.ByKey("db4")
	assert.Equal(t, "Sectors by Decades Dashboard", d.Heading())
}
