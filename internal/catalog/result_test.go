package catalog

import (
	"encoding/json/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelistapp/reelist-server/internal/domain"
)

func TestResult_Ok(t *testing.T) {
	r := Ok(domain.Title{ID: 603, Title: "The Matrix"})

	assert.True(t, r.OK())
	assert.Equal(t, 603, r.Value().ID)
	assert.Empty(t, r.Message())
}

func TestResult_Fail(t *testing.T) {
	r := Fail[domain.Title]("catalog returned status 500")

	assert.False(t, r.OK())
	assert.Equal(t, "catalog returned status 500", r.Message())
	// Failed results hand back the zero value, never panic.
	assert.Zero(t, r.Value())
}

func TestResult_JSON(t *testing.T) {
	t.Run("ok carries value", func(t *testing.T) {
		data, err := json.Marshal(Ok(domain.Genre{ID: 18, Name: "Drama"}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"ok":true,"value":{"id":18,"name":"Drama"}}`, string(data))
	})

	t.Run("failed carries message", func(t *testing.T) {
		data, err := json.Marshal(Fail[domain.Genre]("nope"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"ok":false,"message":"nope"}`, string(data))
	})

	t.Run("round trip", func(t *testing.T) {
		data, err := json.Marshal(Ok(domain.Genre{ID: 35, Name: "Comedy"}))
		require.NoError(t, err)

		var back Result[domain.Genre]
		require.NoError(t, json.Unmarshal(data, &back))
		assert.True(t, back.OK())
		assert.Equal(t, "Comedy", back.Value().Name)
	})
}
