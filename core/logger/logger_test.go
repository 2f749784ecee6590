package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemshop/storefront/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json format emits parseable records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{Level: "debug", Format: "json"}, logger.WithOutput(&buf))
		log.Debug("hello", logger.Component("client"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "hello", record["msg"])
		assert.Equal(t, "client", record["component"])
	})

	t.Run("level filters records below threshold", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{Level: "error"}, logger.WithOutput(&buf))
		log.Info("dropped")
		assert.Empty(t, buf.String())

		log.Error("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("default attrs apply to every record", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{Format: "json"},
			logger.WithOutput(&buf),
			logger.WithAttrs(slog.String("app", "storefront")),
		)
		log.Info("first")

		assert.Contains(t, buf.String(), `"app":"storefront"`)
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("nil error produces empty attr", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})

	t.Run("error attr carries the error", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
	})

	t.Run("errors skips nils and keeps order", func(t *testing.T) {
		t.Parallel()

		attr := logger.Errors(nil, errors.New("a"), nil, errors.New("b"))
		require.Equal(t, "errors", attr.Key)
		group := attr.Value.Group()
		require.Len(t, group, 2)
		assert.Equal(t, "1", group[0].Key)
		assert.Equal(t, "3", group[1].Key)
	})

	t.Run("zero status produces empty attr", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, slog.Attr{}, logger.Status(0))
	})
}
