package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/rentscout"
	"github.com/fwojciec/rentscout/mock"
	rsslog "github.com/fwojciec/rentscout/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("logs provider and sizes without prompt text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Generator{
			GenerateFn: func(ctx context.Context, req rentscout.GenerateRequest) (string, error) {
				return "{}", nil
			},
			NameFn: func() string { return "anthropic" },
		}

		gen := rsslog.NewLoggingGenerator(inner, logger)
		text, err := gen.Generate(context.Background(), rentscout.GenerateRequest{
			System: "secret system",
			User:   "secret user",
			Model:  "claude-3-haiku-20240307",
		})

		require.NoError(t, err)
		assert.Equal(t, "{}", text)
		output := buf.String()
		assert.Contains(t, output, "msg=generate")
		assert.Contains(t, output, "provider=anthropic")
		assert.Contains(t, output, "model=claude-3-haiku-20240307")
		assert.Contains(t, output, "bytes=2")
		assert.NotContains(t, output, "secret")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Generator{
			GenerateFn: func(ctx context.Context, req rentscout.GenerateRequest) (string, error) {
				return "", rentscout.Errorf(rentscout.EUPSTREAM, "overloaded")
			},
		}

		gen := rsslog.NewLoggingGenerator(inner, logger)
		_, err := gen.Generate(context.Background(), rentscout.GenerateRequest{})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "overloaded")
		assert.Equal(t, "mock", gen.Name())
	})
}
