package logger_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/arnavseth183/CrossBorderTransactionChain/logger"
	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)

	log.Info().Str("component", "ledger").Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"ledger"`)
	assert.Contains(t, out, `"message":"hello"`)
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)

	ctx := logger.WithContext(context.Background(), log)
	got := logger.FromContext(ctx)

	got.Info().Msg("from context")
	assert.Contains(t, buf.String(), "from context")
}

func TestFromContextFallback(t *testing.T) {
	// no logger attached: must still return a usable logger
	log := logger.FromContext(context.Background())
	log.Debug().Msg("no-op")
}
