package app

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cafeorigenes/origenes-api/internal/domain"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestMustGetEnvAsStrings(t *testing.T) {
	t.Setenv("ORIGENES_TEST_LIST", " jwt, ,extra ,")
	assert.Equal(t, []string{"jwt", "extra"}, MustGetEnvAsStrings(testContext(), "ORIGENES_TEST_LIST"))

	t.Setenv("ORIGENES_TEST_LIST", "")
	assert.Empty(t, MustGetEnvAsStrings(testContext(), "ORIGENES_TEST_LIST"))
}

func TestMustGetEnv_PanicsOnBadValues(t *testing.T) {
	ctx := testContext()

	assert.Panics(t, func() { MustGetEnvAsString(ctx, "ORIGENES_TEST_UNSET_VARIABLE") })

	t.Setenv("ORIGENES_TEST_VALUE", "soon")
	assert.Panics(t, func() { MustGetEnvAsInt(ctx, "ORIGENES_TEST_VALUE") })
	assert.Panics(t, func() { MustGetEnvAsBoolean(ctx, "ORIGENES_TEST_VALUE") })
	assert.Panics(t, func() { MustGetEnvAsDuration(ctx, "ORIGENES_TEST_VALUE") })
}

func TestMustGetEnv_Parses(t *testing.T) {
	ctx := testContext()

	t.Setenv("ORIGENES_TEST_INT", "30")
	t.Setenv("ORIGENES_TEST_BOOL", "TRUE")
	t.Setenv("ORIGENES_TEST_DURATION", "90s")

	assert.Equal(t, 30, MustGetEnvAsInt(ctx, "ORIGENES_TEST_INT"))
	assert.True(t, MustGetEnvAsBoolean(ctx, "ORIGENES_TEST_BOOL"))
	assert.Equal(t, 90*time.Second, MustGetEnvAsDuration(ctx, "ORIGENES_TEST_DURATION"))
}

func TestGetEnvAsStringOrDefault(t *testing.T) {
	assert.Equal(t, "null", GetEnvAsStringOrDefault("ORIGENES_TEST_UNSET_VARIABLE", "null"))

	t.Setenv("ORIGENES_TEST_DRIVER", "yahoo")
	assert.Equal(t, "yahoo", GetEnvAsStringOrDefault("ORIGENES_TEST_DRIVER", "null"))
}
