package utils

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yungbote/feedback-backend/internal/logger"
)

func observedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return &logger.Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

func TestGetEnvDefaults(t *testing.T) {
	log, _ := observedLogger()

	if got := GetEnv("UNSET_TEST_VAR", "fallback", log); got != "fallback" {
		t.Fatalf("GetEnv default: got %q", got)
	}

	t.Setenv("SET_TEST_VAR", "value")
	if got := GetEnv("SET_TEST_VAR", "fallback", log); got != "value" {
		t.Fatalf("GetEnv set: got %q", got)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	log, _ := observedLogger()

	if got := GetEnvAsInt("UNSET_TEST_INT", 42, log); got != 42 {
		t.Fatalf("GetEnvAsInt default: got %d", got)
	}

	t.Setenv("SET_TEST_INT", "7")
	if got := GetEnvAsInt("SET_TEST_INT", 42, log); got != 7 {
		t.Fatalf("GetEnvAsInt set: got %d", got)
	}

	t.Setenv("BAD_TEST_INT", "not-a-number")
	if got := GetEnvAsInt("BAD_TEST_INT", 42, log); got != 42 {
		t.Fatalf("GetEnvAsInt unparsable: got %d", got)
	}
}

func TestGetEnvRedactsSensitiveValues(t *testing.T) {
	log, logs := observedLogger()

	t.Setenv("POSTGRES_PASSWORD", "hunter2")
	if got := GetEnv("POSTGRES_PASSWORD", "", log); got != "hunter2" {
		t.Fatalf("GetEnv must still return the real value, got %q", got)
	}

	for _, entry := range logs.All() {
		for _, field := range entry.Context {
			if strings.Contains(field.String, "hunter2") {
				t.Fatalf("credential value leaked into log field %q", field.Key)
			}
		}
		if strings.Contains(entry.Message, "hunter2") {
			t.Fatalf("credential value leaked into log message %q", entry.Message)
		}
	}

	// Non-sensitive values still log for debuggability.
	log2, logs2 := observedLogger()
	t.Setenv("POSTGRES_HOST", "db.internal")
	_ = GetEnv("POSTGRES_HOST", "", log2)
	found := false
	for _, entry := range logs2.All() {
		for _, field := range entry.Context {
			if field.String == "db.internal" {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("expected non-sensitive value to be logged")
	}
}
