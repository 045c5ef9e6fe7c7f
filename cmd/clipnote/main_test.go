package main

import (
	"testing"
)

func TestGetEnvReturnsValueWhenSet(t *testing.T) {
	const key = "TEST_GETENV_SET"

	t.Setenv(key, "custom-value")

	if got := getEnv(key, "fallback"); got != "custom-value" {
		t.Errorf("expected %q, got %q", "custom-value", got)
	}
}

func TestGetEnvReturnsFallbackWhenUnsetOrEmpty(t *testing.T) {
	if got := getEnv("TEST_GETENV_UNSET", "default-value"); got != "default-value" {
		t.Errorf("expected fallback, got %q", got)
	}

	t.Setenv("TEST_GETENV_EMPTY", "")
	if got := getEnv("TEST_GETENV_EMPTY", "default-value"); got != "default-value" {
		t.Errorf("expected fallback for empty env var, got %q", got)
	}
}
