package timeouts_test

import (
	"testing"
	"time"

	"github.com/dalemusser/thirtydays/internal/app/system/timeouts"
)

func TestDefaults(t *testing.T) {
	timeouts.Reset()

	if got := timeouts.Ping(); got != timeouts.DefaultPing {
		t.Errorf("Ping() = %v, want %v", got, timeouts.DefaultPing)
	}
	if got := timeouts.Short(); got != timeouts.DefaultShort {
		t.Errorf("Short() = %v, want %v", got, timeouts.DefaultShort)
	}
	if got := timeouts.Medium(); got != timeouts.DefaultMedium {
		t.Errorf("Medium() = %v, want %v", got, timeouts.DefaultMedium)
	}
}

func TestConfigure_ZeroValuesIgnored(t *testing.T) {
	timeouts.Reset()
	t.Cleanup(timeouts.Reset)

	timeouts.Configure(timeouts.Config{Short: 20 * time.Second})

	if got := timeouts.Short(); got != 20*time.Second {
		t.Errorf("Short() = %v, want 20s", got)
	}
	if got := timeouts.Ping(); got != timeouts.DefaultPing {
		t.Errorf("Ping() = %v, want default (zero value must be ignored)", got)
	}
}

func TestConfigureFromEnv(t *testing.T) {
	timeouts.Reset()
	t.Cleanup(timeouts.Reset)

	t.Setenv("TIMEOUT_PING", "750ms")
	t.Setenv("TIMEOUT_SHORT", "nonsense")

	if n := timeouts.ConfigureFromEnv(); n != 1 {
		t.Errorf("ConfigureFromEnv() = %d, want 1", n)
	}
	if got := timeouts.Ping(); got != 750*time.Millisecond {
		t.Errorf("Ping() = %v, want 750ms", got)
	}
	if got := timeouts.Short(); got != timeouts.DefaultShort {
		t.Errorf("Short() = %v, want default (invalid value ignored)", got)
	}
}
