package config

import (
	"flag"
	"os"
	"testing"
)

var configEnvKeys = []string{
	"CONFIG",
	"APP_SESSION_COOKIE", "APP_TOKEN", "APP_LOGIN", "APP_LOGOUT", "APP_LOG_FILE",
	"APP_TOKEN_SIGN_KEY", "APP_TOKEN_ISSUER", "APP_TOKEN_DURATION",
	"STORAGE_DB_DSN",
	"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT",
	"ADAPTER_ADDRESS", "ADAPTER_REQUEST_TIMEOUT",
}

// setEnvVars clears every config key and then sets the given ones for the
// duration of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

// withArgs replaces os.Args and flag.CommandLine for the duration of the test.
func withArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	oldCommandLine := flag.CommandLine
	t.Cleanup(func() {
		os.Args = oldArgs
		flag.CommandLine = oldCommandLine
	})

	os.Args = append([]string{"cmd"}, args...)
	flag.CommandLine = flag.NewFlagSet("cmd", flag.ContinueOnError)
}
