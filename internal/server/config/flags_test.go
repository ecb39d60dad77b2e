package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd", "-a", "127.0.0.1:9090", "-t", "30", "-r", "1440"}, expectPanic: false,
			expected: &Config{EndpointAddr: "127.0.0.1:9090", AccessTokenValidityDuration: 30 * time.Minute, RefreshTokenValidityDuration: 1440 * time.Minute}},
		{name: "Test2 S3 options", args: []string{"cmd", "-u", "root", "-p", "secret", "-b", "scans", "-g", "eu-west-1", "-e", "http://127.0.0.1:9000/"}, expectPanic: false,
			expected: &Config{S3RootUser: "root", S3RootPassword: "secret", S3Bucket: "scans", S3Region: "eu-west-1", S3BaseEndpoint: "http://127.0.0.1:9000/"}},
		{name: "Test3 incorrect token validity", args: []string{"cmd", "-a", "127.0.0.1:9090", "-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {

				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
