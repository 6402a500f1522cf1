package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"encode title", []string{"encode", "Help:Sand box/Sub"}, "Help:Sand_box/Sub\n"},
		{"encode raw", []string{"encode", "--raw", "a b&c~"}, "a%20b%26c%7E\n"},
		{"url default page", []string{"url"}, "/wiki/Main_Page\n"},
		{"url with params", []string{"url", "Sand box", "-p", "action=edit", "-p", "oldid=7"}, "/wiki/Sand_box?action=edit&oldid=7\n"},
		{"script index", []string{"script"}, "/w/index.php\n"},
		{"script api", []string{"script", "api"}, "/w/api.php\n"},
		{"param", []string{"param", "action", "/w/index.php?title=Foo&action=edit#top"}, "edit\n"},
		{"validate email", []string{"validate", "email", "user@example.org"}, "valid\n"},
		{"validate block", []string{"validate", "ipv4", "10.0.0.0/8", "--block"}, "valid\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestAccessKeyCmd(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "accesskey", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ctrl-option-\t"), out)

	out, err = execute(t, "accesskey", "curl/8.0")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "alt-\t"), out)
}

func TestCommandErrors(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "url", "Foo", "-p", "novalue")
	require.Error(t, err)

	_, err = execute(t, "validate", "url", "http://example.org")
	require.Error(t, err)

	_, err = execute(t, "param", "missing", "/w/index.php?a=b")
	var exit exitError
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, 1, exit.code)
}

func TestRun_ExitCodes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, 0, run(ctx, []string{"validate", "ip", "::1"}))
	assert.Equal(t, exitInvalid, run(ctx, []string{"validate", "ipv4", "10.0.0.0/8"}))
	assert.Equal(t, exitIndeterminate, run(ctx, []string{"validate", "email", ""}))
	assert.Equal(t, 1, run(ctx, []string{"validate", "dns", "x"}))
	assert.Equal(t, 1, run(ctx, []string{"no-such-command"}))
}
