package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const chromeWindows = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

func TestClassifyCmd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "json from args",
			args: []string{"classify", chromeWindows},
			want: `{"$browser":"Chrome","$browser_version":91,"$os":"Windows"}` + "\n",
		},
		{
			name: "text from args",
			args: []string{"classify", "-f", "text", chromeWindows, "curl/8.4.0"},
			want: "Chrome 91 (Windows)\nUnknown client\n",
		},
		{
			name:  "stdin skips blank lines",
			stdin: "\n" + chromeWindows + "\n\n  \ncurl/8.4.0\n",
			args:  []string{"classify"},
			want:  `{"$browser":"Chrome","$browser_version":91,"$os":"Windows"}` + "\n{}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestClassifyCmd_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "", "classify", "--format", "xml", chromeWindows)
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnknownFormat)
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "uafields "+Version)
	assert.Contains(t, out, "Go Version:")

	out, err = execute(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, "uafields "+Version+"\n", out)
}

func TestServeCmd_RejectsArgs(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "", "serve", "extra")
	require.Error(t, err)
}
