package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diogo/symptrack/internal/models"
)

func TestSymptomsCmd(t *testing.T) {
	catalog := models.NewCatalog([]string{"headache", "cough", "high_fever", "skin_rash"})

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "all display names",
			args: []string{"symptoms"},
			want: "cough\nheadache\nhigh fever\nskin rash\n",
		},
		{
			name: "search is case-insensitive",
			args: []string{"symptoms", "--search", "HEAD"},
			want: "headache\n",
		},
		{
			name: "raw tokens",
			args: []string{"symptoms", "--raw", "-s", "h"},
			want: "cough\nheadache\nhigh_fever\nskin_rash\n",
		},
		{
			name: "no match",
			args: []string{"symptoms", "--search", "xyz"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(t)
			e.client.Catalog = catalog

			require.NoError(t, e.run(tt.args...))
			assert.Equal(t, tt.want, e.stdout.String())
		})
	}
}

func TestSymptomsCmd_SanitizesTokens(t *testing.T) {
	hostile := "x\x1b]0;pwned\x07_\x1b[2Jrash"

	for _, raw := range []bool{false, true} {
		e := newTestEnv(t)
		e.client.Catalog = models.NewCatalog([]string{hostile})

		args := []string{"symptoms"}
		if raw {
			args = append(args, "--raw")
		}
		require.NoError(t, e.run(args...))

		out := e.stdout.String()
		assert.NotContains(t, out, "\x1b")
		assert.NotContains(t, out, "\x07")
		assert.Contains(t, out, "rash")
	}
}

func TestSymptomsCmd_CountOnTTY(t *testing.T) {
	e := newTestEnv(t)
	e.tty = true
	e.client.Catalog = models.NewCatalog([]string{"headache", "cough"})

	require.NoError(t, e.run("symptoms", "--search", "cou"))
	assert.Equal(t, "1 of 2 symptoms\n", e.stderr.String())
}

func TestSymptomsCmd_Failure(t *testing.T) {
	e := newTestEnv(t)
	e.client.CatalogErr = errors.New("boom")

	err := e.run("symptoms")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load symptoms")
}
