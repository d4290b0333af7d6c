package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		owned []string
		want  []string
	}{
		{
			name:  "separate value",
			args:  []string{"-c", "conf.yaml", "-d", "site.db"},
			owned: []string{"-c"},
			want:  []string{"-c", "conf.yaml"},
		},
		{
			name:  "equals form",
			args:  []string{"-config=alt.json", "-d", "site.db"},
			owned: []string{"-c", "-config"},
			want:  []string{"-config=alt.json"},
		},
		{
			name:  "positional arguments are skipped",
			args:  []string{"repl", "-l", "debug", "extra"},
			owned: []string{"-l"},
			want:  []string{"-l", "debug"},
		},
		{
			name:  "owned flag at end without value",
			args:  []string{"-d"},
			owned: []string{"-d"},
			want:  []string{"-d"},
		},
		{
			name:  "next token is another flag",
			args:  []string{"-d", "-l", "warn"},
			owned: []string{"-d", "-l"},
			want:  []string{"-d", "-l", "warn"},
		},
		{
			name:  "nothing owned",
			args:  []string{"-x", "1"},
			owned: []string{"-c"},
			want:  []string{},
		},
		{
			name:  "repeated flag keeps order",
			args:  []string{"-t", "5", "-t", "10"},
			owned: []string{"-t"},
			want:  []string{"-t", "5", "-t", "10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.owned))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	t.Run("short", func(t *testing.T) {
		assert.Equal(t, "/etc/sitekeeper.yaml", ConfigFileFlag([]string{"-c", "/etc/sitekeeper.yaml"}))
	})

	t.Run("long with equals", func(t *testing.T) {
		assert.Equal(t, "cfg.json", ConfigFileFlag([]string{"-d", "x.db", "-config=cfg.json"}))
	})

	t.Run("absent", func(t *testing.T) {
		assert.Empty(t, ConfigFileFlag([]string{"-d", "x.db"}))
	})

	t.Run("last wins", func(t *testing.T) {
		assert.Equal(t, "2.json", ConfigFileFlag([]string{"-c", "1.json", "-config", "2.json"}))
	})
}
