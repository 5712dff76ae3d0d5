package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Role
		wantErr bool
	}{
		{name: "action", input: "action", want: RoleAction},
		{name: "connector_mixed_case", input: " Connector ", want: RoleConnector},
		{name: "modifier", input: "modifier", want: RoleModifier},
		{name: "subject", input: "subject", want: RoleSubject},
		{name: "unknown", input: "verb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown role")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, mustParse(t, got.String()), "String should round trip")
		})
	}
}

func mustParse(t *testing.T, s string) Role {
	t.Helper()
	r, err := ParseRole(s)
	require.NoError(t, err)
	return r
}

func TestTableLookup(t *testing.T) {
	source := map[string]Role{"Replace": RoleAction, "to": RoleConnector}
	table := NewTable(source)

	assert.Equal(t, RoleAction, table.Lookup("replace"), "keys are lowercased")
	assert.Equal(t, RoleConnector, table.Lookup("to"))
	assert.Equal(t, RoleSubject, table.Lookup("cat"), "unknown words are subjects")

	source["cat"] = RoleAction
	assert.Equal(t, RoleSubject, table.Lookup("cat"), "table must not alias the source map")

	var nilTable *Table
	assert.Equal(t, RoleSubject, nilTable.Lookup("replace"))
}

func TestWordSet(t *testing.T) {
	s := NewWordSet("And", " dan ", "")
	assert.True(t, s.Has("and"))
	assert.True(t, s.Has("dan"))
	assert.False(t, s.Has(""))
	assert.Len(t, s, 2)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, RoleAction, cfg.Vocabulary["ganti"])
	assert.Equal(t, RoleConnector, cfg.Vocabulary["menjadi"])
	assert.Equal(t, RoleConnector, cfg.Vocabulary["with"])
	assert.Equal(t, RoleModifier, cfg.Vocabulary["line"])
	assert.Contains(t, cfg.UndoWords, "ulang")
	assert.Zero(t, cfg.HistoryCapacity)
}
