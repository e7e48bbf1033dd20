// pkg/types/types_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test move records and the JSON shape of command results

package types_test

import (
	"encoding/json"
	"testing"

	"github.com/arthur-debert/sortdir/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveRecord_Reversed(t *testing.T) {
	m := types.MoveRecord{OldPath: "/d/a.txt", NewPath: "/d/txt/a.txt"}

	assert.Equal(t, types.MoveRecord{OldPath: "/d/txt/a.txt", NewPath: "/d/a.txt"}, m.Reversed())
	assert.Equal(t, m, m.Reversed().Reversed())
}

func TestOrganizeResult_OrphanedLogOmittedWhenEmpty(t *testing.T) {
	data, err := json.Marshal(types.OrganizeResult{BaseDirectory: "/d"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "orphanedLog")

	data, err = json.Marshal(types.OrganizeResult{BaseDirectory: "/d", OrphanedLog: "/state/x.log"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"orphanedLog":"/state/x.log"`)
}
