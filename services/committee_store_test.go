package services

import (
	"database/sql/driver"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitteeListActiveOrdersByDisplayOrderThenID(t *testing.T) {
	memberColumns := []string{"member_id", "name", "display_order", "is_active"}

	steps := []*scriptStep{
		{
			query:   regexp.MustCompile(`SELECT count\(\*\) FROM .committee_members. WHERE is_active = \? AND delete_at IS NULL`),
			args:    []driver.Value{true},
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(3)}},
		},
		{
			// The tiebreak on member_id is what keeps re-listing after a
			// display_order edit deterministic.
			query:   regexp.MustCompile(`SELECT \* FROM .committee_members. WHERE is_active = \? AND delete_at IS NULL ORDER BY display_order ASC, member_id ASC LIMIT`),
			columns: memberColumns,
			rows: [][]driver.Value{
				{int64(4), "Prof. C. Menon", int64(1), true},
				{int64(2), "Dr. A. Rao", int64(2), true},
				{int64(7), "Dr. B. Iyer", int64(2), true},
			},
		},
	}

	gormDB, script, cleanup := newScriptedDB(t, steps)
	defer cleanup()

	members, total, err := NewCommitteeStore(gormDB).ListActive("", 0, 12)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	require.Len(t, members, 3)
	assert.Equal(t, 4, members[0].MemberID)
	assert.Equal(t, 2, members[1].MemberID)
	assert.Equal(t, 7, members[2].MemberID)

	require.NoError(t, script.verifyComplete())
}

func TestCommitteeListAllFiltersByCategory(t *testing.T) {
	steps := []*scriptStep{
		{
			query:   regexp.MustCompile(`SELECT \* FROM .committee_members. WHERE delete_at IS NULL AND category = \? ORDER BY display_order ASC, member_id ASC`),
			args:    []driver.Value{"advisory"},
			columns: []string{"member_id", "name", "display_order", "is_active"},
			rows: [][]driver.Value{
				{int64(9), "Prof. D. Nair", int64(1), false},
			},
		},
	}

	gormDB, script, cleanup := newScriptedDB(t, steps)
	defer cleanup()

	members, err := NewCommitteeStore(gormDB).ListAll("advisory")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, 9, members[0].MemberID)
	assert.False(t, members[0].IsActive)

	require.NoError(t, script.verifyComplete())
}
