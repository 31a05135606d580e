package store

import (
	"fmt"
	"testing"

	"lostfound_portal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_SnapshotsReporter(t *testing.T) {
	gdb := setupDB(t)
	users := NewUserStore(gdb)
	items := NewItemStore(gdb)

	alice, err := users.Register("Alice", "CS101", "CSE", "alice@x.com", "secret1")
	require.NoError(t, err)

	item, err := items.Create(domain.ItemTypeLost, "Keys", "blue keychain", alice)
	require.NoError(t, err)
	require.NotZero(t, item.ID)
	assert.Equal(t, "lost", item.ItemType)
	assert.Equal(t, "Keys", item.ItemName)
	assert.Equal(t, "blue keychain", item.Description)
	assert.Equal(t, "Alice", item.StudentName)
	assert.Equal(t, "CS101", item.RollNo)
	assert.Equal(t, "CSE", item.Branch)
}

func TestListAll_OldestFirst(t *testing.T) {
	gdb := setupDB(t)
	users := NewUserStore(gdb)
	items := NewItemStore(gdb)

	alice, err := users.Register("Alice", "CS101", "CSE", "alice@x.com", "secret1")
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		_, err := items.Create(domain.ItemTypeFound, fmt.Sprintf("item-%d", i), "d", alice)
		require.NoError(t, err)
	}

	all, err := items.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, item := range all {
		assert.Equal(t, fmt.Sprintf("item-%d", i+1), item.ItemName)
	}
}

func TestListAll_Empty(t *testing.T) {
	items := NewItemStore(setupDB(t))

	all, err := items.ListAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}
