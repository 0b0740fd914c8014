package ops

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"entrypoint/internal/catalog"
	"entrypoint/internal/posting"
	"entrypoint/internal/store"
)

// TestFullWorkflow exercises the complete posting lifecycle:
// create → get → list (filtered to the new posting) → export → reload
func TestFullWorkflow(t *testing.T) {
	dir := t.TempDir()
	st := store.Open(dir)
	defer st.Close()

	cat := catalog.Load(st, 0)

	// 1. Create
	in := validCreateInput()
	in.Stack = "Clojure"
	createOut, err := Create(cat, in)
	require.NoError(t, err)
	require.NotEmpty(t, createOut.ID)
	id := createOut.ID

	// 2. Get
	getOut, err := Get(cat, GetInput{ID: id})
	require.NoError(t, err)
	require.Equal(t, id, getOut.ID)
	require.True(t, getOut.UserCreated)
	require.Equal(t, "#/internship/"+id, getOut.ShareFragment)

	// 3. List filtered down to the new posting by its unique stack tag
	listOut, err := List(cat, ListInput{Stack: []string{"Clojure"}})
	require.NoError(t, err)
	require.Len(t, listOut.Items, 1)
	require.Equal(t, id, listOut.Items[0].ID)
	require.Equal(t, 1, listOut.Pagination.Total)

	// 4. Export the full merged catalog
	exportOut, err := Export(cat, ExportInput{Path: filepath.Join(dir, "out.json")})
	require.NoError(t, err)
	require.Equal(t, len(posting.Seed())+1, exportOut.Count)

	// 5. A fresh catalog over the same store sees the persisted posting
	require.NoError(t, st.Close())
	st2 := store.Open(dir)
	defer st2.Close()
	cat2 := catalog.Load(st2, 0)
	reloaded, err := Get(cat2, GetInput{ID: id})
	require.NoError(t, err)
	require.Equal(t, createOut.Company, reloaded.Company)
	require.True(t, reloaded.UserCreated)
}
