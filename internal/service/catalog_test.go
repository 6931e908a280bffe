//go:build !integration

package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/guttosm/drone-fulfillment/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	store := NewInventoryStore()
	require.NoError(t, store.Initialize(DefaultCatalog))
	assert.Len(t, store.Snapshot(), 13)

	rec, err := store.Lookup(10)
	require.NoError(t, err)
	assert.Equal(t, 300, rec.MassG)
}

func TestLoadCatalogFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		return path
	}

	tests := []struct {
		name    string
		path    string
		want    []model.CatalogEntry
		wantErr string
	}{
		{
			name: "valid file",
			path: write("catalog.json", `[{"product_id":0,"product_name":"RBC A+ Adult","mass_g":700},{"product_id":10,"product_name":"FFP A+","mass_g":300}]`),
			want: []model.CatalogEntry{
				{ProductID: 0, ProductName: "RBC A+ Adult", MassG: 700},
				{ProductID: 10, ProductName: "FFP A+", MassG: 300},
			},
		},
		{
			name:    "missing file",
			path:    filepath.Join(dir, "missing.json"),
			wantErr: "read catalog",
		},
		{
			name:    "malformed json",
			path:    write("broken.json", `{"product_id":`),
			wantErr: "parse catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := LoadCatalogFile(tt.path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, entries)
		})
	}
}
