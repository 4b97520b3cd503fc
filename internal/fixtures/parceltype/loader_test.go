package parceltype_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amirasaad/parcels/internal/fixtures/parceltype"
	"github.com/amirasaad/parcels/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParcelTypesCSV_Embedded(t *testing.T) {
	types, err := parceltype.LoadParcelTypesCSV("")
	require.NoError(t, err)
	assert.Equal(t, []domain.ParcelType{
		{ID: 1, Name: "clothing"},
		{ID: 2, Name: "electronics"},
		{ID: 3, Name: "misc"},
	}, types)
}

func TestLoadParcelTypesCSV_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,name\n7, fragile\n"), 0o600))

	types, err := parceltype.LoadParcelTypesCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []domain.ParcelType{{ID: 7, Name: "fragile"}}, types)
}

func TestLoadParcelTypesCSV_Invalid(t *testing.T) {
	testCases := []struct {
		desc    string
		content string
	}{
		{desc: "empty file", content: ""},
		{desc: "single column header", content: "id\n1\n"},
		{desc: "non numeric id", content: "id,name\nabc,clothing\n"},
		{desc: "zero id", content: "id,name\n0,clothing\n"},
		{desc: "empty name", content: "id,name\n1,\n"},
		{desc: "duplicate id", content: "id,name\n1,clothing\n1,misc\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "types.csv")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o600))

			_, err := parceltype.LoadParcelTypesCSV(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadParcelTypesCSV_MissingFile(t *testing.T) {
	_, err := parceltype.LoadParcelTypesCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
