package bulkupdate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadRows(t *testing.T) {
	in := "organization,customfieldvalue\nExample IT,ABC123\n,X\nTech Corp,\n"
	rows, err := ReadRows(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, Row{Line: 1, Organization: "Example IT", Value: "ABC123"}, rows[0])
	require.Equal(t, Row{Line: 2, Organization: "", Value: "X"}, rows[1])
	require.Equal(t, Row{Line: 3, Organization: "Tech Corp", Value: ""}, rows[2])
}

func TestReadRowsRejectsWrongHeader(t *testing.T) {
	_, err := ReadRows(strings.NewReader("org,value\na,b\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "organization,customfieldvalue")
}

func TestReadRowsEmptyFile(t *testing.T) {
	_, err := ReadRows(strings.NewReader(""))
	require.Error(t, err)
}
