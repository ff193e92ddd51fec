package fastuuid

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID_DatabaseRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id, err := NewV5(TokenURL, "https://example.com/items/1")
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO items (id) VALUES ($1)")).
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows := sqlmock.NewRows([]string{"id"}).
		AddRow(id.String()).
		AddRow(id.Bytes())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM items")).WillReturnRows(rows)

	_, err = db.Exec("INSERT INTO items (id) VALUES ($1)", id)
	require.NoError(t, err)

	res, err := db.Query("SELECT id FROM items")
	require.NoError(t, err)
	defer res.Close()

	var scanned []UUID
	for res.Next() {
		var got UUID
		require.NoError(t, res.Scan(&got))
		scanned = append(scanned, got)
	}
	require.NoError(t, res.Err())
	assert.Equal(t, []UUID{id, id}, scanned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUUID_DatabaseScanInvalid(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("urn:uuid:" + sampleString))

	var got UUID
	err = db.QueryRow("SELECT id FROM items").Scan(&got)
	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.NoError(t, mock.ExpectationsWereMet())
}
