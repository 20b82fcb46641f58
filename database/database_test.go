package database

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements_Basic(t *testing.T) {
	stmts := splitStatements("CREATE TABLE a (id TEXT);\nCREATE TABLE b (id TEXT);")
	require.Len(t, stmts, 2)
	assert.Equal(t, "CREATE TABLE a (id TEXT)", stmts[0])
}

func TestSplitStatements_SemicolonInStringLiteral(t *testing.T) {
	stmts := splitStatements("INSERT INTO t VALUES ('a;b');INSERT INTO t VALUES ('c')")
	require.Len(t, stmts, 2)
	assert.Equal(t, "INSERT INTO t VALUES ('a;b')", stmts[0])
}

func TestSplitStatements_EscapedQuote(t *testing.T) {
	stmts := splitStatements("INSERT INTO t VALUES ('it''s; fine');")
	require.Len(t, stmts, 1)
	assert.Contains(t, stmts[0], "it''s; fine")
}

// Yorum metnindeki ';' statement sınırı değildir, içindeki tırnaklar da
// parser durumunu bozmaz.
func TestSplitStatements_CommentWithSemicolon(t *testing.T) {
	sql := "-- tek satır ('system'); devamı aynı yorumun parçası\n" +
		"CREATE TABLE settings (id TEXT);\n" +
		"CREATE TABLE other (id TEXT); -- sondaki yorum; yine yorum"
	stmts := splitStatements(sql)
	require.Len(t, stmts, 2)
	assert.Equal(t, "CREATE TABLE settings (id TEXT)", stmts[0])
	assert.Equal(t, "CREATE TABLE other (id TEXT)", stmts[1])
}

func TestSplitStatements_CommentOnlyInput(t *testing.T) {
	assert.Empty(t, splitStatements("-- sadece yorum; başka bir şey yok\n"))
}

// Gömülü migration'ların tamamı sıfırdan bir dosyaya uygulanabilmeli —
// 001_init.sql yorum satırları ';' ve tırnak içerir, splitter bunları yemeli.
func TestNew_AppliesEmbeddedMigrations(t *testing.T) {
	migrations, err := fs.Sub(EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	dbPath := filepath.Join(t.TempDir(), "boot.db")
	db, err := New(dbPath, migrations)
	require.NoError(t, err)
	defer db.Close()

	// Şema kuruldu mu: users boş, seed içerik yüklü
	var userCount int
	require.NoError(t, db.Conn.QueryRow("SELECT COUNT(*) FROM users").Scan(&userCount))
	assert.Equal(t, 0, userCount)

	var contentCount int
	require.NoError(t, db.Conn.QueryRow("SELECT COUNT(*) FROM site_content").Scan(&contentCount))
	assert.Greater(t, contentCount, 0)

	// settings tablosu (yorum satırının hemen altındaki CREATE) kuruldu mu
	var settingsTable int
	require.NoError(t, db.Conn.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='settings'",
	).Scan(&settingsTable))
	assert.Equal(t, 1, settingsTable)
}

// Aynı dosyaya ikinci açılış migration'ları tekrar çalıştırmamalı.
func TestNew_Idempotent(t *testing.T) {
	migrations, err := fs.Sub(EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	dbPath := filepath.Join(t.TempDir(), "boot.db")
	db, err := New(dbPath, migrations)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = New(dbPath, migrations)
	require.NoError(t, err)
	defer db.Close()

	var applied int
	require.NoError(t, db.Conn.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied))
	assert.Equal(t, 2, applied)
}
