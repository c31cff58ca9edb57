package replvars

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockToolStore(t *testing.T) (*PostgresToolStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	store := NewPostgresToolStoreFromDB(db, PostgresToolStoreConfig{})
	t.Cleanup(func() {
		mock.ExpectClose()
		_ = store.Close()
	})
	return store, mock
}

func TestPostgresToolStore_Defaults(t *testing.T) {
	store, _ := newMockToolStore(t)

	assert.Equal(t, DefaultTablePrefix, store.config.TablePrefix)
	assert.Equal(t, DefaultQueryTimeout, store.config.QueryTimeout)
	assert.Equal(t, PostgresDefaultMaxOpenConns, store.config.MaxOpenConns)
	assert.Equal(t, `"wp_options"`, store.table(TableOptions))
}

func TestPostgresToolStore_EmptyDSN(t *testing.T) {
	_, err := NewPostgresToolStore(PostgresToolStoreConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgPostgresEmptyDSN)
}

func TestPostgresToolStoreDriver_Open_EmptyDSN(t *testing.T) {
	_, err := OpenToolStore(ToolsConfig{Driver: StoreDriverNamePostgres})
	require.Error(t, err)
}

func TestPostgresToolStore_OptionNames(t *testing.T) {
	store, mock := newMockToolStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT option_name FROM "wp_options" WHERE option_name LIKE $1`)).
		WithArgs(`%\_transient\_rank\_math%`).
		WillReturnRows(sqlmock.NewRows([]string{"option_name"}).
			AddRow("_transient_rank_math_a").
			AddRow("_transient_rank_math_b"))

	names, err := store.OptionNames(context.Background(), TransientMarker)
	require.NoError(t, err)
	assert.Equal(t, []string{"_transient_rank_math_a", "_transient_rank_math_b"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresToolStore_OptionNames_QueryError(t *testing.T) {
	store, mock := newMockToolStore(t)
	boom := errors.New("boom")

	mock.ExpectQuery("SELECT option_name").WillReturnError(boom)

	_, err := store.OptionNames(context.Background(), "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), ErrMsgPostgresQueryFailed)
}

func TestPostgresToolStore_DeleteOption(t *testing.T) {
	store, mock := newMockToolStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "wp_options" WHERE option_name = $1`)).
		WithArgs(OptionSEOAnalysisResults).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.DeleteOption(context.Background(), OptionSEOAnalysisResults))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresToolStore_SetOption(t *testing.T) {
	store, mock := newMockToolStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "wp_options" (option_name, option_value) VALUES ($1, $2)`)).
		WithArgs(OptionReviewPosts, "[1,2]").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, store.SetOption(context.Background(), OptionReviewPosts, "[1,2]"))
	assert.NoError(t, mock.ExpectationsWereMet())

	err := store.SetOption(context.Background(), "", "v")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgStoreEmptyOptionName)
}

func TestPostgresToolStore_TruncateTables(t *testing.T) {
	store, mock := newMockToolStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`TRUNCATE TABLE "wp_rank_math_internal_links", "wp_rank_math_internal_meta"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.TruncateTables(context.Background(), TableInternalLinks, TableInternalMeta)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresToolStore_TruncateTables_RejectsHostTables(t *testing.T) {
	store, mock := newMockToolStore(t)

	err := store.TruncateTables(context.Background(), Table404Logs, "users")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgStoreUnknownTable)
	assert.NoError(t, mock.ExpectationsWereMet(), "no statement issued")
}

func TestPostgresToolStore_CustomPrefix(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := NewPostgresToolStoreFromDB(db, PostgresToolStoreConfig{TablePrefix: "site2_"})

	mock.ExpectExec(regexp.QuoteMeta(`TRUNCATE TABLE "site2_rank_math_404_logs"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.TruncateTables(context.Background(), Table404Logs))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresToolStore_PostsWithMeta(t *testing.T) {
	store, mock := newMockToolStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT post_id FROM "wp_postmeta" WHERE meta_key = $1 AND meta_value = $2`)).
		WithArgs(MetaKeyRichSnippet, SchemaReview).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}).AddRow(4).AddRow(9))

	ids, err := store.PostsWithMeta(context.Background(), MetaKeyRichSnippet, SchemaReview)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 9}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresToolStore_SetPostMeta_Update(t *testing.T) {
	store, mock := newMockToolStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "wp_postmeta" SET meta_value = $3`)).
		WithArgs(int64(4), MetaKeyRichSnippet, SchemaArticle).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, store.SetPostMeta(context.Background(), 4, MetaKeyRichSnippet, SchemaArticle))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresToolStore_SetPostMeta_Insert(t *testing.T) {
	store, mock := newMockToolStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "wp_postmeta"`)).
		WithArgs(int64(4), MetaKeySnippetArticleType, ArticleTypeBlogPosting).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "wp_postmeta" (post_id, meta_key, meta_value)`)).
		WithArgs(int64(4), MetaKeySnippetArticleType, ArticleTypeBlogPosting).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, store.SetPostMeta(context.Background(), 4, MetaKeySnippetArticleType, ArticleTypeBlogPosting))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresToolStore_SetPostMeta_RollbackOnError(t *testing.T) {
	store, mock := newMockToolStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "wp_postmeta"`)).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := store.SetPostMeta(context.Background(), 4, MetaKeyRichSnippet, SchemaArticle)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresToolStore_Closed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	store := NewPostgresToolStoreFromDB(db, PostgresToolStoreConfig{})

	mock.ExpectClose()
	require.NoError(t, store.Close())
	require.NoError(t, store.Close(), "close is idempotent")

	_, err = store.OptionNames(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgStoreClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresToolStore_WithRunner(t *testing.T) {
	store, mock := newMockToolStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`TRUNCATE TABLE "wp_rank_math_redirections", "wp_rank_math_redirections_cache"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	result, err := NewToolRunner(store).Run(context.Background(), ToolDeleteRedirections, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, MsgRedirectionsDeleted, result.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\_b\%c\\d`, escapeLike(`a_b%c\d`))
}
