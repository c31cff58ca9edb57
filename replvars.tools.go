package replvars

import (
	"context"
	"encoding/json"
	"strconv"

	"go.uber.org/zap"
)

// Tool ids
const (
	ToolClearTransients    = "clear_transients"
	ToolClearSEOAnalysis   = "clear_seo_analysis"
	ToolDeleteLinks        = "delete_links"
	ToolDeleteRedirections = "delete_redirections"
	ToolDeleteLog          = "delete_log"
	ToolConvertReview      = "convert_review"
)

// Plugin tables, unprefixed
const (
	TableInternalLinks     = "rank_math_internal_links"
	TableInternalMeta      = "rank_math_internal_meta"
	Table404Logs           = "rank_math_404_logs"
	TableRedirections      = "rank_math_redirections"
	TableRedirectionsCache = "rank_math_redirections_cache"
)

// PluginTables lists every table a tool may truncate.
var PluginTables = []string{
	TableInternalLinks,
	TableInternalMeta,
	Table404Logs,
	TableRedirections,
	TableRedirectionsCache,
}

// Option and post meta names
const (
	TransientMarker           = "_transient_rank_math"
	OptionSEOAnalysisResults  = "rank_math_seo_analysis_results"
	OptionReviewPosts         = "rank_math_review_posts"
	MetaKeyRichSnippet        = "rank_math_rich_snippet"
	MetaKeySnippetArticleType = "rank_math_snippet_article_type"
)

// Schema values used by the review conversion
const (
	SchemaReview           = "review"
	SchemaArticle          = "article"
	ArticleTypeBlogPosting = "BlogPosting"
)

// Tool result messages
const (
	MsgTransientsCleared    = "SEO transients cleared."
	MsgNoTransients         = "No SEO transients found."
	MsgSEOAnalysisDeleted   = "SEO Analysis data successfully deleted."
	MsgLinksDeleted         = "Internal Links successfully deleted."
	MsgRedirectionsDeleted  = "Redirection rules successfully deleted."
	MsgLogDeleted           = "404 Log successfully deleted."
	MsgNoReviewPosts        = "No review posts found."
	MsgReviewPostsConverted = " review posts updated."
)

// ToolDefinition describes a maintenance tool for listing.
type ToolDefinition struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	ButtonText  string `json:"button_text" yaml:"button_text"`
	// ConfirmText is shown before running; empty when no prompt is needed.
	ConfirmText string `json:"confirm_text,omitempty" yaml:"confirm_text,omitempty"`
	// Irreversible tools refuse to run unless the caller confirmed.
	Irreversible bool `json:"irreversible" yaml:"irreversible"`
}

// ToolResult is the outcome of a successful tool run.
type ToolResult struct {
	Message string `json:"message"`
}

// RunOptions carries per-invocation choices.
type RunOptions struct {
	Confirmed bool
}

// ReviewConverter picks the replacement schema and article type for a
// review post.
type ReviewConverter func(postID int64) (schemaType, articleType string)

// DefaultReviewConverter converts every review into a BlogPosting article.
func DefaultReviewConverter(int64) (string, string) {
	return SchemaArticle, ArticleTypeBlogPosting
}

// ToolOption configures a ToolRunner.
type ToolOption func(*ToolRunner)

// WithToolLogger sets the runner's logger.
func WithToolLogger(logger *zap.Logger) ToolOption {
	return func(r *ToolRunner) {
		r.logger = logger
	}
}

// WithReviewConverter overrides the review schema conversion.
func WithReviewConverter(fn ReviewConverter) ToolOption {
	return func(r *ToolRunner) {
		if fn != nil {
			r.converter = fn
		}
	}
}

type toolHandler func(ctx context.Context) (string, error)

// ToolRunner dispatches maintenance tool ids to their actions.
type ToolRunner struct {
	store     ToolStore
	logger    *zap.Logger
	converter ReviewConverter
	handlers  map[string]toolHandler
}

// NewToolRunner creates a runner over store.
func NewToolRunner(store ToolStore, opts ...ToolOption) *ToolRunner {
	r := &ToolRunner{
		store:     store,
		converter: DefaultReviewConverter,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	r.handlers = map[string]toolHandler{
		ToolClearTransients:    r.clearTransients,
		ToolClearSEOAnalysis:   r.clearSEOAnalysis,
		ToolDeleteLinks:        r.deleteLinks,
		ToolDeleteRedirections: r.deleteRedirections,
		ToolDeleteLog:          r.deleteLog,
		ToolConvertReview:      r.convertReview,
	}
	return r
}

var baseTools = []ToolDefinition{
	{
		ID:          ToolClearTransients,
		Title:       "SEO transients",
		Description: "This tool will clear all the transients created by the SEO plugin.",
		ButtonText:  "Clear transients",
	},
	{
		ID:          ToolClearSEOAnalysis,
		Title:       "Clear SEO analysis data",
		Description: "This tool will clear the SEO Analysis data.",
		ButtonText:  "Clear SEO Analysis",
	},
	{
		ID:          ToolDeleteLinks,
		Title:       "Delete Internal Links data",
		Description: "This option will delete ALL the Internal Links data.",
		ConfirmText: "Are you sure you want to delete Internal Links Data? This action is irreversible.",
		ButtonText:  "Delete Internal Links",
	},
	{
		ID:          ToolDeleteRedirections,
		Title:       "Delete Redirections rule",
		Description: "This option will delete ALL Redirection rules.",
		ConfirmText: "Are you sure you want to delete all the Redirection Rules? This action is irreversible.",
		ButtonText:  "Delete Redirections",
	},
	{
		ID:          ToolDeleteLog,
		Title:       "Delete 404 Log",
		Description: "This option will delete ALL 404 monitor log.",
		ConfirmText: "Are you sure you want to delete the 404 log? This action is irreversible.",
		ButtonText:  "Delete 404 Log",
	},
}

func convertReviewTool(count int) ToolDefinition {
	return ToolDefinition{
		ID:           ToolConvertReview,
		Title:        "Convert Review Schema into Article",
		Description:  "Converts every post using the Review schema type into an Article.",
		ConfirmText:  "Are you sure you want to convert " + strconv.Itoa(count) + " posts with review schema into new schema type? This action is irreversible.",
		ButtonText:   "Convert",
		Irreversible: true,
	}
}

// Tools lists the available tools. The review conversion is listed only
// while review posts exist.
func (r *ToolRunner) Tools(ctx context.Context) ([]ToolDefinition, error) {
	tools := make([]ToolDefinition, len(baseTools), len(baseTools)+1)
	copy(tools, baseTools)

	posts, err := r.reviewPosts(ctx)
	if err != nil {
		r.logger.Warn(LogMsgReviewPostsLookup, zap.Error(err))
		return nil, err
	}
	if len(posts) > 0 {
		tools = append(tools, convertReviewTool(len(posts)))
	}
	return tools, nil
}

// Run executes the tool with the given id. Unknown ids fail with an
// unsupported-action error; the review conversion requires confirmation.
func (r *ToolRunner) Run(ctx context.Context, id string, opts RunOptions) (ToolResult, error) {
	handler, ok := r.handlers[id]
	if !ok {
		r.logger.Warn(LogMsgToolUnsupported, zap.String(LogFieldTool, id))
		return ToolResult{}, NewUnsupportedToolError(id)
	}
	if id == ToolConvertReview && !opts.Confirmed {
		r.logger.Warn(LogMsgToolNotConfirmed, zap.String(LogFieldTool, id))
		return ToolResult{}, NewConfirmationRequiredError(id)
	}

	r.logger.Info(LogMsgToolRunStart, zap.String(LogFieldTool, id))
	msg, err := handler(ctx)
	if err != nil {
		r.logger.Error(LogMsgToolRunFailed, zap.String(LogFieldTool, id), zap.Error(err))
		return ToolResult{}, NewToolFailedError(id, err)
	}
	r.logger.Info(LogMsgToolRunComplete, zap.String(LogFieldTool, id))
	return ToolResult{Message: msg}, nil
}

func (r *ToolRunner) clearTransients(ctx context.Context) (string, error) {
	names, err := r.store.OptionNames(ctx, TransientMarker)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return MsgNoTransients, nil
	}
	for _, name := range names {
		if err := r.store.DeleteOption(ctx, name); err != nil {
			return "", err
		}
	}
	r.logger.Debug(LogMsgTransientsDeleted, zap.Int(LogFieldCount, len(names)))
	return MsgTransientsCleared, nil
}

func (r *ToolRunner) clearSEOAnalysis(ctx context.Context) (string, error) {
	if err := r.store.DeleteOption(ctx, OptionSEOAnalysisResults); err != nil {
		return "", err
	}
	return MsgSEOAnalysisDeleted, nil
}

func (r *ToolRunner) deleteLinks(ctx context.Context) (string, error) {
	if err := r.store.TruncateTables(ctx, TableInternalLinks, TableInternalMeta); err != nil {
		return "", err
	}
	return MsgLinksDeleted, nil
}

func (r *ToolRunner) deleteRedirections(ctx context.Context) (string, error) {
	if err := r.store.TruncateTables(ctx, TableRedirections, TableRedirectionsCache); err != nil {
		return "", err
	}
	return MsgRedirectionsDeleted, nil
}

func (r *ToolRunner) deleteLog(ctx context.Context) (string, error) {
	if err := r.store.TruncateTables(ctx, Table404Logs); err != nil {
		return "", err
	}
	return MsgLogDeleted, nil
}

func (r *ToolRunner) reviewPosts(ctx context.Context) ([]int64, error) {
	return r.store.PostsWithMeta(ctx, MetaKeyRichSnippet, SchemaReview)
}

func (r *ToolRunner) convertReview(ctx context.Context) (string, error) {
	posts, err := r.reviewPosts(ctx)
	if err != nil {
		return "", err
	}
	if len(posts) == 0 {
		return MsgNoReviewPosts, nil
	}

	for _, id := range posts {
		schema, articleType := r.converter(id)
		if err := r.store.SetPostMeta(ctx, id, MetaKeyRichSnippet, schema); err != nil {
			return "", err
		}
		if err := r.store.SetPostMeta(ctx, id, MetaKeySnippetArticleType, articleType); err != nil {
			return "", err
		}
	}

	converted, err := json.Marshal(posts)
	if err != nil {
		return "", err
	}
	if err := r.store.SetOption(ctx, OptionReviewPosts, string(converted)); err != nil {
		return "", err
	}
	return strconv.Itoa(len(posts)) + MsgReviewPostsConverted, nil
}
