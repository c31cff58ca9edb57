package replvars

import (
	"context"
	"strings"

	"github.com/itsatony/go-replvars/internal"
	"go.uber.org/zap"
)

// PostVariables resolves the post/page tokens. Each token is bound to one
// of its methods; Register installs that table into a Registry.
type PostVariables struct {
	source    EntitySource
	cfg       *config
	formatter DateFormatter
	logger    *zap.Logger
}

// NewPostVariables creates post resolvers backed by source. A nil source
// makes every lookup beyond the snapshot report no value.
func NewPostVariables(source EntitySource, opts ...Option) *PostVariables {
	if source == nil {
		source = noopSource{}
	}
	cfg := newConfig(opts)
	return &PostVariables{
		source:    source,
		cfg:       cfg,
		formatter: cfg.formatter,
		logger:    cfg.logger,
	}
}

type tokenBinding struct {
	name     string
	meta     TokenMeta
	resolver Resolver
}

// bindings is the dispatch table: token name to resolver method.
// rc is only used to compute listing examples.
func (v *PostVariables) bindings(ctx context.Context, rc *ResolutionContext) []tokenBinding {
	ex := v.examples(ctx, rc)
	return []tokenBinding{
		{TokenTitle, TokenMeta{DisplayName: DisplayTitle, Description: DescTitle, Example: ex[TokenTitle]}, v.Title},
		{TokenParentTitle, TokenMeta{DisplayName: DisplayParentTitle, Description: DescParentTitle, Example: ExampleParentTitle}, v.ParentTitle},
		{TokenExcerpt, TokenMeta{DisplayName: DisplayExcerpt, Description: DescExcerpt, Example: ex[TokenExcerpt]}, v.Excerpt},
		{TokenExcerptOnly, TokenMeta{DisplayName: DisplayExcerpt, Description: DescExcerptOnly, Example: ex[TokenExcerptOnly]}, v.ExcerptOnly},
		{TokenDate, TokenMeta{DisplayName: DisplayDate, Description: DescDate, Example: ex[TokenDate]}, v.Date},
		{TokenModified, TokenMeta{DisplayName: DisplayModified, Description: DescModified, Example: ex[TokenModified]}, v.Modified},
		{TokenDateArgs, TokenMeta{DisplayName: DisplayDateArgs, Description: DescDateArgs, Example: ex[TokenDateArgs], ArgSyntax: ArgSyntaxDate}, v.Date},
		{TokenModifiedArgs, TokenMeta{DisplayName: DisplayModifiedArgs, Description: DescModifiedArgs, Example: ex[TokenModifiedArgs], ArgSyntax: ArgSyntaxMod}, v.Modified},
		{TokenCategory, TokenMeta{DisplayName: DisplayCategory, Description: DescCategory, Example: ex[TokenCategory]}, v.Category},
		{TokenCategories, TokenMeta{DisplayName: DisplayCategories, Description: DescCategories, Example: ex[TokenCategories]}, v.Categories},
		{TokenCategoriesArgs, TokenMeta{DisplayName: DisplayCategoriesArgs, Description: DescCategoriesArgs, Example: ex[TokenCategories], ArgSyntax: ArgSyntaxCats}, v.Categories},
		{TokenTag, TokenMeta{DisplayName: DisplayTag, Description: DescTag, Example: ex[TokenTag]}, v.Tag},
		{TokenTags, TokenMeta{DisplayName: DisplayTags, Description: DescTags, Example: ex[TokenTags]}, v.Tags},
		{TokenTagsArgs, TokenMeta{DisplayName: DisplayTagsArgs, Description: DescTagsArgs, Example: ex[TokenTagsArgs], ArgSyntax: ArgSyntaxTags}, v.Tags},
	}
}

// Register installs every post token into reg. rc, which may be nil,
// supplies the live values shown as listing examples.
func (v *PostVariables) Register(ctx context.Context, reg *Registry, rc *ResolutionContext) error {
	for _, b := range v.bindings(ctx, rc) {
		if err := reg.Register(b.name, b.meta, b.resolver); err != nil {
			return err
		}
	}
	return nil
}

// examples computes listing examples: the live value where one exists,
// otherwise a placeholder. Dates show the post date on edit screens and the
// current time elsewhere.
func (v *PostVariables) examples(ctx context.Context, rc *ResolutionContext) map[string]string {
	if rc == nil {
		rc = NewResolutionContext(nil, nil, Flags{}, Archive{})
	}
	live := func(fn Resolver, fallback string) string {
		if s, ok := fn(ctx, rc, NoArgs()); ok && s != "" {
			return s
		}
		return fallback
	}

	now := v.cfg.clock()
	siteFormat := v.formatter.DefaultFormat()
	dateExample := v.formatter.Format(siteFormat, now)
	modifiedExample := dateExample
	excerptOnly := ExampleExcerptOnly
	if rc.Flags().IsEditScreen {
		if t, ok := rc.PublishedAt(); ok {
			dateExample = v.formatter.Format(siteFormat, t)
		}
		if t, ok := rc.ModifiedAt(); ok {
			modifiedExample = v.formatter.Format(siteFormat, t)
		}
		if excerpt := rc.Field(FieldExcerpt); excerpt != "" {
			excerptOnly = excerpt
		}
	}
	argsExample := v.formatter.Format(DefaultArgsDateStyle, now)

	return map[string]string{
		TokenTitle:        live(v.Title, ""),
		TokenExcerpt:      live(v.Excerpt, ""),
		TokenExcerptOnly:  excerptOnly,
		TokenDate:         dateExample,
		TokenModified:     modifiedExample,
		TokenDateArgs:     argsExample,
		TokenModifiedArgs: argsExample,
		TokenCategory:     live(v.Category, ExampleCategory),
		TokenCategories:   live(v.Categories, ExampleCategories),
		TokenTag:          live(v.Tag, ExampleTag),
		TokenTags:         live(v.Tags, ExampleTags),
		TokenTagsArgs:     live(v.Tags, ExampleTagsArgs),
	}
}

// Title returns the plural label on content-type archives (other than the
// shop page), else the unescaped post title.
func (v *PostVariables) Title(_ context.Context, rc *ResolutionContext, _ Arguments) (string, bool) {
	archive := rc.Archive()
	if archive.IsPostTypeArchive && !archive.IsShopPage && archive.PostTypeLabel != "" {
		return archive.PostTypeLabel, true
	}

	title := rc.Field(FieldTitle)
	if title == "" {
		return "", false
	}
	return internal.StripSlashes(title), true
}

// ParentTitle returns the parent's title on single views and editor screens.
func (v *PostVariables) ParentTitle(ctx context.Context, rc *ResolutionContext, _ Arguments) (string, bool) {
	flags := rc.Flags()
	onScreen := flags.IsSingular || flags.IsAdmin || flags.IsEditScreen
	parent := rc.ParentID()
	if !onScreen || parent == 0 {
		return "", false
	}

	title, err := v.source.Title(ctx, parent)
	if err != nil {
		v.logger.Warn(LogMsgSourceFailed, zap.Int64(LogFieldPostID, parent), zap.Error(err))
		return "", false
	}
	if title == "" {
		return "", false
	}
	return title, true
}

// ExcerptOnly returns the authored excerpt without markup, unless the post
// is password gated.
func (v *PostVariables) ExcerptOnly(ctx context.Context, rc *ResolutionContext, _ Arguments) (string, bool) {
	excerpt := rc.Field(FieldExcerpt)
	id := rc.ID()
	if excerpt == "" || id == 0 {
		return "", false
	}

	gated, err := v.source.PasswordRequired(ctx, id)
	if err != nil {
		// unknown gate state is treated as gated
		v.logger.Warn(LogMsgSourceFailed, zap.Int64(LogFieldPostID, id), zap.Error(err))
		return "", false
	}
	if gated {
		return "", false
	}
	return internal.StripTags(excerpt), true
}

// Excerpt returns the authored excerpt, falling back to the body with markup
// removed, truncated at a word boundary.
func (v *PostVariables) Excerpt(ctx context.Context, rc *ResolutionContext, args Arguments) (string, bool) {
	if excerpt, ok := v.ExcerptOnly(ctx, rc, args); ok {
		return excerpt, true
	}

	content := rc.Field(FieldContent)
	if content == "" {
		return "", false
	}
	text := internal.CollapseWhitespace(internal.StripTags(content))
	return internal.TruncateAtWord(text, v.cfg.excerptLength), true
}

// Date returns the publish date, or on date archives the archive day, month
// title or year, in that order. The raw argument clause, when present, is
// the format pattern.
func (v *PostVariables) Date(_ context.Context, rc *ResolutionContext, args Arguments) (string, bool) {
	format := v.dateFormat(args)
	if t, ok := rc.PublishedAt(); ok {
		return v.formatter.Format(format, t), true
	}

	archive := rc.Archive()
	if archive.Day != "" && !archive.Date.IsZero() {
		return v.formatter.Format(format, archive.Date), true
	}
	if archive.MonthTitle != "" {
		return archive.MonthTitle, true
	}
	if archive.Year != "" {
		return archive.Year, true
	}
	return "", false
}

// Modified returns the last-modified date.
func (v *PostVariables) Modified(_ context.Context, rc *ResolutionContext, args Arguments) (string, bool) {
	t, ok := rc.ModifiedAt()
	if !ok {
		return "", false
	}
	return v.formatter.Format(v.dateFormat(args), t), true
}

func (v *PostVariables) dateFormat(args Arguments) string {
	if format := strings.TrimSpace(args.Raw()); format != "" {
		return format
	}
	return v.formatter.DefaultFormat()
}

// Category returns the first category of the post, or the current archive
// category.
func (v *PostVariables) Category(ctx context.Context, rc *ResolutionContext, args Arguments) (string, bool) {
	if name := v.termList(ctx, rc, TaxonomyCategory, true, args); name != "" {
		return name, true
	}
	if name := rc.Field(FieldCategoryName); name != "" {
		return name, true
	}
	return "", false
}

// Categories returns the joined category list of the post.
func (v *PostVariables) Categories(ctx context.Context, rc *ResolutionContext, args Arguments) (string, bool) {
	list := v.termList(ctx, rc, TaxonomyCategory, false, args)
	return list, list != ""
}

// Tag returns the first tag of the post. Unlike Category there is no
// archive fallback.
func (v *PostVariables) Tag(ctx context.Context, rc *ResolutionContext, args Arguments) (string, bool) {
	name := v.termList(ctx, rc, TaxonomyPostTag, true, args)
	return name, name != ""
}

// Tags returns the joined tag list of the post.
func (v *PostVariables) Tags(ctx context.Context, rc *ResolutionContext, args Arguments) (string, bool) {
	list := v.termList(ctx, rc, TaxonomyPostTag, false, args)
	return list, list != ""
}
