// Package replvars expands replacement variables in SEO title and
// description templates.
//
// Templates reference variables between percent signs, optionally with an
// argument clause:
//
//	%title% | %categories(limit=2&separator= / )% | %date(F jS, Y)%
//
// # Basic Usage
//
// Build an expander over the post variables and expand a template against a
// resolution context:
//
//	rc := replvars.NewResolutionContext(nil, replvars.Fields{
//	    replvars.FieldID:    "42",
//	    replvars.FieldTitle: "Hello",
//	}, replvars.Flags{IsSingular: true}, replvars.Archive{})
//
//	exp, err := replvars.New(ctx, source, rc)
//	out := exp.Expand(ctx, "%title% - %category%", rc)
//
// # Resolution Rules
//
// Variables are matched longest name first, so %categories% never resolves
// as %category%. A variable whose resolver has no value expands to the empty
// string. Text that does not name a registered variable, including a lone
// percent sign, is left untouched. Expansion never fails.
//
// # Custom Variables
//
// Any function with the Resolver signature can be registered:
//
//	reg.MustRegister("sitename", replvars.TokenMeta{DisplayName: "Site Title"},
//	    func(ctx context.Context, rc *replvars.ResolutionContext, args replvars.Arguments) (string, bool) {
//	        return "Example Site", true
//	    })
//
// # Maintenance Tools
//
// ToolRunner dispatches the plugin's maintenance actions (clearing
// transients, truncating link, redirection and 404 tables, converting review
// schema) against a ToolStore. Stores are opened by driver name; "memory" and
// "postgres" are built in.
package replvars

import "context"

// New creates an expander whose registry holds every post variable. rc may
// be nil; when given it supplies the live examples shown in listings.
func New(ctx context.Context, source EntitySource, rc *ResolutionContext, opts ...Option) (*Expander, error) {
	reg := NewRegistry(newConfig(opts).logger)
	if err := NewPostVariables(source, opts...).Register(ctx, reg, rc); err != nil {
		return nil, err
	}
	return NewExpander(reg, opts...), nil
}
