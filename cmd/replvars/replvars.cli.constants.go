package main

// Command names
const (
	CmdNameRender  = "render"
	CmdNameAnalyze = "analyze"
	CmdNameTokens  = "tokens"
	CmdNameTools   = "tools"
	CmdNameList    = "list"
	CmdNameRun     = "run"
	CmdNameVersion = "version"
)

// Flag names - long form
const (
	FlagTemplate = "template"
	FlagSnapshot = "snapshot"
	FlagOutput   = "output"
	FlagFormat   = "format"
	FlagStrict   = "strict"
	FlagConfig   = "config"
	FlagVerbose  = "verbose"
	FlagYes      = "yes"
	FlagDSN      = "dsn"
	FlagDriver   = "driver"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagSnapshotShort = "s"
	FlagOutputShort   = "o"
	FlagFormatShort   = "F"
	FlagConfigShort   = "c"
	FlagVerboseShort  = "v"
	FlagYesShort      = "y"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = OutputFormatText
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgMissingTemplate   = "template source required"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgLoadConfigFailed  = "failed to load configuration"
	ErrMsgLoadSnapshot      = "failed to load post snapshot"
	ErrMsgSetupFailed       = "failed to set up variables"
	ErrMsgOpenStoreFailed   = "failed to open tool store"
	ErrMsgToolFailed        = "tool run failed"
	ErrMsgUnknownTokens     = "template references unknown variables"
	ErrMsgLoggerFailed      = "failed to create logger"
)

// Help text
const (
	CLIName  = "replvars"
	CLIShort = "SEO replacement variable CLI"
	CLILong  = `replvars expands %variable% templates for SEO titles and descriptions
and runs the plugin maintenance tools.`

	RenderShort   = "Expand a template against a post snapshot"
	RenderExample = `  replvars render -t title.txt -s post.yaml
  echo '%title% | %categories(limit=2)%' | replvars render -t - -s post.yaml`

	AnalyzeShort   = "List the variables a template references without expanding it"
	AnalyzeExample = `  replvars analyze -t title.txt
  replvars analyze -t title.txt --strict -F json`

	TokensShort  = "List the registered variables"
	ToolsShort   = "List and run maintenance tools"
	ToolsList    = "List the available tools"
	ToolsRun     = "Run a tool by id"
	VersionShort = "Show version information"
)

// Text output formats
const (
	AnalyzeTextValid      = "Template is valid"
	AnalyzeTextRefFormat  = "  %s at line %d, column %d%s\n"
	AnalyzeTextUnknownTag = " (unknown)"
	AnalyzeTextSummary    = "%d reference(s), %d unknown\n"
	TokensTextFormat      = "%-20s %-30s %s\n"
	ToolsTextFormat       = "%-22s %s\n"
	ToolsTextConfirm      = "%-22s   confirm: %s\n"
	WarningPrefix         = "warning: "
)

// Version output format templates
const (
	VersionTextTemplate = "go-replvars version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithCause = "%s: %v\n"
	FmtNewline        = "\n"
)
