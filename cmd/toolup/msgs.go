package toolup

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort   = "Workspace setup for developer and agent tooling"
	MsgSetupShort  = "Inspect and generate setup artifacts"
	MsgListShort   = "List all catalog components"
	MsgListLong    = "List displays every component available in the catalog, with its dependencies and declared environment variables."
	MsgGenShort    = "Generate the install script and environment documents"
	MsgInitShort   = "Scaffold a new toolup workspace"
	MsgTopicsShort = "Display available documentation topics"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagForce   = "Overwrite scaffold files that already exist"

	// Status messages
	MsgNoComponents   = "No components in the catalog."
	MsgWrittenFormat  = "  wrote   %s\n"
	MsgUnchangedFmt   = "  current %s\n"
	MsgOrderFormat    = "Install order: %s\n"
	MsgCreatedFormat  = "  created %s\n"
	MsgSkippedFormat  = "  kept    %s\n"
	MsgInitDone       = "Workspace ready. Edit toolup.toml and run \"toolup setup gen\"."
	MsgNoTopics       = "No documentation topics available."
	MsgUnknownTopicF  = "unknown topic %q"
	MsgTopicsHeading  = "Available topics:"
	MsgGenLong        = `Gen resolves the install order for the selected components (or the whole
catalog when none are given), then writes three artifacts into .toolup/:

  setup.sh          the install script
  env.toml          plain environment variables
  secrets.env.toml  secret environment variables (owner-readable only)

Values already present in the environment documents are always preserved;
rerunning gen never overwrites a filled-in secret.`
)
