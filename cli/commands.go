package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct{}

type Commands struct {
	Globals

	Build   BuildCmd   `cmd:"" help:"Build an Order-X XML document from a YAML order description."`
	Preview PreviewCmd `cmd:"" help:"Dump the assembled document tree of a YAML order description."`
}
