package exitcode

// One code per terminal state of a report run, so failures are scriptable.
const (
	Success          = 0
	UsageError       = 1
	NoData           = 2
	InvalidSchema    = 3
	NoValidRows      = 4
	EmptyAfterFilter = 5
	RenderError      = 6
)
