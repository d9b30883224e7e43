package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	DBConnError     = 3
	NotFound        = 4
	FormatError     = 5
	ReferenceError  = 6
)
