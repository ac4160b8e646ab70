package errors

type ExitCode int

const (
	ExitSuccess      ExitCode = 0
	ExitGeneralError ExitCode = 1
	ExitNoFilesError ExitCode = 2
	ExitConfigError  ExitCode = 3
	ExitLLMError     ExitCode = 4
	ExitIOError      ExitCode = 5
)

func (e ExitCode) Int() int {
	return int(e)
}
