package cli

var (
	WriteReport = writeReport
	RunServer   = runServer
)
