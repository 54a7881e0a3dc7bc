package model

// Record carries one log call. It is created per call and consumed
// immediately, nothing keeps it around.
type Record struct {
	Level        Level
	Message      string
	WorkerName   string
	SourcePath   string
	FunctionName string
	Line         int
}
