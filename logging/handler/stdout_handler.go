package handler

import (
	"io"
	"log"
	"os"
)

type stdoutHandler struct {
	log *log.Logger
}

func (h *stdoutHandler) Emit(line string) { h.log.Println(line) }

// NewStdoutHandler writes lines to standard output. The rendered line
// already carries its date so no log flags are set.
func NewStdoutHandler() *stdoutHandler {
	return &stdoutHandler{log.New(os.Stdout, "", 0)}
}

func NewWriterHandler(w io.Writer) *stdoutHandler {
	return &stdoutHandler{log.New(w, "", 0)}
}
