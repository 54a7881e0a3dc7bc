package handler

import (
	"os"
	"path/filepath"

	"github.com/s4mli/farola/cleaner"
	"github.com/sirupsen/logrus"
)

type fileHandler struct {
	file   *os.File
	logger logrus.FieldLogger
}

func (h *fileHandler) Emit(line string) {
	if _, err := h.file.WriteString(line + "\n"); err != nil {
		h.logger.WithField("&", "Emit").Error("=> Write: ", err)
	}
}

func (h *fileHandler) Name() string { return "file(" + h.file.Name() + ")" }
func (h *fileHandler) Stop()        { h.file.Close() }

func NewFileHandler(path string, logger logrus.FieldLogger) (*fileHandler, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666); err != nil {
		return nil, err
	} else {
		h := &fileHandler{f, logger}
		cleaner.Register(h)
		return h, nil
	}
}
