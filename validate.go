package odf

import (
	"fmt"

	"github.com/klauspost/compress/flate"
)

func validateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrValidation)
	}
	for name := range doc.Members {
		if name == "" {
			return fmt.Errorf("%w: member name is empty", ErrValidation)
		}
	}
	return nil
}

func validateWriteConfig(cfg writeConfig) error {
	switch cfg.method {
	case MethodStore, MethodDeflate, MethodZstd:
	default:
		return fmt.Errorf("%w: unknown method %d", ErrValidation, cfg.method)
	}
	if cfg.level < flate.HuffmanOnly || cfg.level > flate.BestCompression {
		return fmt.Errorf("%w: deflate level %d out of range", ErrValidation, cfg.level)
	}
	return nil
}
