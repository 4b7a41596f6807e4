package common

import (
	"strings"

	"github.com/logicossoftware/go-odf"
	"github.com/pkg/errors"
)

// ParseMethod maps a method name given on the command line to an odf.Method.
func ParseMethod(raw string) (odf.Method, error) {
	for _, m := range []odf.Method{odf.MethodStore, odf.MethodDeflate, odf.MethodZstd} {
		if strings.EqualFold(raw, m.String()) {
			return m, nil
		}
	}
	return 0, errors.Errorf("unknown compression method '%s'", raw)
}
