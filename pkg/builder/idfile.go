package builder

import (
	"os"
	"strings"

	"github.com/XiaoConstantine/qabuild-go/pkg/errors"
)

// readIDFile loads a newline-separated list of example ids, skipping blank
// lines.
func readIDFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.IOFailed, "failed to read id file"),
			errors.Fields{"path": path})
	}

	var ids []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			ids = append(ids, line)
		}
	}
	return ids, nil
}
