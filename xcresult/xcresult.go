package xcresult

import (
	"encoding/json"
	"os"

	"github.com/bitrise-io/go-utils/fileutil"
	"github.com/bitrise-io/go-utils/pathutil"
	"github.com/pkg/errors"
)

// Load reads and parses the exported xcresult JSON document at pth.
// A missing path, a nonexistent file or a zero size file is not an error:
// CI steps that run no tests produce no document, so Load returns a nil
// record and the caller treats the run as a no-op.
func Load(pth string) (*ActionsInvocationRecord, error) {
	if pth == "" {
		return nil, nil
	}

	if exists, err := pathutil.IsPathExists(pth); err != nil {
		return nil, errors.Wrapf(err, "failed to check if path (%s) exists", pth)
	} else if !exists {
		return nil, nil
	}

	info, err := os.Stat(pth)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat %s", pth)
	}
	if info.Size() == 0 {
		return nil, nil
	}

	content, err := fileutil.ReadBytesFromFile(pth)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", pth)
	}

	var record ActionsInvocationRecord
	if err := json.Unmarshal(content, &record); err != nil {
		return nil, errors.Wrapf(err, "failed to parse xcresult JSON (%s)", pth)
	}
	return &record, nil
}

// TestsRef returns the first action's non-empty test results reference id,
// or an empty string if no action carries one.
func (r ActionsInvocationRecord) TestsRef() string {
	for _, action := range r.Actions.Values {
		if ref := action.ActionResult.TestsRef.ID.Value; ref != "" {
			return ref
		}
	}
	return ""
}
