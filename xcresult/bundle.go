package xcresult

import (
	"path/filepath"

	"github.com/bitrise-io/go-utils/fileutil"
	"github.com/bitrise-io/go-utils/pathutil"
	"github.com/bitrise-io/go-xcode/xcodeproject/serialized"
	"github.com/pkg/errors"
	"howett.net/plist"
)

// BundleFormatVersion reads the major format version of the xcresult bundle's
// Info.plist. Modern bundles report version 3.
func BundleFormatVersion(bundlePth string) (int, error) {
	infoPth := filepath.Join(bundlePth, "Info.plist")
	if exists, err := pathutil.IsPathExists(infoPth); err != nil {
		return -1, errors.Wrapf(err, "failed to check if path (%s) exists", infoPth)
	} else if !exists {
		return -1, errors.Errorf("no Info.plist found at %s", infoPth)
	}

	content, err := fileutil.ReadBytesFromFile(infoPth)
	if err != nil {
		return -1, err
	}

	var info serialized.Object
	if _, err := plist.Unmarshal(content, &info); err != nil {
		return -1, errors.Wrapf(err, "failed to parse %s", infoPth)
	}

	return majorVersion(info)
}

func majorVersion(document serialized.Object) (int, error) {
	version, err := document.Object("version")
	if err != nil {
		return -1, err
	}

	major, err := version.Value("major")
	if err != nil {
		return -1, err
	}
	majorValue, ok := major.(uint64)
	if !ok {
		return -1, errors.Errorf("unexpected version format: %v", major)
	}
	return int(majorValue), nil
}
