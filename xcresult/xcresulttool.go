package xcresult

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/bitrise-io/go-utils/command"
	"github.com/bitrise-io/go-utils/errorutil"
	command2 "github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
)

// IsXcresulttoolAvailable checks if the xcresulttool binary is reachable through xcrun.
func IsXcresulttoolAvailable() bool {
	if _, err := exec.LookPath("xcrun"); err != nil {
		return false
	}
	return command.New("xcrun", "--find", "xcresulttool").Run() == nil
}

// ResolveTestsRef materializes the test results subtree referenced by id from
// the xcresult bundle. An empty bundle path or reference id skips the
// invocation and yields no data.
func ResolveTestsRef(bundlePth, id string) (interface{}, error) {
	if bundlePth == "" || id == "" {
		return nil, nil
	}

	var node interface{}
	if err := xcresulttoolGet(bundlePth, id, &node); err != nil {
		return nil, err
	}
	return node, nil
}

// xcresulttoolGet performs xcrun xcresulttool get object in legacy compatibility
// mode, with the --id flag defined if id is provided, and marshals the output into v.
func xcresulttoolGet(xcresultPth, id string, v interface{}) error {
	commandFactory := command2.NewFactory(env.NewRepository())
	logger := log.NewLogger()

	args := []string{"xcresulttool", "get", "object", "--legacy", "--format", "json", "--path", xcresultPth}
	if id != "" {
		args = append(args, "--id", id)
	}

	var outBuffer, errBuffer, combinedBuffer bytes.Buffer
	outWriter := io.MultiWriter(&outBuffer, &combinedBuffer)
	errWriter := io.MultiWriter(&errBuffer, &combinedBuffer)

	cmd := commandFactory.Create("xcrun", args, &command2.Opts{
		Stdout: outWriter,
		Stderr: errWriter,
		Env:    os.Environ(),
	})
	if err := cmd.Run(); err != nil {
		if errorutil.IsExitStatusError(err) {
			return fmt.Errorf("%s failed: %s", cmd.PrintableCommandArgs(), combinedBuffer.String())
		}
		return fmt.Errorf("%s failed: %s", cmd.PrintableCommandArgs(), err)
	}
	if stdErr := errBuffer.String(); stdErr != "" {
		logger.Warnf("%s: %s", cmd.PrintableCommandArgs(), stdErr)
	}

	stdout := outBuffer.Bytes()
	if err := json.Unmarshal(stdout, v); err != nil {
		logger.Warnf("Failed to parse %s command output, first lines:\n%s", cmd.PrintableCommandArgs(), firstLines(string(stdout), 10))
		return err
	}
	return nil
}

func firstLines(out string, count int) string {
	if count < 1 {
		return ""
	}

	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if len(lines) >= count {
			break
		}
	}
	return strings.Join(lines, "\n")
}
